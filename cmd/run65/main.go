package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"

	"github.com/Urethramancer/m6502/cpu"
)

var errNoProgram = errors.New("no program given")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		glog.Exitf("%v", err)
	}
	glog.Flush()
}

// run loads a program at $0000, runs it and dumps the registers.
func run(args []string, stdout io.Writer) error {
	flag.Set("logtostderr", "true")

	opt := arg.New("run65")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Trace every executed instruction.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "m", "max-cycles", "Stop with an error after this many cycles.", 10000, false, arg.VarInt, nil)
	opt.SetPositional("PROGRAM", "Image file, or hex bytes such as \"a9 02 69 02\".", "", true, arg.VarStringSlice)

	if err := opt.ParseEnvironment("run65", ""); err != nil {
		return err
	}
	if err := opt.Parse(args); err != nil {
		if errors.Is(err, arg.ErrNoArgs) {
			opt.PrintHelp()
			return errNoProgram
		}
		return err
	}
	if opt.GetBool("verbose") {
		flag.Set("v", "3")
	}

	code, err := loadProgram(opt.GetPosStringSlice("PROGRAM"))
	if err != nil {
		return err
	}

	c := cpu.New()
	if err := c.LoadCode(0, code); err != nil {
		return err
	}
	glog.V(1).Infof("loaded %d bytes at $0000", len(code))

	runErr := c.Run(opt.GetInt("max-cycles"))
	c.DumpRegisters(stdout)
	return runErr
}

// loadProgram reads a single file argument as a raw image. Anything that is
// not a readable file is taken as hex byte values.
func loadProgram(words []string) ([]byte, error) {
	if len(words) == 0 {
		return nil, errNoProgram
	}

	if len(words) == 1 {
		data, err := os.ReadFile(words[0])
		if err == nil {
			return data, nil
		}
		glog.V(1).Infof("%s is not a readable file, parsing as hex", words[0])
	}

	return parseHexBytes(strings.Join(words, " "))
}

// parseHexBytes parses whitespace-separated byte values, with or without a
// 0x prefix.
func parseHexBytes(s string) ([]byte, error) {
	var code []byte
	for _, f := range strings.Fields(s) {
		digits := strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		v, err := strconv.ParseUint(digits, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid byte '%s'", f)
		}
		code = append(code, byte(v))
	}

	if len(code) == 0 {
		return nil, errNoProgram
	}
	return code, nil
}
