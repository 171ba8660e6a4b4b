package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"

	"github.com/Urethramancer/m6502/disassembler"
)

var errNoImage = errors.New("no image file given")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		glog.Exitf("%v", err)
	}
	glog.Flush()
}

func run(args []string, stdout io.Writer) error {
	flag.Set("logtostderr", "true")

	opt := arg.New("dis65")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log what is being read and written.", false, false, arg.VarBool, nil)
	opt.SetPositional("IMAGE", "Binary image to disassemble.", "", true, arg.VarString)
	opt.SetPositional("OUTPUT", "Write the listing here instead of standard output.", "", false, arg.VarString)

	if err := opt.Parse(args); err != nil {
		if errors.Is(err, arg.ErrNoArgs) {
			opt.PrintHelp()
			return errNoImage
		}
		return err
	}

	input := opt.GetPosString("IMAGE")
	if input == "" {
		return errNoImage
	}
	if opt.GetBool("verbose") {
		flag.Set("v", "1")
	}

	// The image is read as is; every byte is significant.
	code, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}
	glog.V(1).Infof("read %d bytes from %s", len(code), input)

	text, err := disassembler.Disassemble(code)
	if err != nil {
		return fmt.Errorf("disassembly error: %w", err)
	}

	output := opt.GetPosString("OUTPUT")
	if output == "" {
		_, err = io.WriteString(stdout, text)
		return err
	}

	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Fprintf(stdout, "Disassembly written to %s\n", output)
	return nil
}
