package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"
	"github.com/k0kubun/pp/v3"

	"github.com/Urethramancer/m6502/assembler"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		glog.Exitf("%v", err)
	}
	glog.Flush()
}

// run assembles the source named in args and writes SOURCE.bin next to it.
func run(args []string, stdout io.Writer) error {
	// Flags are parsed by climate, so glog's own flags are set directly.
	flag.Set("logtostderr", "true")

	opt := arg.New("asm65")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Trace every label and instruction.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "x", "hex", "Print the assembled bytes as hex.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "s", "symbols", "Print the label table.", false, false, arg.VarBool, nil)
	opt.SetPositional("SOURCE", "Assembly source. The image is written to SOURCE.bin.", "", true, arg.VarString)

	// Environment first, so the command line wins: ASM65_VERBOSE=1 etc.
	if err := opt.ParseEnvironment("asm65", ""); err != nil {
		return err
	}
	if err := opt.Parse(args); err != nil {
		if errors.Is(err, arg.ErrNoArgs) {
			opt.PrintHelp()
			return fmt.Errorf("%w: no source file given", assembler.ErrInputNotFound)
		}
		return err
	}

	source := opt.GetPosString("SOURCE")
	if source == "" {
		return fmt.Errorf("%w: no source file given", assembler.ErrInputNotFound)
	}
	if opt.GetBool("verbose") {
		flag.Set("v", "2")
	}

	asm := assembler.New()
	out, image, err := asm.AssembleFile(source)
	if err != nil {
		return err
	}

	if opt.GetBool("hex") {
		fmt.Fprintf(stdout, "% x\n", image)
	}
	if opt.GetBool("symbols") {
		printer := pp.New()
		printer.SetOutput(stdout)
		printer.SetColoringEnabled(false)
		printer.Println(asm.Labels())
	}

	glog.V(1).Infof("assembled %d bytes -> %s", len(image), out)
	return nil
}
