package assembler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golang/glog"
)

// Assembler holds the state for the assembly process.
type Assembler struct {
	encoder *Encoder
	ctx     *Context
}

// New creates an Assembler for the default instruction set.
func New() *Assembler {
	return NewWithTable(DefaultTable())
}

// NewWithTable creates an Assembler that encodes with the given table.
func NewWithTable(t *Table) *Assembler {
	return &Assembler{
		encoder: NewEncoder(t),
		ctx:     NewContext(),
	}
}

// Assemble translates source text into a binary image in a single forward
// pass. The first error stops assembly; no partial image is returned.
func (asm *Assembler) Assemble(src string) ([]byte, error) {
	asm.ctx = NewContext()

	for _, sl := range Normalize(src) {
		line, err := Classify(sl)
		if err != nil {
			return nil, &LineError{Line: sl.Number, Text: sl.Text, Err: err}
		}

		if line.Kind == LineLabel {
			if err := asm.ctx.Declare(line.Label); err != nil {
				return nil, &LineError{Line: line.Number, Text: line.Text, Err: err}
			}
			glog.V(2).Infof("line %d: label %s = $%04X", line.Number, line.Label, asm.ctx.PC())
			continue
		}

		slots, err := asm.encoder.Encode(line, asm.ctx.PC(), asm.ctx)
		if err != nil {
			return nil, &LineError{Line: line.Number, Text: line.Text, Err: err}
		}
		glog.V(2).Infof("line %d: $%04X %s %s (%d bytes)", line.Number, asm.ctx.PC(), line.Mnemonic, line.Operand, len(slots))
		asm.ctx.Emit(slots...)
	}

	return Finalize(asm.ctx.Slots())
}

// Labels returns the label table of the last assembly run.
func (asm *Assembler) Labels() map[string]int {
	return asm.ctx.Labels()
}

// AssembleFile reads a source file, assembles it and writes the image next to
// it. It returns the image path and the image. Nothing is written unless
// assembly succeeds.
func (asm *Assembler) AssembleFile(path string) (string, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, fmt.Errorf("%w: '%s'", ErrInputNotFound, path)
		}
		return "", nil, fmt.Errorf("reading '%s': %w", path, err)
	}
	glog.V(1).Infof("assembling %s (%d bytes of source)", path, len(data))

	image, err := asm.Assemble(string(data))
	if err != nil {
		return "", nil, err
	}

	out := OutputPath(path)
	if err := WriteImage(out, image); err != nil {
		return "", nil, fmt.Errorf("writing '%s': %w", out, err)
	}
	glog.V(1).Infof("wrote %d bytes to %s", len(image), out)
	return out, image, nil
}
