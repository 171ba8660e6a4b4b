package cpu

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
)

// ErrCycleLimit is returned by Run when a program runs past its cycle budget.
var ErrCycleLimit = errors.New("cycle limit exceeded")

// Execute fetches, decodes, and executes a single instruction.
func (c *CPU) Execute() error {
	if !c.Running {
		return nil
	}

	// Fetch
	addr := c.PC
	opcode := c.fetch()

	// Decode
	inst, err := Decode(opcode)
	if err != nil {
		c.Running = false
		return fmt.Errorf("decode failed at $%04X: %w", addr, err)
	}

	// Execute
	c.Cycles += inst.Cycles
	if err := inst.Handler(c, inst); err != nil {
		c.Running = false
		return fmt.Errorf("execution failed for opcode %02X at $%04X: %w", opcode, addr, err)
	}

	if glog.V(3) {
		glog.Infof("$%04X %s A=%02X P=%08b cycles=%d", addr, inst.Mnemonic, c.A, c.P, c.Cycles)
	}
	return nil
}

// Run executes instructions until BRK, until PC leaves the loaded code, or
// until more than maxCycles cycles have elapsed. A maxCycles of zero or less
// means no limit.
func (c *CPU) Run(maxCycles int) error {
	for c.Running {
		if int(c.PC) < c.start || int(c.PC) >= c.end {
			c.Running = false
			break
		}

		if maxCycles > 0 && c.Cycles > maxCycles {
			c.Running = false
			return fmt.Errorf("%w: %d cycles at $%04X", ErrCycleLimit, c.Cycles, c.PC)
		}

		if err := c.Execute(); err != nil {
			return err
		}
	}
	return nil
}
