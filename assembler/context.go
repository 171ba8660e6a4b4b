package assembler

import (
	"fmt"
	"maps"
)

// SlotKind tells a resolved output value from a pending literal.
type SlotKind int

const (
	// SlotResolved holds a number. It may be negative until finalized.
	SlotResolved SlotKind = iota
	// SlotPending holds hex literal text to be parsed when finalized.
	SlotPending
)

// Slot is one position in the output. Each slot becomes exactly one byte.
type Slot struct {
	Kind    SlotKind
	Value   int
	Literal string
	// Line and Text identify the source line that produced the slot.
	Line int
	Text string
}

// Resolved returns a slot holding a known value.
func Resolved(value int, src SourceLine) Slot {
	return Slot{Kind: SlotResolved, Value: value, Line: src.Number, Text: src.Text}
}

// Pending returns a slot holding hex digits to parse later.
func Pending(literal string, src SourceLine) Slot {
	return Slot{Kind: SlotPending, Literal: literal, Line: src.Number, Text: src.Text}
}

// LabelLookup resolves a label name to its output offset.
type LabelLookup interface {
	Lookup(name string) (int, bool)
}

// Context is the state threaded through one assembly run: the output slots,
// the label table and the program counter cursor.
type Context struct {
	slots  []Slot
	labels map[string]int
	pc     int
}

// NewContext returns an empty context with the cursor at zero.
func NewContext() *Context {
	return &Context{labels: make(map[string]int)}
}

// PC returns the cursor: the offset the next emitted slot will occupy.
func (c *Context) PC() int {
	return c.pc
}

// Declare binds name to the current cursor. A name can only be bound once.
func (c *Context) Declare(name string) error {
	if addr, ok := c.labels[name]; ok {
		return fmt.Errorf("%w '%s' (already at $%04X)", ErrDuplicateLabel, name, addr)
	}
	c.labels[name] = c.pc
	return nil
}

// Lookup returns the offset a label was declared at.
func (c *Context) Lookup(name string) (int, bool) {
	addr, ok := c.labels[name]
	return addr, ok
}

// Labels returns a copy of the label table.
func (c *Context) Labels() map[string]int {
	return maps.Clone(c.labels)
}

// Emit appends slots and advances the cursor past them.
func (c *Context) Emit(slots ...Slot) {
	c.slots = append(c.slots, slots...)
	c.pc += len(slots)
}

// Slots returns the emitted slots in order.
func (c *Context) Slots() []Slot {
	return c.slots
}
