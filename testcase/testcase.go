// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package testcase

import (
	"encoding/binary"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// INSTRUCTION_SIZE is the number of program bytes per instruction word.
const INSTRUCTION_SIZE = 4

// Kind selects the variant held by an Entry.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KindInstruction = Kind(0) // instruction
	KindControl     = Kind(1) // control
)

// Entry is one element of a test case: an instruction word, or a control directive.
type Entry struct {
	Kind Kind   // Variant selector.
	Word uint32 // Instruction word, when Kind is KindInstruction.
	Text string // Directive text, when Kind is KindControl.
}

// Instruction creates an instruction entry.
func Instruction(word uint32) Entry {
	return Entry{Kind: KindInstruction, Word: word}
}

// Control creates a control directive entry.
func Control(text string) Entry {
	return Entry{Kind: KindControl, Text: text}
}

// String returns the entry in catalog syntax.
func (e Entry) String() string {
	if e.Kind == KindControl {
		return "? " + e.Text
	}
	return fmt.Sprintf("0x%08x", e.Word)
}

// TestCase is an ordered sequence of entries.
type TestCase []Entry

// Instructions returns the number of instruction entries.
func (tc TestCase) Instructions() (count int) {
	for _, e := range tc {
		if e.Kind == KindInstruction {
			count++
		}
	}
	return
}

// Address counts the instructions emitted before a point in the program.
type Address uint64

// Program is the little-endian byte image of a test case.
type Program []byte

// Words decodes the program image back into instruction words.
func (prog Program) Words() iter.Seq2[Address, uint32] {
	return func(yield func(addr Address, word uint32) bool) {
		for n := 0; n+INSTRUCTION_SIZE <= len(prog); n += INSTRUCTION_SIZE {
			word := binary.LittleEndian.Uint32(prog[n:])
			if !yield(Address(n/INSTRUCTION_SIZE), word) {
				return
			}
		}
	}
}

// Schedule maps an address to the directives checked when execution reaches it.
type Schedule map[Address][]string

// At returns the directives at an address, nil if none.
func (sch Schedule) At(addr Address) []string {
	return sch[addr]
}

// All iterates the schedule in ascending address order.
func (sch Schedule) All() iter.Seq2[Address, []string] {
	return func(yield func(addr Address, directives []string) bool) {
		for _, addr := range slices.Sorted(maps.Keys(sch)) {
			if !yield(addr, sch[addr]) {
				return
			}
		}
	}
}

// Compile lays out the program image and attaches every control directive
// to the address of the next instruction to be emitted.
func Compile(tc TestCase) (prog Program, sch Schedule) {
	prog = make(Program, 0, INSTRUCTION_SIZE*tc.Instructions())
	sch = Schedule{}

	var addr Address
	for _, e := range tc {
		switch e.Kind {
		case KindInstruction:
			prog = binary.LittleEndian.AppendUint32(prog, e.Word)
			addr++
		case KindControl:
			sch[addr] = append(sch[addr], e.Text)
		}
	}

	return
}
