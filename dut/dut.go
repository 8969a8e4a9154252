// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package dut defines the capabilities a device under test offers to the
// conformance driver.
package dut

// Device is an instruction-set implementation under test.
//
// The driver calls Start once per test case and Stop once after it, on every
// exit path. Between them it alternates between inspecting state and Clock.
type Device interface {
	// Start loads the program image and resets the device.
	Start(program []byte) error
	// Stop releases the device session.
	Stop() error
	// Clock executes exactly one instruction.
	Clock() error
	// ProgramCounter returns the address of the next instruction, in
	// device-defined units.
	ProgramCounter() uint64
	// Register returns the value of an architectural register.
	Register(index uint) (uint64, error)
	// ReadMemory returns the value stored at an address. Reserved; no
	// directive reads memory yet.
	ReadMemory(address uint64) (uint64, error)
}
