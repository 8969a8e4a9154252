// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"github.com/ezrec/isaconform/dut"
)

// Device exposes a Cpu through the device under test contract. The program
// counter is reported in bytes, so a driver must use an instruction width
// of INSTRUCTION_SIZE.
type Device struct {
	Cpu *Cpu

	running bool
}

var _ dut.Device = (*Device)(nil)

// NewDevice creates a device with a specifically sized memory.
func NewDevice(size uint) *Device {
	return &Device{Cpu: NewCpu(size)}
}

// Start resets the core and loads the program at address 0.
func (dev *Device) Start(program []byte) (err error) {
	err = dev.Cpu.Reset(program)
	if err != nil {
		return
	}

	dev.running = true
	return
}

// Stop ends the session; the core state is kept for inspection.
func (dev *Device) Stop() error {
	dev.running = false
	return nil
}

// Clock executes one instruction.
func (dev *Device) Clock() error {
	if !dev.running {
		return ErrNotStarted
	}
	return dev.Cpu.Tick()
}

// ProgramCounter returns the byte address of the next instruction.
func (dev *Device) ProgramCounter() uint64 {
	return uint64(dev.Cpu.Ip)
}

// Register returns x<index>.
func (dev *Device) Register(index uint) (value uint64, err error) {
	if index >= REGISTER_COUNT {
		err = ErrRegisterInvalid
		return
	}

	value = uint64(dev.Cpu.Register[index])
	return
}

// ReadMemory returns the 32-bit word at a byte address.
func (dev *Device) ReadMemory(address uint64) (value uint64, err error) {
	if address > 0xffffffff {
		err = ErrMemoryRange(0xffffffff)
		return
	}

	word, err := dev.Cpu.Load(uint32(address), 4)
	value = uint64(word)
	return
}
