// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package duttest provides a scripted device for exercising the driver
// without a real instruction-set implementation.
package duttest

import (
	"errors"
	"fmt"

	"github.com/ezrec/isaconform/dut"
)

var ErrNotStarted = errors.New("duttest: device not started")

// Device replays a fixed register script, one entry per executed step.
type Device struct {
	Stride  uint64            // Program counter units per step; 4 if zero.
	Pcs     []uint64          // If set, program counter at each step count, starting from Start.
	States  []map[uint]uint64 // Register values at each step count, starting from Start; missing registers read 0.
	ClockFn func(step int) error

	Program []byte   // Image passed to the last Start.
	Steps   int      // Clock calls since the last Start.
	Starts  int      // Start calls.
	Stops   int      // Stop calls.
	Events  []string // Every call, in order.

	running bool
}

var _ dut.Device = (*Device)(nil)

func (dev *Device) event(format string, args ...any) {
	dev.Events = append(dev.Events, fmt.Sprintf(format, args...))
}

func (dev *Device) Start(program []byte) error {
	dev.event("start %d", len(program))
	dev.Program = append([]byte{}, program...)
	dev.Steps = 0
	dev.Starts++
	dev.running = true
	return nil
}

func (dev *Device) Stop() error {
	dev.event("stop")
	dev.Stops++
	dev.running = false
	return nil
}

func (dev *Device) Clock() (err error) {
	dev.event("clock")
	if !dev.running {
		return ErrNotStarted
	}
	if dev.ClockFn != nil {
		err = dev.ClockFn(dev.Steps)
		if err != nil {
			return
		}
	}
	dev.Steps++
	return
}

func (dev *Device) ProgramCounter() uint64 {
	if len(dev.Pcs) > 0 {
		return dev.Pcs[min(dev.Steps, len(dev.Pcs)-1)]
	}

	stride := dev.Stride
	if stride == 0 {
		stride = 4
	}
	return uint64(dev.Steps) * stride
}

func (dev *Device) Register(index uint) (value uint64, err error) {
	dev.event("r%d", index)
	if !dev.running {
		err = ErrNotStarted
		return
	}
	if len(dev.States) == 0 {
		return
	}
	value = dev.States[min(dev.Steps, len(dev.States)-1)][index]
	return
}

func (dev *Device) ReadMemory(address uint64) (value uint64, err error) {
	dev.event("m%x", address)
	return
}

// Count returns how many recorded events equal the given one.
func (dev *Device) Count(event string) (count int) {
	for _, e := range dev.Events {
		if e == event {
			count++
		}
	}
	return
}
