// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package driver steps a device under test through a compiled test case,
// checking the scheduled directives at every instruction boundary.
package driver

import (
	"context"
	"errors"
	"log"

	"github.com/ezrec/isaconform/directive"
	"github.com/ezrec/isaconform/dut"
	"github.com/ezrec/isaconform/report"
	"github.com/ezrec/isaconform/testcase"
)

const (
	DEFAULT_STEP_LIMIT        = 65536 // Steps before a case is declared hung.
	DEFAULT_INSTRUCTION_WIDTH = 4     // Program counter units per instruction.
)

// State of a single test case run.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	NotStarted = State(0) // not started
	Running    = State(1) // running
	Passed     = State(2) // passed
	Failed     = State(3) // failed
	TimedOut   = State(4) // timed out
)

// Result of a single test case run.
type Result struct {
	Name    string           // Test case name.
	State   State            // Final state.
	Steps   uint64           // Clock steps issued.
	Address testcase.Address // Schedule address the run stopped at.
}

// Ok returns true if the test case passed.
func (res Result) Ok() bool {
	return res.State == Passed
}

// Driver runs test cases against a device.
type Driver struct {
	Verbose bool // If set, enables verbose logging.

	Evaluator *directive.Evaluator // Directive evaluator.
	Reporter  report.Sink          // Receives run notices.

	// StepLimit bounds the Clock calls of one case; zero means unbounded.
	StepLimit uint64
	// InstructionWidth is the number of device program counter units per
	// instruction. Zero is treated as one.
	InstructionWidth uint64
}

// New creates a driver reporting to a sink, with default limits.
func New(sink report.Sink) *Driver {
	if sink == nil {
		sink = report.Discard{}
	}

	return &Driver{
		Evaluator:        &directive.Evaluator{Reporter: sink},
		Reporter:         sink,
		StepLimit:        DEFAULT_STEP_LIMIT,
		InstructionWidth: DEFAULT_INSTRUCTION_WIDTH,
	}
}

// Address converts a device program counter to a schedule address.
func (drv *Driver) Address(pc uint64) (addr testcase.Address, err error) {
	width := max(drv.InstructionWidth, 1)
	if pc%width != 0 {
		err = ErrProgramCounter
		return
	}

	addr = testcase.Address(pc / width)
	return
}

// RunCase compiles a test case, runs it on the device, and stops the device
// on every exit path.
//
// An assertion failure or an exhausted step limit is reported through the
// sink and returned in the result. Malformed directives, device errors, and
// context cancellation are returned as *ErrRuntime.
func (drv *Driver) RunCase(ctx context.Context, name string, tc testcase.TestCase, dev dut.Device) (res Result, err error) {
	res = Result{Name: name, State: NotStarted}

	reporter := drv.Reporter
	if reporter == nil {
		reporter = report.Discard{}
	}
	evaluator := drv.Evaluator
	if evaluator == nil {
		evaluator = &directive.Evaluator{Reporter: reporter}
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{Test: name, Address: uint64(res.Address), Err: err}
		}
	}()

	reporter.RunStart(name)

	prog, sch := testcase.Compile(tc)

	if drv.Verbose {
		log.Printf("%v: %v bytes, %v scheduled addresses", name, len(prog), len(sch))
	}

	err = dev.Start(prog)
	if err != nil {
		return
	}
	res.State = Running

	defer func() {
		stop_err := dev.Stop()
		if stop_err != nil {
			err = errors.Join(err, stop_err)
		}
	}()

	for {
		res.Address, err = drv.Address(dev.ProgramCounter())
		if err != nil {
			return
		}

		var outcome directive.Outcome
		outcome, err = evaluator.Evaluate(name, res.Address, sch.At(res.Address), dev)
		if err != nil {
			return
		}

		switch outcome {
		case directive.AssertionFailed:
			res.State = Failed
			return
		case directive.EndTest:
			res.State = Passed
			return
		case directive.Continue:
			// pass
		default:
			err = ErrOutcome
			return
		}

		if drv.StepLimit != 0 && res.Steps >= drv.StepLimit {
			res.State = TimedOut
			reporter.Timeout(name, uint64(res.Address), res.Steps)
			return
		}

		err = ctx.Err()
		if err != nil {
			return
		}

		if drv.Verbose {
			log.Printf("%v: clock at address %v", name, res.Address)
		}

		err = dev.Clock()
		if err != nil {
			return
		}
		res.Steps++
	}
}
