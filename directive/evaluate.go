// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package directive

import (
	"log"

	"github.com/ezrec/isaconform/dut"
	"github.com/ezrec/isaconform/report"
	"github.com/ezrec/isaconform/testcase"
)

// Outcome is the result of evaluating the directives at one address.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	Continue        = Outcome(0) // continue
	EndTest         = Outcome(1) // end
	AssertionFailed = Outcome(2) // failed
)

// Evaluator checks directives against the state of a device.
type Evaluator struct {
	Verbose  bool        // If set, log every directive checked.
	Reporter report.Sink // Receives assertion failures.
}

// Evaluate checks the directives in order. It stops at the first "end", or
// at the first assertion that does not hold; later directives at the same
// address are not evaluated.
//
// A malformed directive, or a device that cannot report a register, is
// returned as an error.
func (ev *Evaluator) Evaluate(test string, addr testcase.Address, directives []string, dev dut.Device) (outcome Outcome, err error) {
	for _, text := range directives {
		var dir Directive
		dir, err = Parse(text)
		if err != nil {
			return
		}

		if dir.Kind == KindEnd {
			if ev.Verbose {
				log.Printf("%v@%v: end", test, addr)
			}
			outcome = EndTest
			return
		}

		var actual uint64
		actual, err = dev.Register(dir.Register)
		if err != nil {
			return
		}

		if ev.Verbose {
			log.Printf("%v@%v: %v (r%v = 0x%x)", test, addr, text, dir.Register, actual)
		}

		if actual != dir.Expected {
			if ev.Reporter != nil {
				ev.Reporter.Failure(report.Failure{
					Test:      test,
					Directive: text,
					Address:   uint64(addr),
					Expected:  dir.Expected,
					Actual:    actual,
				})
			}
			outcome = AssertionFailed
			return
		}
	}

	outcome = Continue
	return
}
