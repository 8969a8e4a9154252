// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package suite

import (
	"context"
	"log"

	"github.com/ezrec/isaconform/driver"
	"github.com/ezrec/isaconform/dut"
	"github.com/ezrec/isaconform/report"
)

// Policy decides whether a failing test case ends the suite.
type Policy int

//go:generate go tool stringer -linecomment -type=Policy
const (
	RunEvery      = Policy(0) // run-every
	StopOnFailure = Policy(1) // stop-on-failure
)

// ParsePolicy returns the policy named by its String() form.
func ParsePolicy(name string) (policy Policy, err error) {
	for _, policy = range []Policy{RunEvery, StopOnFailure} {
		if policy.String() == name {
			return
		}
	}

	err = &ErrNamed{Name: name, Err: ErrPolicy}
	return
}

// Summary of a suite run.
type Summary struct {
	Results []driver.Result // Results of the cases run, in catalog order.
	Skipped []string        // Cases not run, under StopOnFailure.
	Passed  bool            // True if every case ran and passed.
}

// Count returns the number of passed and failed cases.
func (sum Summary) Count() (passed, failed int) {
	for _, res := range sum.Results {
		if res.Ok() {
			passed++
		} else {
			failed++
		}
	}
	return
}

// Runner runs every case of a suite through a driver.
type Runner struct {
	Verbose  bool           // If set, enables verbose logging.
	Driver   *driver.Driver // Runs each case.
	Reporter report.Sink    // Receives the suite banner.
	Policy   Policy         // Failure handling.
}

// NewRunner creates a runner, and its driver, reporting to a sink.
func NewRunner(sink report.Sink) *Runner {
	if sink == nil {
		sink = report.Discard{}
	}

	return &Runner{
		Driver:   driver.New(sink),
		Reporter: sink,
		Policy:   RunEvery,
	}
}

// RunAll runs the suite in catalog order on the device.
//
// Under RunEvery every case runs and the results are combined. Under
// StopOnFailure the first failing case ends the run, and the remaining
// names are returned in Summary.Skipped. A fatal error from the driver
// ends the run under either policy.
func (run *Runner) RunAll(ctx context.Context, s *Suite, dev dut.Device) (sum Summary, err error) {
	reporter := run.Reporter
	if reporter == nil {
		reporter = report.Discard{}
	}
	drv := run.Driver
	if drv == nil {
		drv = driver.New(reporter)
	}

	sum.Passed = true
	names := s.Names()
	for n, name := range names {
		tc, _ := s.Get(name)

		var res driver.Result
		res, err = drv.RunCase(ctx, name, tc, dev)
		if err != nil {
			sum.Passed = false
			return
		}
		sum.Results = append(sum.Results, res)

		if run.Verbose {
			log.Printf("suite: %v %v after %v steps", name, res.State, res.Steps)
		}

		if !res.Ok() {
			sum.Passed = false
			if run.Policy == StopOnFailure {
				sum.Skipped = names[n+1:]
				break
			}
		}
	}

	if sum.Passed {
		reporter.Success(len(sum.Results))
	} else {
		passed, failed := sum.Count()
		reporter.Summary(passed, failed, len(sum.Skipped))
	}

	return
}
