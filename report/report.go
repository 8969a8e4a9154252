// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package report carries run notices and failure diagnostics out of the
// conformance driver.
package report

import (
	"github.com/ezrec/isaconform/translate"
)

var f = translate.From

// Failure describes a register assertion that did not hold.
type Failure struct {
	Test      string // Name of the test case.
	Directive string // Directive text, as written in the catalog.
	Address   uint64 // Schedule address the directive was checked at.
	Expected  uint64 // Expected register value.
	Actual    uint64 // Value the device reported.
}

// Sink receives the notices emitted during a run.
type Sink interface {
	RunStart(test string)
	Failure(failure Failure)
	Timeout(test string, address uint64, steps uint64)
	Success(count int)
	Summary(passed, failed, skipped int)
}

// Discard is a Sink that drops everything.
type Discard struct{}

var _ Sink = Discard{}

func (Discard) RunStart(string) {}
func (Discard) Failure(Failure) {}
func (Discard) Timeout(string, uint64, uint64) {}
func (Discard) Success(int) {}
func (Discard) Summary(int, int, int) {}

type multi []Sink

// Multi fans every notice out to all of the sinks, in order.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) RunStart(test string) {
	for _, s := range m {
		s.RunStart(test)
	}
}

func (m multi) Failure(failure Failure) {
	for _, s := range m {
		s.Failure(failure)
	}
}

func (m multi) Timeout(test string, address uint64, steps uint64) {
	for _, s := range m {
		s.Timeout(test, address, steps)
	}
}

func (m multi) Success(count int) {
	for _, s := range m {
		s.Success(count)
	}
}

func (m multi) Summary(passed, failed, skipped int) {
	for _, s := range m {
		s.Summary(passed, failed, skipped)
	}
}
