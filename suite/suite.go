// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package suite holds named catalogs of test cases and runs them against a
// device under test.
package suite

import (
	"iter"
	"slices"

	"github.com/ezrec/isaconform/internal"
	"github.com/ezrec/isaconform/testcase"
)

// Suite is a catalog of uniquely named test cases, kept in insertion order.
type Suite struct {
	names []string
	cases map[string]testcase.TestCase
}

// New creates an empty suite.
func New() *Suite {
	return &Suite{cases: map[string]testcase.TestCase{}}
}

// Add appends a named test case.
func (s *Suite) Add(name string, tc testcase.TestCase) (err error) {
	if s.cases == nil {
		s.cases = map[string]testcase.TestCase{}
	}

	_, ok := s.cases[name]
	if ok {
		err = &ErrNamed{Name: name, Err: ErrDuplicate}
		return
	}

	s.names = append(s.names, name)
	s.cases[name] = tc
	return
}

// MustAdd appends a named test case, and panics on a duplicate name.
func (s *Suite) MustAdd(name string, tc testcase.TestCase) *Suite {
	err := s.Add(name, tc)
	if err != nil {
		panic(err)
	}
	return s
}

// Get returns a test case by name.
func (s *Suite) Get(name string) (tc testcase.TestCase, ok bool) {
	tc, ok = s.cases[name]
	return
}

// Len returns the number of test cases.
func (s *Suite) Len() int {
	return len(s.names)
}

// Names returns the test names, in catalog order.
func (s *Suite) Names() []string {
	return slices.Clone(s.names)
}

// All iterates the test cases in catalog order.
func (s *Suite) All() iter.Seq2[string, testcase.TestCase] {
	return func(yield func(name string, tc testcase.TestCase) bool) {
		for _, name := range s.names {
			if !yield(name, s.cases[name]) {
				return
			}
		}
	}
}

// Subset returns a new suite with only the named tests, in the order given.
func (s *Suite) Subset(names ...string) (sub *Suite, err error) {
	sub = New()
	for _, name := range names {
		tc, ok := s.cases[name]
		if !ok {
			err = &ErrNamed{Name: name, Err: ErrUnknownTest}
			return
		}
		err = sub.Add(name, tc)
		if err != nil {
			return
		}
	}

	return
}

// Merge returns a new suite with the tests of s followed by the tests of
// every other suite. Names must stay unique.
func (s *Suite) Merge(others ...*Suite) (merged *Suite, err error) {
	seqs := []iter.Seq2[string, testcase.TestCase]{s.All()}
	for _, other := range others {
		seqs = append(seqs, other.All())
	}

	merged = New()
	for name, tc := range internal.IterSeq2Concat(seqs...) {
		err = merged.Add(name, tc)
		if err != nil {
			return
		}
	}

	return
}
