// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package directive parses and evaluates the control directives attached to
// a test case.
package directive

import (
	"strconv"
	"strings"
)

// Kind is the type of a directive.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KindEnd      = Kind(0) // end
	KindRegister = Kind(1) // register
)

// END is the directive that terminates a test case.
const END = "end"

// Directive is a parsed control directive.
type Directive struct {
	Kind     Kind   // Type of directive.
	Register uint   // Register index, for KindRegister.
	Expected uint64 // Expected register value, for KindRegister.
}

// Parse parses either "end", or a register assertion "r<N> == <hex>".
func Parse(text string) (dir Directive, err error) {
	defer func() {
		if err != nil {
			err = &ErrSyntax{Text: text, Err: err}
		}
	}()

	if strings.TrimSpace(text) == END {
		dir.Kind = KindEnd
		return
	}

	reg, val, ok := strings.Cut(text, "==")
	if !ok || strings.Contains(val, "==") {
		err = ErrOperator
		return
	}

	dir.Kind = KindRegister
	dir.Register, err = parseRegister(strings.TrimSpace(reg))
	if err != nil {
		return
	}

	dir.Expected, err = parseHex(strings.TrimSpace(val))
	return
}

func parseRegister(word string) (index uint, err error) {
	digits, ok := strings.CutPrefix(word, "r")
	if !ok || len(digits) == 0 {
		err = ErrRegister
		return
	}

	for _, c := range digits {
		if c < '0' || c > '9' {
			err = ErrRegister
			return
		}
	}

	value, err := strconv.ParseUint(digits, 10, strconv.IntSize)
	if err != nil {
		err = ErrRegister
		return
	}

	index = uint(value)
	return
}

func parseHex(word string) (value uint64, err error) {
	if len(word) > 1 && word[0] == '0' && (word[1] == 'x' || word[1] == 'X') {
		word = word[2:]
	}

	word = strings.ReplaceAll(word, "_", "")
	value, err = strconv.ParseUint(word, 16, 64)
	if err != nil {
		err = ErrValue
	}
	return
}

// String returns the directive in catalog syntax.
func (dir Directive) String() string {
	if dir.Kind == KindEnd {
		return END
	}
	return "r" + strconv.FormatUint(uint64(dir.Register), 10) + " == " + strconv.FormatUint(dir.Expected, 16)
}
