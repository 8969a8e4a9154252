// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package suite

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/isaconform/testcase"
)

// Loader reads test catalogs written one entry per line:
//
//	; comment to end of line
//	.equ NAME VALUE     textual equate, substituted for whole words
//	.test NAME          starts a new test case
//	0x00100093          instruction word(s), any Go integer literal
//	$(NAME | 1 << 7)    compile-time expression, evaluated as Starlark
//	? r1 == 1           control directive, the rest of the line
//	.end                closes the current test case (optional)
//
// In directives, $(...) expands to bare hexadecimal so that it can be used
// as an expected register value.
type Loader struct {
	Verbose bool              // If set, verbosely logs every line.
	Equate  map[string]string // Map of equates, valid after Parse.

	predefine map[string]string
}

// Load parses a catalog with a default loader.
func Load(input io.Reader) (*Suite, error) {
	return (&Loader{}).Parse(input)
}

// Predefine defines an equate visible to every catalog parsed.
func (ld *Loader) Predefine(equ string, value string) {
	if ld.predefine == nil {
		ld.predefine = map[string]string{equ: value}
	} else {
		ld.predefine[equ] = value
	}
}

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// valueOf returns the 32-bit value of a literal word.
func valueOf(word string) (value uint32, err error) {
	v64, err := strconv.ParseInt(strings.ReplaceAll(word, "_", ""), 0, 34)
	if err != nil || v64 > 0xffffffff || v64 < -int64(0x80000000) {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	return
}

// parenEval does compile-time $(...) evaluations.
func (ld *Loader) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{Name: "catalog"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ld.Equate {
		value32, _err := valueOf(str)
		if _err != nil {
			// Not every equate is a number.
			continue
		}
		pred[key] = starlark.MakeInt64(int64(value32))
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", "rc="+expr+"\n", pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > 0xffffffff || st_int64 < -int64(0x80000000) {
		err = ErrParseExpression(expr)
		return
	}

	value = uint32(st_int64)
	return
}

// expand replaces every $(...) in a line using a format for the result.
func (ld *Loader) expand(line string, format string) (out string, err error) {
	out = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := ld.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf(format, value)
	})
	return
}

// Parse parses a catalog into a suite.
func (ld *Loader) Parse(input io.Reader) (s *Suite, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	ld.Equate = map[string]string{}
	maps.Copy(ld.Equate, ld.predefine)

	s = New()

	var name string
	var tc testcase.TestCase
	open := false

	closeTest := func() (err error) {
		if open {
			err = s.Add(name, tc)
			open = false
			tc = nil
		}
		return
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		if ld.Verbose {
			log.Printf("%v: %v", lineno, text)
		}

		line, _, _ = strings.Cut(text, ";")
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		// ? directive
		if directive, ok := strings.CutPrefix(line, "?"); ok {
			if !open {
				err = ErrTestMissing
				return
			}
			directive, err = ld.expand(strings.TrimSpace(directive), "%x")
			if err != nil {
				return
			}
			if len(directive) == 0 {
				err = ErrDirective
				return
			}
			tc = append(tc, testcase.Control(directive))
			continue
		}

		words := strings.Fields(line)

		switch words[0] {
		case ".equ":
			if len(words) != 3 {
				err = ErrEquate
				return
			}
			if _, ok := ld.Equate[words[1]]; ok {
				err = ErrEquateDup
				return
			}
			ld.Equate[words[1]] = words[2]
			continue
		case ".test":
			if len(words) != 2 {
				err = ErrTestName
				return
			}
			err = closeTest()
			if err != nil {
				return
			}
			if _, ok := s.Get(words[1]); ok {
				err = &ErrNamed{Name: words[1], Err: ErrDuplicate}
				return
			}
			name = words[1]
			open = true
			continue
		case ".end":
			if !open {
				err = ErrEndLonely
				return
			}
			err = closeTest()
			if err != nil {
				return
			}
			continue
		}

		if !open {
			err = ErrTestMissing
			return
		}

		for n, word := range words {
			equate, ok := ld.Equate[word]
			if ok {
				words[n] = equate
			}
		}

		var expanded string
		expanded, err = ld.expand(strings.Join(words, " "), "%#x")
		if err != nil {
			return
		}

		for _, word := range strings.Fields(expanded) {
			var value uint32
			value, err = valueOf(word)
			if err != nil {
				return
			}
			tc = append(tc, testcase.Instruction(value))
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	line = ""
	err = closeTest()
	return
}
