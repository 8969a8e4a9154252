// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package report

import (
	"fmt"
	"io"
)

// ANSI decorations, by severity.
const (
	FORMAT_BOLD_RED    = "\x1B[1;91m"
	FORMAT_BOLD_GREEN  = "\x1B[1;92m"
	FORMAT_BOLD_YELLOW = "\x1B[1;93m"
	FORMAT_END         = "\x1B[0m"
)

// Console writes notices as plain text lines, optionally colored.
type Console struct {
	Output io.Writer // Destination of the text.
	Color  bool      // If set, decorate lines with ANSI colors.
}

var _ Sink = (*Console)(nil)

// NewConsole creates a colored console sink.
func NewConsole(out io.Writer) *Console {
	return &Console{Output: out, Color: true}
}

// plain renders a count or address without locale digit grouping.
func plain(value any) string {
	return fmt.Sprint(value)
}

func (con *Console) println(format string, text string) {
	if con.Color {
		fmt.Fprintf(con.Output, "%v%v%v\n", format, text, FORMAT_END)
	} else {
		fmt.Fprintln(con.Output, text)
	}
}

func (con *Console) RunStart(test string) {
	con.println(FORMAT_BOLD_YELLOW, f("Running test case '%v'", test))
}

func (con *Console) Failure(fail Failure) {
	con.println(FORMAT_BOLD_RED, f("Test '%v' failed: assertion '%v' failed at address '%v'",
		fail.Test, fail.Directive, plain(fail.Address)))
	con.println(FORMAT_BOLD_RED, f("Expected value: 0x%x, Actual value: 0x%x",
		fail.Expected, fail.Actual))
}

func (con *Console) Timeout(test string, address uint64, steps uint64) {
	con.println(FORMAT_BOLD_RED, f("Test '%v' timed out at address '%v' after %v steps",
		test, plain(address), plain(steps)))
}

func (con *Console) Success(count int) {
	con.println(FORMAT_BOLD_GREEN, f("All tests passed (%v)", plain(count)))
}

func (con *Console) Summary(passed, failed, skipped int) {
	con.println(FORMAT_BOLD_RED, f("%v passed, %v failed, %v skipped", plain(passed), plain(failed), plain(skipped)))
}
