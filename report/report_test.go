package report

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/ezrec/isaconform/translate"
)

func init() {
	translate.SetLanguage(language.AmericanEnglish)
}

func TestConsolePlain(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	con := &Console{Output: out}

	con.RunStart("addi-test")
	con.Failure(Failure{Test: "addi-test", Directive: "r5 == a", Address: 2, Expected: 0xa, Actual: 0x9})
	con.Timeout("loop-test", 1, 16)
	con.Success(2)
	con.Summary(1, 1, 0)

	assert.Equal(strings.Join([]string{
		"Running test case 'addi-test'",
		"Test 'addi-test' failed: assertion 'r5 == a' failed at address '2'",
		"Expected value: 0xa, Actual value: 0x9",
		"Test 'loop-test' timed out at address '1' after 16 steps",
		"All tests passed (2)",
		"1 passed, 1 failed, 0 skipped",
	}, "\n")+"\n", out.String())
}

func TestConsoleLargeNumbers(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	con := &Console{Output: out}

	con.Failure(Failure{Test: "far-test", Directive: "r1 == 0", Address: 4096, Expected: 0, Actual: 0x1234})
	con.Timeout("loop-test", 1024, 65536)
	con.Success(1500)
	con.Summary(1000, 2000, 3000)

	assert.Equal(strings.Join([]string{
		"Test 'far-test' failed: assertion 'r1 == 0' failed at address '4096'",
		"Expected value: 0x0, Actual value: 0x1234",
		"Test 'loop-test' timed out at address '1024' after 65536 steps",
		"All tests passed (1500)",
		"1000 passed, 2000 failed, 3000 skipped",
	}, "\n")+"\n", out.String())
}

func TestConsoleColor(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	con := NewConsole(out)

	con.RunStart("empty-test")
	assert.Equal(FORMAT_BOLD_YELLOW+"Running test case 'empty-test'"+FORMAT_END+"\n", out.String())

	out.Reset()
	con.Success(1)
	assert.Equal(FORMAT_BOLD_GREEN+"All tests passed (1)"+FORMAT_END+"\n", out.String())
}

func TestLogger(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	lg := &Logger{Logger: slog.New(slog.NewTextHandler(out, nil))}

	lg.Failure(Failure{Test: "addi-test", Directive: "r1 == 1", Address: 1, Expected: 1, Actual: 0})

	text := out.String()
	assert.Contains(text, "level=ERROR")
	assert.Contains(text, `msg="assertion failed"`)
	assert.Contains(text, "test=addi-test")
	assert.Contains(text, `directive="r1 == 1"`)
	assert.Contains(text, "address=1")
	assert.Contains(text, "expected=1")
	assert.Contains(text, "actual=0")
}

type counter struct {
	Discard
	starts int
}

func (c *counter) RunStart(string) { c.starts++ }

func TestMulti(t *testing.T) {
	assert := assert.New(t)

	a := &counter{}
	b := &counter{}
	sink := Multi(a, b, Discard{})

	sink.RunStart("x")
	sink.RunStart("y")
	sink.Success(2)

	assert.Equal(2, a.starts)
	assert.Equal(2, b.starts)
}
