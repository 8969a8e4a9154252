package suite

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/ezrec/isaconform/cpu"
	"github.com/ezrec/isaconform/directive"
	"github.com/ezrec/isaconform/driver"
	"github.com/ezrec/isaconform/dut/duttest"
	"github.com/ezrec/isaconform/report"
	"github.com/ezrec/isaconform/testcase"
	"github.com/ezrec/isaconform/translate"
)

func init() {
	translate.SetLanguage(language.AmericanEnglish)
}

func failThenPass() *Suite {
	return New().
		MustAdd("failing", testcase.TestCase{check("r1 == 1"), check("end")}).
		MustAdd("passing", testcase.TestCase{check("r1 == 0"), check("end")})
}

func TestParsePolicy(t *testing.T) {
	assert := assert.New(t)

	policy, err := ParsePolicy("run-every")
	assert.NoError(err)
	assert.Equal(RunEvery, policy)

	policy, err = ParsePolicy("stop-on-failure")
	assert.NoError(err)
	assert.Equal(StopOnFailure, policy)

	_, err = ParsePolicy("sometimes")
	assert.ErrorIs(err, ErrPolicy)
}

func TestRunAllRunEvery(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	run := NewRunner(&report.Console{Output: out})
	dev := &duttest.Device{}

	sum, err := run.RunAll(context.Background(), failThenPass(), dev)
	assert.NoError(err)
	assert.False(sum.Passed)
	assert.Empty(sum.Skipped)
	assert.Equal(2, dev.Starts)
	assert.Equal(2, dev.Stops)

	if assert.Equal(2, len(sum.Results)) {
		assert.Equal(driver.Failed, sum.Results[0].State)
		assert.Equal(driver.Passed, sum.Results[1].State)
	}

	passed, failed := sum.Count()
	assert.Equal(1, passed)
	assert.Equal(1, failed)

	assert.Equal(strings.Join([]string{
		"Running test case 'failing'",
		"Test 'failing' failed: assertion 'r1 == 1' failed at address '0'",
		"Expected value: 0x1, Actual value: 0x0",
		"Running test case 'passing'",
		"1 passed, 1 failed, 0 skipped",
	}, "\n")+"\n", out.String())
}

func TestRunAllStopOnFailure(t *testing.T) {
	assert := assert.New(t)

	run := NewRunner(nil)
	run.Policy = StopOnFailure
	dev := &duttest.Device{}

	sum, err := run.RunAll(context.Background(), failThenPass(), dev)
	assert.NoError(err)
	assert.False(sum.Passed)
	assert.Equal(1, dev.Starts)
	assert.Equal(1, len(sum.Results))
	assert.Equal([]string{"passing"}, sum.Skipped)
}

func TestRunAllFatal(t *testing.T) {
	assert := assert.New(t)

	s := New().
		MustAdd("broken", testcase.TestCase{check("r1 != 1")}).
		MustAdd("passing", testcase.TestCase{check("end")})

	run := NewRunner(nil)
	dev := &duttest.Device{}

	sum, err := run.RunAll(context.Background(), s, dev)
	assert.ErrorIs(err, directive.ErrOperator)
	assert.False(sum.Passed)
	assert.Equal(1, dev.Starts)
	assert.Equal(1, dev.Stops)
}

func TestRunAllDefaultOnReference(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	run := NewRunner(&report.Console{Output: out})
	dev := cpu.NewDevice(cpu.MEMORY_SIZE)

	sum, err := run.RunAll(context.Background(), Default(), dev)
	assert.NoError(err)
	assert.True(sum.Passed, out.String())
	assert.Equal(5, len(sum.Results))
	assert.True(strings.HasSuffix(out.String(), "All tests passed (5)\n"))

	for _, res := range sum.Results {
		switch res.Name {
		case "empty-test":
			assert.Equal(uint64(0), res.Steps)
		case "addi-test":
			assert.Equal(uint64(3), res.Steps)
		case "branch-test":
			assert.Equal(uint64(11), res.Steps)
			assert.Equal(testcase.Address(5), res.Address)
		case "store-load-test":
			assert.Equal(testcase.Address(9), res.Address)
		}
	}
}

func TestRunAllReferenceFailure(t *testing.T) {
	assert := assert.New(t)

	s := New().MustAdd("wrong-addi", testcase.TestCase{
		word(0x00100093), // addi x1, x0, 1
		check("r1 == 2"),
		check("end"),
	})

	out := &bytes.Buffer{}
	run := NewRunner(&report.Console{Output: out})
	dev := cpu.NewDevice(cpu.MEMORY_SIZE)

	sum, err := run.RunAll(context.Background(), s, dev)
	assert.NoError(err)
	assert.False(sum.Passed)
	assert.Equal(driver.Failed, sum.Results[0].State)
	assert.Equal(testcase.Address(1), sum.Results[0].Address)
	assert.Contains(out.String(), "failed at address '1'")
	assert.Contains(out.String(), "Expected value: 0x2, Actual value: 0x1")
	assert.Equal(1, strings.Count(out.String(), "Expected value"))
}
