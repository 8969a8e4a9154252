package suite

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/isaconform/testcase"
)

func TestParseFS(t *testing.T) {
	assert := assert.New(t)

	filesys := fstest.MapFS{
		"b.tests":        {Data: []byte(".test second\n0x00100093\n? r1 == 1\n")},
		"a.tests":        {Data: []byte(".test first\n? end\n")},
		"README":         {Data: []byte("not a catalog\n")},
		"more/c.TESTS":   {Data: []byte(".test third\nSTEP\n? r1 == 1\n")},
		"more/notes.txt": {Data: []byte(".test ignored\n")},
	}

	ld := &Loader{}
	ld.Predefine("STEP", "0x00100093")
	s, err := ld.ParseFS(filesys)
	assert.NoError(err)
	assert.Equal([]string{"first", "second", "third"}, s.Names())

	tc, ok := s.Get("third")
	assert.True(ok)
	assert.Equal(testcase.TestCase{
		testcase.Instruction(0x00100093),
		testcase.Control("r1 == 1"),
	}, tc)
}

func TestParseFSErrors(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	_, err := ld.ParseFS(fstest.MapFS{
		"a.tests": {Data: []byte(".test same\n")},
		"b.tests": {Data: []byte(".test same\n")},
	})
	assert.ErrorIs(err, ErrDuplicate)
	assert.Contains(err.Error(), "b.tests")

	_, err = ld.ParseFS(fstest.MapFS{
		"bad.tests": {Data: []byte("0x1\n")},
	})
	assert.ErrorIs(err, ErrTestMissing)
	assert.Contains(err.Error(), "bad.tests")
}
