package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("test 'addi' failed", From("test '%v' failed", "addi"))
	assert.Equal("no arguments", From("no arguments"))
}
