// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate renders user visible messages in the caller's locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer *message.Printer
	once    sync.Once
)

func setup() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("isaconform: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage forces the message language, overriding the detected locale.
func SetLanguage(tag language.Tag) {
	once.Do(func() {})
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	once.Do(setup)
	return printer.Sprintf(key, args...)
}
