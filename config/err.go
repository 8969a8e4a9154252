package config

import (
	"errors"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/isaconform/translate"
)

var f = translate.From

var (
	ErrUndecoded = errors.New(f("unknown configuration keys"))
)

// ErrKeys lists the keys a configuration did not recognise.
type ErrKeys struct {
	Keys []toml.Key
}

func (err *ErrKeys) Error() string {
	return f("%v: %v", ErrUndecoded, err.Keys)
}

func (err *ErrKeys) Unwrap() error {
	return ErrUndecoded
}

// ErrFile indicates the configuration file of an error.
type ErrFile struct {
	Path string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}
