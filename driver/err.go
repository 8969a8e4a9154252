package driver

import (
	"errors"

	"github.com/ezrec/isaconform/translate"
)

var f = translate.From

var (
	ErrProgramCounter = errors.New(f("program counter not on an instruction boundary"))
	ErrOutcome        = errors.New(f("invalid directive outcome"))
)

// ErrRuntime indicates the test and address of a fatal run error.
type ErrRuntime struct {
	Test    string
	Address uint64
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("test '%v' address %v: %v", err.Test, err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
