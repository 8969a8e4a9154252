package directive

import (
	"errors"

	"github.com/ezrec/isaconform/translate"
)

var f = translate.From

var (
	ErrOperator = errors.New(f("expected a single '=='"))
	ErrRegister = errors.New(f("register invalid"))
	ErrValue    = errors.New(f("value is not hexadecimal"))
)

// ErrSyntax reports a malformed directive.
type ErrSyntax struct {
	Text string
	Err  error
}

func (err *ErrSyntax) Error() string {
	return f("directive '%v' %v", err.Text, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
