package suite

import (
	"errors"

	"github.com/ezrec/isaconform/translate"
)

var f = translate.From

var (
	ErrDuplicate   = errors.New(f("test name duplicated"))
	ErrUnknownTest = errors.New(f("test name unknown"))
	ErrTestMissing = errors.New(f("entry outside of a .test"))
	ErrTestName    = errors.New(f(".test syntax"))
	ErrEquate      = errors.New(f(".equ syntax"))
	ErrEquateDup   = errors.New(f(".equ duplicated"))
	ErrEndLonely   = errors.New(f(".end without .test"))
	ErrDirective   = errors.New(f("directive missing"))
	ErrPolicy      = errors.New(f("policy unknown"))
)

// ErrSyntax indicates the location of a catalog error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrNamed attaches a test or catalog name to an error.
type ErrNamed struct {
	Name string
	Err  error
}

func (err *ErrNamed) Error() string {
	return f("'%v' %v", err.Name, err.Err)
}

func (err *ErrNamed) Unwrap() error {
	return err.Err
}

// ErrParseNumber reports an instruction word that is not a number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a 32-bit word", string(err))
}

// ErrParseExpression reports a $(...) expression that did not produce an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
