package cpu

import (
	"errors"

	"github.com/ezrec/isaconform/translate"
)

var f = translate.From

var (
	ErrIpMisaligned    = errors.New(f("ip misaligned"))
	ErrProgramSize     = errors.New(f("program larger than memory"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrNotStarted      = errors.New(f("device not started"))
)

// ErrInstruction reports an instruction the core does not implement.
type ErrInstruction Code

func (ei ErrInstruction) Error() string {
	return f("illegal instruction 0x%08x (%v)", uint32(ei), Code(ei).Op())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

// ErrMemoryRange reports an access outside of memory.
type ErrMemoryRange uint32

func (em ErrMemoryRange) Error() string {
	return f("address 0x%08x out of range", uint32(em))
}

func (em ErrMemoryRange) Is(err error) (ok bool) {
	_, ok = err.(ErrMemoryRange)
	return
}
