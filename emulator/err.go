package emulator

import (
	"github.com/ezrec/lisc/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrStepLimit indicates the emulator ran the maximum number of instructions
// without the CPU stopping.
type ErrStepLimit int

func (err ErrStepLimit) Error() string {
	return f("stopped after %d instructions", int(err))
}

func (err ErrStepLimit) Is(target error) (ok bool) {
	_, ok = target.(ErrStepLimit)
	return
}
