// SPDX-License-Identifier: Unlicense OR MIT

package hw

import "fmt"

// FatalError is the panic value of the default fatal handler. It
// reports a violated precondition the device cannot recover from.
type FatalError struct {
	Msg string
	Err error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hw: %s: %v", e.Msg, e.Err)
	}
	return "hw: " + e.Msg
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// defaultFatal panics. Unless recovered the process terminates
// with the message.
func defaultFatal(err *FatalError) {
	panic(err)
}
