// Package d provides the low-level precondition helper used throughout the
// reflection runtime: an unconditional-panic half for caller-contract
// violations. Recoverable failures live in package errcat instead, since
// that class never needs to unwind a call stack.
package d

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// Chk is the testify-backed assertion object preconditions panic through.
// Panics raised through Chk are always a caller bug and must never be
// caught for control flow.
var Chk = assert.New(&panicker{})

type panicker struct{}

func (s panicker) Errorf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// PanicIfFalse panics with msg if cond is false. Use for caller-contract
// preconditions (index bounds, schema membership) — never for recoverable
// input validation.
func PanicIfFalse(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// PanicIfTrue panics with msg if cond is true.
func PanicIfTrue(cond bool, format string, args ...interface{}) {
	if cond {
		panic(fmt.Sprintf(format, args...))
	}
}
