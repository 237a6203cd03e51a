// Package errcat classifies failures into three categories: a
// precondition violation is a caller bug and is fatal, an input-validation
// failure is recoverable and logged, and a not-implemented gap is always
// logged and, where a result is needed, answered with a default value.
//
// None of the three categories returns an error for normal control flow —
// callers in dynamic call these for their side effect (panic or log) and
// then construct their own zero-valued result. The schema pool's lookups
// and AddNoCopy also pass the returned error on to their own caller.
package errcat

import (
	"fmt"
	"log"

	"github.com/Nader-Sl/capnproto/d"
)

// Precondition panics with a descriptive message when cond is false. This
// is a caller bug — list index out of bounds, a field whose schema the pool
// does not hold — and must never be caught for control flow.
func Precondition(cond bool, format string, args ...interface{}) {
	d.Chk.True(cond, fmt.Sprintf(format, args...))
}

// InputValidation reports a recoverable data-or-type-mismatch failure: a
// DynamicValue accessed at the wrong kind, a union discriminant out of
// range, an object pointer re-interpreted as the wrong kind. It logs and
// returns an error the caller is free to ignore once it has substituted a
// zero-valued result.
func InputValidation(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	log.Printf("input validation: %s", msg)
	return &Error{Kind: KindInputValidation, Msg: msg}
}

// NotImplemented reports a known gap (interfaces, copying an Object field,
// schema compatibility checking on duplicate add). Always logged.
func NotImplemented(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	log.Printf("not implemented: %s", msg)
	return &Error{Kind: KindNotImplemented, Msg: msg}
}

// Kind distinguishes the two non-fatal categories so callers that do care
// (tests, the CLI) can branch on it without string matching.
type Kind int

const (
	KindInputValidation Kind = iota
	KindNotImplemented
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
