package dynamic

import "github.com/Nader-Sl/capnproto/errcat"

// logInputValidation reports a recoverable kind-mismatch or bad-data
// condition. Every call site already knows the zero value it will
// substitute; the error itself is discarded at most call sites, and the
// caller reports and continues with that zero-valued result.
func logInputValidation(format string, args ...interface{}) {
	errcat.InputValidation(format, args...)
}

func logNotImplemented(format string, args ...interface{}) {
	errcat.NotImplemented(format, args...)
}
