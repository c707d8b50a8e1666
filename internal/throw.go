package internal

import "github.com/pkg/errors"

// Threading errors through the per-cell loops would clutter every helper for
// the sake of a couple of preconditions (mostly the footprint fitting the
// grid). Instead, we use panics, and the public API recovers to convert to an
// error.

// A CoverageError carries a precondition violation up to the recover. It is a
// distinct type so that runtime errors, which also implement error, are not
// mistaken for one.
type CoverageError struct {
	error
}

func (e CoverageError) Unwrap() error {
	return e.error
}

// Panic with a CoverageError.
func fatalf(format string, args ...interface{}) {
	panic(CoverageError{errors.Errorf(format, args...)})
}

func HandleCoveragePanicRecover(r interface{}) error {
	if r != nil {
		if coverageError, ok := r.(CoverageError); ok {
			return coverageError.error
		}
		panic(r)
	}
	return nil
}
