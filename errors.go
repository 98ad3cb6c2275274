package rex

import "errors"

// ErrNoMatch is reported by Stepper.Err once the input holds no further
// match. The engine rewinds the cursor at that point; call Stepper.Reset
// before reusing the stepper.
var ErrNoMatch = errors.New("rex: no further match")

// ErrNotPattern is returned by Make for values that are neither pattern
// source text nor a compiled pattern.
var ErrNotPattern = errors.New("rex: value is not a pattern")

// PatternError reports a pattern that could not be compiled.
//
// Err is the engine's compile error for malformed source, which unwraps to
// *syntax.Error, or an error wrapping ErrUnknownFlag for a bad flag string.
type PatternError struct {
	Source string
	Flags  string
	Err    error
}

func (e *PatternError) Error() string {
	msg := "rex: invalid pattern `" + e.Source + "`"
	if e.Flags != "" {
		msg += " with flags " + e.Flags
	}
	return msg + ": " + e.Err.Error()
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
