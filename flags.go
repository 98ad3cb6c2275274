package rex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFlag is wrapped by errors for flag letters rex does not recognize.
var ErrUnknownFlag = errors.New("rex: unknown flag")

// Flags is a set of pattern mode switches.
//
// Global is handled by rex itself and turns the pattern into a stateful
// cursor. The remaining flags are passed to the engine as an inline flag
// group, so `(?i)` and IgnoreCase are equivalent.
type Flags uint8

const (
	// Global enables repeated, stateful matching driven by LastIndex.
	Global Flags = 1 << iota

	// IgnoreCase makes matching case-insensitive (engine flag i).
	IgnoreCase

	// Multiline lets ^ and $ match at line boundaries (engine flag m).
	Multiline

	// DotAll lets . match \n (engine flag s).
	DotAll

	// Ungreedy swaps the meaning of x* and x*? (engine flag U).
	Ungreedy
)

// NoFlags is the empty flag set.
const NoFlags Flags = 0

// AllFlags holds every recognized flag.
const AllFlags = Global | IgnoreCase | Multiline | DotAll | Ungreedy

// engineFlags are the flags forwarded to the engine.
const engineFlags = IgnoreCase | Multiline | DotAll | Ungreedy

// flagLetters lists flags in canonical order.
var flagLetters = [...]struct {
	flag   Flags
	letter byte
}{
	{Global, 'g'},
	{IgnoreCase, 'i'},
	{Multiline, 'm'},
	{DotAll, 's'},
	{Ungreedy, 'U'},
}

// ParseFlags converts a flag string such as "gi" into a Flags set.
//
// Letters may appear in any order and more than once. An unknown letter
// returns an error wrapping ErrUnknownFlag.
//
// Example:
//
//	f, _ := rex.ParseFlags("igi")
//	println(f.String()) // "gi"
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for i := 0; i < len(s); i++ {
		flag, ok := flagFor(s[i])
		if !ok {
			return NoFlags, fmt.Errorf("%w %q in %q", ErrUnknownFlag, s[i], s)
		}
		f |= flag
	}
	return f, nil
}

func flagFor(c byte) (Flags, bool) {
	for _, fl := range flagLetters {
		if fl.letter == c {
			return fl.flag, true
		}
	}
	return NoFlags, false
}

// String returns the flag letters in canonical "gimsU" order.
func (f Flags) String() string {
	var b strings.Builder
	for _, fl := range flagLetters {
		if f&fl.flag != 0 {
			b.WriteByte(fl.letter)
		}
	}
	return b.String()
}

// Has reports whether every flag in other is set in f.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// With returns the union of f and other.
func (f Flags) With(other Flags) Flags {
	return f | other
}

// Without returns f with the flags in other cleared.
func (f Flags) Without(other Flags) Flags {
	return f &^ other
}

// inline returns the engine prefix for f, for example "(?im)".
// Returns empty string when no engine flag is set.
func (f Flags) inline() string {
	f &= engineFlags
	if f == 0 {
		return ""
	}
	return "(?" + f.String() + ")"
}
