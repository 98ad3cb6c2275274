package rex

import "github.com/coregx/coregex"

// metaChars are the characters Escape prefixes with a backslash.
const metaChars = `-[]/{}()*+?.\^$|`

// Escape returns s with every pattern metacharacter escaped, so the result
// matches s literally when embedded in a larger pattern.
//
// Unlike coregex.QuoteMeta, Escape also escapes '-' and '/', which keeps the
// result safe inside a character class and in /source/flags notation.
//
// Example:
//
//	rex.Escape("a.b*c") // `a\.b\*c`
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if isMeta(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isMeta(s[i]) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

func isMeta(c byte) bool {
	for i := 0; i < len(metaChars); i++ {
		if c == metaChars[i] {
			return true
		}
	}
	return false
}

// IsPattern reports whether v is a compiled pattern: a *Pattern or a
// *coregex.Regex. Source strings are not patterns.
func IsPattern(v any) bool {
	switch v := v.(type) {
	case *Pattern:
		return v != nil
	case *coregex.Regex:
		return v != nil
	default:
		return false
	}
}
