package rex

import (
	"regexp"
	"testing"

	"github.com/coregx/coregex"
)

// TestEscape tests metacharacter escaping
func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a.b*c", `a\.b\*c`},
		{"[a-z]", `\[a\-z\]`},
		{"/path/{id}", `\/path\/\{id\}`},
		{`(x+y)?|^$\`, `\(x\+y\)\?\|\^\$\\`},
		{"héllo.wörld", `héllo\.wörld`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestEscapeRoundTrip tests that escaped text matches itself literally
func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		`-[]/{}()*+?.\^$|`,
		"1+1=2?",
		"C:\\dir\\file.txt",
		"a-b [c] {d}",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			pattern := "^" + Escape(in) + "$"
			if !regexp.MustCompile(pattern).MatchString(in) {
				t.Errorf("stdlib: %q does not match %q", pattern, in)
			}
			re := MustNew(Escape(in), "")
			m := re.First("xx" + in + "yy")
			if m == nil || m.String() != in || m.Index != 2 {
				t.Errorf("First = %v, want %q at 2", m, in)
			}
		})
	}
}

// TestIsPattern tests pattern detection
func TestIsPattern(t *testing.T) {
	var nilPattern *Pattern
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"pattern", MustCompile(`a`, NoFlags), true},
		{"coregex", coregex.MustCompile(`a`), true},
		{"nil pattern", nilPattern, false},
		{"string", "a", false},
		{"nil", nil, false},
		{"stdlib", regexp.MustCompile(`a`), false},
		{"handle", MustNew(`a`, ""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPattern(tt.v); got != tt.want {
				t.Errorf("IsPattern(%T) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
