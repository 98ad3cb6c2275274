package rex

import (
	"errors"
	"testing"
)

// TestParseFlags tests flag string parsing
func TestParseFlags(t *testing.T) {
	tests := []struct {
		in      string
		want    Flags
		wantErr bool
	}{
		{"", NoFlags, false},
		{"g", Global, false},
		{"gi", Global | IgnoreCase, false},
		{"iig", Global | IgnoreCase, false},
		{"Usmig", AllFlags, false},
		{"u", NoFlags, true},
		{"gx", NoFlags, true},
		{"G", NoFlags, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFlags(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFlags(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownFlag) {
				t.Errorf("error %v does not wrap ErrUnknownFlag", err)
			}
			if got != tt.want {
				t.Errorf("ParseFlags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestFlagsString tests canonical ordering
func TestFlagsString(t *testing.T) {
	tests := []struct {
		f    Flags
		want string
	}{
		{NoFlags, ""},
		{Ungreedy | Global, "gU"},
		{DotAll | Multiline | IgnoreCase, "ims"},
		{AllFlags, "gimsU"},
	}

	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Flags(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

// TestFlagsSet tests set operations
func TestFlagsSet(t *testing.T) {
	f := Global.With(IgnoreCase).With(Global)
	if f != Global|IgnoreCase {
		t.Errorf("With = %q", f)
	}
	if !f.Has(Global) || !f.Has(Global|IgnoreCase) || f.Has(Global|Multiline) {
		t.Errorf("Has misbehaves for %q", f)
	}
	if got := f.Without(Global | DotAll); got != IgnoreCase {
		t.Errorf("Without = %q", got)
	}
	if got := AllFlags.Without(AllFlags); got != NoFlags {
		t.Errorf("Without(AllFlags) = %q", got)
	}
}

// TestFlagsInline tests the engine flag group
func TestFlagsInline(t *testing.T) {
	tests := []struct {
		f    Flags
		want string
	}{
		{NoFlags, ""},
		{Global, ""},
		{Global | IgnoreCase, "(?i)"},
		{AllFlags, "(?imsU)"},
	}

	for _, tt := range tests {
		if got := tt.f.inline(); got != tt.want {
			t.Errorf("Flags(%q).inline() = %q, want %q", tt.f, got, tt.want)
		}
	}
}
