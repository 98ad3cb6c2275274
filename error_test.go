package rex

import (
	"errors"
	"regexp"
	"regexp/syntax"
	"strings"
	"testing"

	"github.com/coregx/coregex"
)

// TestPatternErrorWrapsEngineError verifies that compile errors keep the engine's error.
func TestPatternErrorWrapsEngineError(t *testing.T) {
	patterns := []string{
		"[invalid",
		`\`,
		"(abc",
		"*abc",
		`\8`,
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			_, stdlibErr := regexp.Compile(pattern)
			if stdlibErr == nil {
				t.Skip("stdlib accepts this pattern")
			}

			_, err := New(pattern, "")
			if err == nil {
				t.Fatalf("New(%q) expected error, got nil", pattern)
			}

			var perr *PatternError
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not a *PatternError", err)
			}
			if perr.Source != pattern {
				t.Errorf("Source = %q, want %q", perr.Source, pattern)
			}

			var serr *syntax.Error
			if !errors.As(err, &serr) {
				t.Errorf("error does not unwrap to *syntax.Error: %v", err)
			}

			_, engineErr := coregex.Compile(pattern)
			if !strings.HasSuffix(err.Error(), engineErr.Error()) {
				t.Errorf("error message %q does not end with engine message %q", err.Error(), engineErr.Error())
			}
		})
	}
}

// TestPatternErrorMessage verifies the error text.
func TestPatternErrorMessage(t *testing.T) {
	_, err := New("(", "gi")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "rex: invalid pattern `(` with flags gi: ") {
		t.Errorf("unexpected message: %s", err)
	}

	_, err = New("a", "q")
	if !errors.Is(err, ErrUnknownFlag) {
		t.Errorf("New with bad flags: %v, want ErrUnknownFlag", err)
	}
	if !strings.HasPrefix(err.Error(), "rex: invalid pattern `a` with flags q: ") {
		t.Errorf("unexpected message: %s", err)
	}
}

// TestMustNewPanic verifies MustNew and MustCompile panic with the error text.
func TestMustNewPanic(t *testing.T) {
	for name, fn := range map[string]func(){
		"MustNew":     func() { MustNew("[invalid", "") },
		"MustCompile": func() { MustCompile("[invalid", NoFlags) },
	} {
		t.Run(name, func(t *testing.T) {
			var msg string
			func() {
				defer func() {
					if r := recover(); r != nil {
						msg = r.(string)
					}
				}()
				fn()
			}()
			if !strings.HasPrefix(msg, "rex: invalid pattern `[invalid`") {
				t.Errorf("panic = %q", msg)
			}
		})
	}
}
