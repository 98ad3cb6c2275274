// Package rex provides safe iteration and query helpers over a stateful
// regular expression cursor.
//
// Looping over matches with a stateful pattern has two classic traps:
//   - Looping without the global flag matches the same text forever
//   - Reusing a pattern without rewinding its cursor silently skips matches
//
// rex removes both. An RE owns a private copy of its pattern, switches on the
// Global flag whenever an operation needs to loop and rewinds the cursor when
// the loop is done. On top of that it offers the queries the engine lacks:
// first, nth and last match, match offsets, and inverse (gap) iteration.
//
// Matching is done by coregex, so pattern syntax is RE2 syntax as accepted
// by Go's regexp package, and all offsets are byte offsets.
//
// Basic usage:
//
//	re, err := rex.New(`\bs[a-z]+\b`, "i")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	re.Each(text, func(m *rex.Match, i int, p *rex.Pattern) rex.Control {
//	    fmt.Println(i, m.Index, m)
//	    if i == 9 {
//	        return rex.Stop
//	    }
//	    return rex.Continue
//	})
//
//	last := re.Last(text)
//	offsets := re.Indices(text)
//
// Manual stepping:
//
//	s := re.Exec(text)
//	for s.Next(handle).Err() == nil {
//	}
//	s.Reset()
//
// An RE and the Steppers it creates share one cursor. They must not be used
// from several goroutines at once, and callbacks must not start another
// iteration on the same RE.
package rex

import (
	"fmt"

	"github.com/coregx/coregex"
)

// Control tells an iteration whether to go on.
type Control int

const (
	// Continue moves on to the next match.
	Continue Control = iota

	// Stop ends the iteration; remaining matches are not visited.
	Stop
)

// EachFunc is called for every match visited by an iteration. index counts
// visited matches from 0; p is the RE's working pattern.
type EachFunc func(m *Match, index int, p *Pattern) Control

// RE wraps one pattern and runs queries against inputs passed per call.
//
// The zero value is not usable; create an RE with New, MustNew, FromPattern
// or Make.
type RE struct {
	pattern *Pattern
}

// New compiles source with the flags in flags (for example "gi") and returns
// a handle for it.
//
// Returns a *PatternError if source or flags are invalid.
//
// Example:
//
//	re, err := rex.New(`lorem`, "i")
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(source, flags string) (*RE, error) {
	p, err := CompileString(source, flags)
	if err != nil {
		return nil, err
	}
	return &RE{pattern: p}, nil
}

// MustNew is like New but panics if the pattern cannot be compiled.
//
// Example:
//
//	var words = rex.MustNew(`\w+`, "g")
func MustNew(source, flags string) *RE {
	re, err := New(source, flags)
	if err != nil {
		panic(err.Error())
	}
	return re
}

// FromPattern returns a handle working on a clone of p. p itself is never
// modified: neither its flags nor its cursor.
func FromPattern(p *Pattern) *RE {
	return &RE{pattern: p.Clone()}
}

// Make builds a handle from source text or an already compiled pattern.
//
// v may be a string, compiled with the optional flags string, a *Pattern,
// which is cloned, or a *coregex.Regex, which is taken without flags.
// Flags given alongside a compiled pattern are added to its own.
// Any other value fails with ErrNotPattern.
func Make(v any, flags ...string) (*RE, error) {
	var fs string
	for _, f := range flags {
		fs += f
	}
	extra, err := ParseFlags(fs)
	if err != nil {
		return nil, &PatternError{Source: fmt.Sprint(v), Flags: fs, Err: err}
	}

	switch v := v.(type) {
	case string:
		p, err := Compile(v, extra)
		if err != nil {
			return nil, err
		}
		return &RE{pattern: p}, nil
	case *Pattern:
		if v == nil {
			break
		}
		return FromPattern(v).AddFlags(extra), nil
	case *coregex.Regex:
		if v == nil {
			break
		}
		p, err := Compile(v.String(), extra)
		if err != nil {
			return nil, err
		}
		return &RE{pattern: p}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotPattern, v)
}

// Pattern returns the working pattern owned by r.
//
// It is replaced whenever the flags change, so hold on to it only for
// inspection.
func (r *RE) Pattern() *Pattern {
	return r.pattern
}

// String returns the pattern in /source/flags notation.
func (r *RE) String() string {
	return r.pattern.String()
}

// Flags returns the current flag set. Flags.String gives the "gimsU" form.
func (r *RE) Flags() Flags {
	return r.pattern.flags
}

// SetFlags recompiles the pattern with exactly flags. The new pattern starts
// with an idle cursor.
func (r *RE) SetFlags(flags Flags) *RE {
	p, err := r.pattern.withFlags(flags)
	if err != nil {
		// A source that compiled once compiles under any engine flag group.
		panic(err.Error())
	}
	r.pattern = p
	return r
}

// AddFlags recompiles the pattern with flags added to the current set.
//
// Example:
//
//	re := rex.MustNew(`\w+`, "m").AddFlags(rex.Global | rex.IgnoreCase)
//	re.Flags().String() // "gim"
func (r *RE) AddFlags(flags Flags) *RE {
	return r.SetFlags(r.pattern.flags.With(flags))
}

// RemoveFlags recompiles the pattern with flags cleared from the current set.
// Pass AllFlags to remove everything.
func (r *RE) RemoveFlags(flags Flags) *RE {
	return r.SetFlags(r.pattern.flags.Without(flags))
}

// Clone returns a new Pattern with the same source and flags as r. The
// clone is independent of r.
func (r *RE) Clone() *Pattern {
	return r.pattern.Clone()
}

// global switches on the Global flag if needed and returns the pattern to
// loop with.
func (r *RE) global() *Pattern {
	if !r.pattern.Global() {
		r.AddFlags(Global)
	}
	return r.pattern
}

// rewind leaves the cursor idle.
func (r *RE) rewind() {
	r.pattern.lastIndex = 0
}

// Test reports whether input contains any match.
func (r *RE) Test(input string) bool {
	return r.pattern.Test(input)
}

// Match returns the leftmost match and its groups when r is not Global,
// or the text of every match when it is. Returns nil if nothing matched.
//
// Example:
//
//	rex.MustNew(`(\d)(\d)`, "").Match("12 34")  // ["12" "1" "2"]
//	rex.MustNew(`(\d)(\d)`, "g").Match("12 34") // ["12" "34"]
func (r *RE) Match(input string) []string {
	return r.pattern.Match(input)
}

// Each calls fn for every match in input, left to right, until fn returns
// Stop. The Global flag is switched on if needed and the cursor is idle
// again when Each returns.
//
// Example:
//
//	var words []string
//	rex.MustNew(`lorem`, "i").Each(text, func(m *rex.Match, i int, _ *rex.Pattern) rex.Control {
//	    words = append(words, m.String())
//	    return rex.Continue
//	})
func (r *RE) Each(input string, fn EachFunc) {
	p := r.global()
	p.lastIndex = 0
	for i := 0; ; i++ {
		m := p.Exec(input)
		if m == nil || fn(m, i, p) == Stop {
			break
		}
	}
	r.rewind()
}

// EachRight calls fn for every match in input, from the last to the first,
// until fn returns Stop. index counts from 0 in visiting order, so the last
// match in input is visited with index 0.
func (r *RE) EachRight(input string, fn EachFunc) {
	all := r.All(input)
	for i := len(all) - 1; i >= 0; i-- {
		if fn(all[i], len(all)-1-i, r.pattern) == Stop {
			break
		}
	}
}

// EachInverse calls fn for every gap in input: the text before the first
// match, between matches and after the last match. With no match at all the
// whole input is a single gap. The leading gap is skipped when the first
// match starts at 0 and the trailing gap when the last match ends the input,
// but the empty gap between two adjacent matches is reported.
//
// Each gap is reported as a Match with a single group, Index set to the gap
// start, and index counting gaps from 0.
//
// Example:
//
//	rex.MustNew(`,\s*`, "").EachInverse("a, b,c", fn) // "a", "b", "c"
//	rex.MustNew(`,`, "").EachInverse("a,,b", fn)       // "a", "", "b"
func (r *RE) EachInverse(input string, fn EachFunc) {
	p := r.global()
	p.lastIndex = 0
	defer r.rewind()

	i, pos := 0, 0
	emit := func(end int) bool {
		ok := fn(gapMatch(input, pos, end), i, p) != Stop
		i++
		return ok
	}

	first := true
	for m := p.Exec(input); m != nil; m = p.Exec(input) {
		if (!first || m.Start() > 0) && !emit(m.Start()) {
			return
		}
		first = false
		pos = m.End()
	}
	if pos < len(input) {
		emit(len(input))
	}
}

// Map calls fn for every match of r in input, left to right, and returns
// the results. The Global flag is switched on if needed. Unlike Each, Map
// does not rewind the cursor itself; a completed sweep leaves it at 0.
//
// Example:
//
//	words := rex.Map(re, text, func(m *rex.Match, _ int, _ *rex.Pattern) string {
//	    return m.String()
//	})
func Map[T any](r *RE, input string, fn func(m *Match, index int, p *Pattern) T) []T {
	p := r.global()
	p.lastIndex = 0
	var result []T
	for i := 0; ; i++ {
		m := p.Exec(input)
		if m == nil {
			break
		}
		result = append(result, fn(m, i, p))
	}
	return result
}

// All returns every match in input, left to right. Returns nil if there is
// no match.
func (r *RE) All(input string) []*Match {
	return Map(r, input, func(m *Match, _ int, _ *Pattern) *Match { return m })
}

// Exec returns a Stepper for pulling matches from input one at a time.
func (r *RE) Exec(input string) *Stepper {
	return &Stepper{re: r, input: input}
}

// Count returns the number of matches in input.
func (r *RE) Count(input string) int {
	return len(r.All(input))
}

// First returns the leftmost match in input, or nil.
func (r *RE) First(input string) *Match {
	return r.FirstAt(input, 0)
}

// FirstAt returns the leftmost match in input[start:], or nil. Offsets in
// the result are relative to start.
func (r *RE) FirstAt(input string, start int) *Match {
	sub := input[clamp(start, len(input)):]
	m := newMatch(sub, r.pattern.re.FindStringSubmatchIndex(sub))
	r.rewind()
	return m
}

// FirstIndex returns the byte offset of the leftmost match in input, or -1.
func (r *RE) FirstIndex(input string) int {
	return r.FirstIndexAt(input, 0)
}

// FirstIndexAt returns the offset of the leftmost match in input[start:],
// relative to start, or -1.
func (r *RE) FirstIndexAt(input string, start int) int {
	i := r.pattern.Search(input[clamp(start, len(input)):])
	r.rewind()
	return i
}

// Nth returns the match at position n (from 0) among all matches in input,
// or nil if n is negative or out of range.
func (r *RE) Nth(input string, n int) *Match {
	return r.NthAt(input, n, 0)
}

// NthAt is like Nth but only considers input[start:]. Offsets in the result
// are relative to start.
//
// Example:
//
//	re := rex.MustNew(`\d`, "")
//	re.NthAt("1 2 3 4", 1, 2).String() // "3"
func (r *RE) NthAt(input string, n, start int) *Match {
	if n < 0 {
		return nil
	}
	all := r.All(input[clamp(start, len(input)):])
	if n >= len(all) {
		return nil
	}
	return all[n]
}

// Last returns the last match in input, or nil.
func (r *RE) Last(input string) *Match {
	all := r.All(input)
	if len(all) == 0 {
		return nil
	}
	return all[len(all)-1]
}

// LastIndex returns the byte offset of the last match in input, or -1.
func (r *RE) LastIndex(input string) int {
	return r.LastIndexAt(input, 0)
}

// LastIndexAt returns the offset of the last match in input relative to
// start. Returns -1 if there is no match or the last match does not start
// strictly after start, which includes a last match at offset 0.
func (r *RE) LastIndexAt(input string, start int) int {
	last := r.Last(input)
	if last == nil || last.Index <= start {
		return -1
	}
	return last.Index - start
}

// Indices returns the byte offsets of every match in input.
func (r *RE) Indices(input string) []int {
	return r.IndicesAt(input, 0)
}

// IndicesAt returns the offsets of every match in input that starts at or
// after start. Offsets are absolute, not relative to start.
func (r *RE) IndicesAt(input string, start int) []int {
	var offsets []int
	r.Each(input, func(m *Match, _ int, _ *Pattern) Control {
		if m.Index >= start {
			offsets = append(offsets, m.Index)
		}
		return Continue
	})
	return offsets
}

// CharIndices is an alias for Indices.
func (r *RE) CharIndices(input string) []int {
	return r.Indices(input)
}

// CharIndicesAt is an alias for IndicesAt.
func (r *RE) CharIndicesAt(input string, start int) []int {
	return r.IndicesAt(input, start)
}

// clamp limits a start offset to [0, n].
func clamp(start, n int) int {
	if start < 0 {
		return 0
	}
	if start > n {
		return n
	}
	return start
}
