package rex

import (
	"sort"
	"unicode/utf8"

	"github.com/coregx/coregex"
)

// Pattern is a compiled pattern together with its flags and match cursor.
//
// Without the Global flag a Pattern is stateless: Exec always reports the
// leftmost match. With Global set, Exec resumes at LastIndex, advances it past
// each match it reports and rewinds it to 0 when the input is exhausted.
//
// The compiled program is immutable and shared between clones, but the cursor
// is not: a Pattern must not be used from more than one goroutine at a time.
type Pattern struct {
	source string
	flags  Flags
	re     *coregex.Regex

	lastIndex int

	// Match table for the last input swept in Global mode, and the table
	// position the cursor was last found at.
	swept bool
	input string
	locs  [][]int
	next  int
}

// Compile compiles source with the given flags.
//
// Returns a *PatternError if source is not valid pattern syntax.
//
// Example:
//
//	p, err := rex.Compile(`lorem`, rex.IgnoreCase|rex.Global)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(source string, flags Flags) (*Pattern, error) {
	re, err := coregex.Compile(flags.inline() + source)
	if err != nil {
		return nil, &PatternError{Source: source, Flags: flags.String(), Err: err}
	}
	return &Pattern{source: source, flags: flags, re: re}, nil
}

// CompileString is like Compile but takes the flags as a string such as "gi".
func CompileString(source, flags string) (*Pattern, error) {
	f, err := ParseFlags(flags)
	if err != nil {
		return nil, &PatternError{Source: source, Flags: flags, Err: err}
	}
	return Compile(source, f)
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(source string, flags Flags) *Pattern {
	p, err := Compile(source, flags)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// Source returns the pattern text without the flags.
func (p *Pattern) Source() string {
	return p.source
}

// Flags returns the pattern's flag set.
func (p *Pattern) Flags() Flags {
	return p.flags
}

// Global reports whether the Global flag is set.
func (p *Pattern) Global() bool {
	return p.flags&Global != 0
}

// LastIndex returns the byte offset where the next Global Exec starts.
func (p *Pattern) LastIndex() int {
	return p.lastIndex
}

// SetLastIndex moves the cursor. Negative values are treated as 0.
func (p *Pattern) SetLastIndex(i int) {
	if i < 0 {
		i = 0
	}
	p.lastIndex = i
}

// Regex returns the underlying compiled engine program.
func (p *Pattern) Regex() *coregex.Regex {
	return p.re
}

// String returns the pattern in /source/flags notation.
func (p *Pattern) String() string {
	return "/" + p.source + "/" + p.flags.String()
}

// Clone returns an independent Pattern with the same source and flags and
// an idle cursor.
func (p *Pattern) Clone() *Pattern {
	return &Pattern{source: p.source, flags: p.flags, re: p.re}
}

// withFlags returns a fresh Pattern for the same source under flags.
// The program is reused when the engine flags are unchanged.
func (p *Pattern) withFlags(flags Flags) (*Pattern, error) {
	if flags&engineFlags == p.flags&engineFlags {
		return &Pattern{source: p.source, flags: flags, re: p.re}, nil
	}
	return Compile(p.source, flags)
}

// Test reports whether input contains any match. It neither reads nor moves
// the cursor.
func (p *Pattern) Test(input string) bool {
	return p.re.MatchString(input)
}

// Search returns the byte offset of the leftmost match in input, or -1.
// It neither reads nor moves the cursor.
func (p *Pattern) Search(input string) int {
	loc := p.re.FindStringIndex(input)
	if loc == nil {
		return -1
	}
	return loc[0]
}

// Exec reports the next match in input.
//
// Without the Global flag it returns the leftmost match and leaves the
// cursor alone. With Global it returns the leftmost match starting at or
// after LastIndex and moves LastIndex past it; after an empty match the
// cursor steps over one rune so that the sweep always terminates. When
// nothing is left Exec returns nil and rewinds LastIndex to 0.
//
// A cursor moved by SetLastIndex into the middle of an earlier match is
// honored: the search restarts at that offset, and the text before it is
// not visible to assertions such as \b or ^.
func (p *Pattern) Exec(input string) *Match {
	if !p.Global() {
		return newMatch(input, p.re.FindStringSubmatchIndex(input))
	}
	if p.lastIndex > len(input) {
		p.lastIndex = 0
		return nil
	}

	locs := p.table(input)
	i := p.seek(locs)
	if i > 0 && locs[i-1][1] > p.lastIndex {
		return p.execFrom(input)
	}
	if i == len(locs) {
		p.lastIndex = 0
		return nil
	}
	loc := locs[i]
	p.next = i + 1
	p.lastIndex = advance(input, loc[1], loc[0] == loc[1])
	return newMatch(input, loc)
}

// seek returns the position in locs of the first match starting at or after
// the cursor. A sweep moves one entry per call, so the saved position is
// tried before falling back to a binary search.
func (p *Pattern) seek(locs [][]int) int {
	i := p.next
	if i <= len(locs) &&
		(i == len(locs) || locs[i][0] >= p.lastIndex) &&
		(i == 0 || locs[i-1][0] < p.lastIndex) {
		return i
	}
	i = sort.Search(len(locs), func(j int) bool {
		return locs[j][0] >= p.lastIndex
	})
	p.next = i
	return i
}

// execFrom runs a fresh search on input[lastIndex:] for a cursor that sits
// inside a match of the table.
func (p *Pattern) execFrom(input string) *Match {
	start := p.lastIndex
	loc := p.re.FindStringSubmatchIndex(input[start:])
	if loc == nil {
		p.lastIndex = 0
		return nil
	}
	for j := range loc {
		if loc[j] >= 0 {
			loc[j] += start
		}
	}
	p.lastIndex = advance(input, loc[1], loc[0] == loc[1])
	return newMatch(input, loc)
}

// Match runs the native one-shot match. Without Global it returns the
// leftmost match and its groups. With Global it returns the text of every
// match, without groups, and rewinds the cursor. Returns nil if nothing
// matched.
func (p *Pattern) Match(input string) []string {
	if !p.Global() {
		return p.re.FindStringSubmatch(input)
	}
	p.lastIndex = 0
	locs := p.table(input)
	if len(locs) == 0 {
		return nil
	}
	texts := make([]string, len(locs))
	for i, loc := range locs {
		texts[i] = input[loc[0]:loc[1]]
	}
	return texts
}

// table returns all submatch index pairs for input, reusing the previous
// sweep when input is unchanged.
func (p *Pattern) table(input string) [][]int {
	if !p.swept || p.input != input {
		p.locs = p.re.FindAllStringSubmatchIndex(input, -1)
		p.input = input
		p.swept = true
		p.next = 0
	}
	return p.locs
}

// advance returns the cursor position following a match that ends at end.
func advance(input string, end int, empty bool) int {
	if !empty {
		return end
	}
	if end >= len(input) {
		return end + 1
	}
	_, width := utf8.DecodeRuneInString(input[end:])
	return end + width
}
