package rex

// Match is the result of one successful match.
//
// Groups[0] is the full match and Groups[i] is the text of capture group i.
// A group that did not take part in the match holds "", use Group to tell
// it apart from a group that matched the empty string.
//
// Index is the byte offset of the match start within Input.
type Match struct {
	Groups []string
	Index  int
	Input  string

	// loc holds index pairs as returned by FindStringSubmatchIndex.
	loc []int
}

// newMatch builds a Match from submatch index pairs over input.
// Returns nil if loc is nil.
func newMatch(input string, loc []int) *Match {
	if loc == nil {
		return nil
	}
	groups := make([]string, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = input[loc[2*i]:loc[2*i+1]]
		}
	}
	return &Match{
		Groups: groups,
		Index:  loc[0],
		Input:  input,
		loc:    loc,
	}
}

// gapMatch builds the single-group Match reported for inverse iteration.
func gapMatch(input string, start, end int) *Match {
	return newMatch(input, []int{start, end})
}

// String returns the full matched text.
func (m *Match) String() string {
	return m.Groups[0]
}

// Len returns the number of groups, including group 0.
func (m *Match) Len() int {
	return len(m.Groups)
}

// Start returns the byte offset where the match begins.
func (m *Match) Start() int {
	return m.loc[0]
}

// End returns the byte offset just past the match.
func (m *Match) End() int {
	return m.loc[1]
}

// Group returns the text of group i and whether the group took part in the
// match. Out of range groups report false.
//
// Example:
//
//	m := rex.MustNew(`(a)|(b)`, "").First("b")
//	m.Group(1) // "", false
//	m.Group(2) // "b", true
func (m *Match) Group(i int) (string, bool) {
	if i < 0 || i >= len(m.Groups) || m.loc[2*i] < 0 {
		return "", false
	}
	return m.Groups[i], true
}

// GroupIndex returns the [start, end) byte offsets of group i, or nil if
// the group did not take part in the match.
func (m *Match) GroupIndex(i int) []int {
	if i < 0 || i >= len(m.Groups) || m.loc[2*i] < 0 {
		return nil
	}
	return m.loc[2*i : 2*i+2]
}
