package rex

// StepFunc is called by Stepper.Next with the match found and the step
// count before the call.
type StepFunc func(m *Match, step int, p *Pattern)

// Stepper pulls matches from a fixed input one at a time.
//
// A Stepper drives the cursor of the RE that created it, so the RE must not
// be used for other queries until the Stepper is done and Reset.
//
// Example:
//
//	s := re.Exec(text)
//	for s.Next(func(m *rex.Match, step int, _ *rex.Pattern) {
//	    fmt.Println(step, m)
//	}).Err() == nil {
//	}
//	s.Reset()
type Stepper struct {
	re    *RE
	input string
	step  int
	err   error
}

// Next advances to the next match, calls fn with it and returns s, so calls
// can be chained.
//
// The Global flag is switched on for the owning RE if needed. Once the input
// is exhausted Next does not call fn and Err reports ErrNoMatch; the engine
// has rewound the cursor by then, but the step count is kept until Reset.
func (s *Stepper) Next(fn StepFunc) *Stepper {
	p := s.re.global()
	m := p.Exec(s.input)
	if m == nil {
		s.err = ErrNoMatch
		return s
	}
	s.err = nil
	if fn != nil {
		fn(m, s.step, p)
	}
	if p.lastIndex == 0 {
		s.step = 0
	} else {
		s.step++
	}
	return s
}

// Err returns ErrNoMatch if the last call to Next found nothing, or nil.
func (s *Stepper) Err() error {
	return s.err
}

// Reset rewinds the cursor and the step count to 0 and clears Err.
func (s *Stepper) Reset() *Stepper {
	s.step = 0
	s.err = nil
	s.re.rewind()
	return s
}

// Step returns the step count passed to the next callback.
func (s *Stepper) Step() int {
	return s.step
}

// Input returns the text the Stepper walks over.
func (s *Stepper) Input() string {
	return s.input
}
