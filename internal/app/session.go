package app

// Session owns every piece of per-cell state for one loaded puzzle. All
// arrays have length Width*Height and are replaced, never resized, when a new
// puzzle is loaded.
type Session struct {
	Puzzle  *Puzzle
	Letters []string
	Status  []CellStatus
	Owner   []string
	Nav     NavState

	revealed map[Direction][]bool
}

func NewSession(p *Puzzle) *Session {
	n := p.Width * p.Height
	return &Session{
		Puzzle:  p,
		Letters: make([]string, n),
		Status:  make([]CellStatus, n),
		Owner:   make([]string, n),
		Nav:     NewNavState(),
		revealed: map[Direction][]bool{
			DirectionAcross: make([]bool, len(p.Entries.Across)),
			DirectionDown:   make([]bool, len(p.Entries.Down)),
		},
	}
}

func (s *Session) inGrid(i int) bool {
	return i >= 0 && i < len(s.Letters)
}

// Locked reports whether cell i has been checked correct.
func (s *Session) Locked(i int) bool {
	return s.inGrid(i) && s.Status[i] == StatusCorrect
}

// clear empties an unlocked cell and reports whether it held anything. Letter,
// status and owner always go together.
func (s *Session) clear(i int) bool {
	if !s.inGrid(i) || s.Locked(i) || s.Puzzle.Grid[i].IsBlock {
		return false
	}
	if s.Letters[i] == "" && s.Status[i] == StatusUnchecked && s.Owner[i] == "" {
		return false
	}
	s.Letters[i] = ""
	s.Status[i] = StatusUnchecked
	s.Owner[i] = ""
	return true
}

// Key applies a non-letter key and reports whether anything changed. shift
// only matters for Tab.
func (s *Session) Key(key Key, shift bool) bool {
	before := s.Nav
	switch key {
	case KeyLeft, KeyRight, KeyUp, KeyDown:
		s.Nav = Move(s.Puzzle, s.Nav, key)
	case KeySpace:
		s.Nav = ToggleMode(s.Nav)
	case KeyTab:
		if shift {
			s.Nav = PrevEntry(s.Puzzle, s.Nav)
		} else {
			s.Nav = NextEntry(s.Puzzle, s.Nav)
		}
	case KeyBackspace:
		return s.Backspace()
	case KeyDelete:
		return s.Delete()
	default:
		return false
	}
	return s.Nav != before
}

// Focus makes cell i active without changing the mode.
func (s *Session) Focus(i int) bool {
	if !s.inGrid(i) || s.Puzzle.Grid[i].IsBlock {
		return false
	}
	s.Nav.Active = i
	return true
}

// Input writes a typed letter into the active cell on behalf of teamID and
// advances. Locked cells and input without any letter are ignored.
func (s *Session) Input(text, teamID string) bool {
	i := s.Nav.Active
	if !s.inGrid(i) || s.Locked(i) {
		return false
	}
	letter, ok := NormalizeLetter(text)
	if !ok {
		return false
	}

	s.Letters[i] = letter
	s.Owner[i] = teamID
	s.Nav = Advance(s.Puzzle, s.Nav, i)
	return true
}

// Backspace clears a filled active cell in place. On an empty cell it steps
// back one cell and clears that one, unless it is locked.
func (s *Session) Backspace() bool {
	i := s.Nav.Active
	if !s.inGrid(i) {
		return false
	}
	if s.Letters[i] != "" {
		return s.clear(i)
	}

	prev, ok := StepBack(s.Puzzle, s.Nav, i)
	if !ok {
		return false
	}
	s.Nav.Active = prev
	s.clear(prev)
	return true
}

func (s *Session) Delete() bool {
	return s.clear(s.Nav.Active)
}

// ClickClue focuses the clicked entry and reveals its clue for the rest of
// the session.
func (s *Session) ClickClue(ref EntryRef) bool {
	nav, ok := FocusEntry(s.Puzzle, s.Nav, ref)
	if !ok {
		return false
	}
	s.Nav = nav
	s.revealed[ref.Direction][ref.Index] = true
	return true
}

func (s *Session) Revealed(ref EntryRef) bool {
	latches := s.revealed[ref.Direction]
	return ref.Index >= 0 && ref.Index < len(latches) && latches[ref.Index]
}

// ActiveEntry is the entry the cursor is in for the current mode.
func (s *Session) ActiveEntry() (EntryRef, bool) {
	idx := s.Puzzle.Entries.EntryAt(s.Nav.Mode, s.Nav.Active)
	if idx < 0 {
		return EntryRef{}, false
	}
	return EntryRef{Direction: s.Nav.Mode, Index: idx}, true
}

func (s *Session) Check() {
	s.Status = Check(s.Puzzle.Grid, s.Letters, s.Status)
}

func (s *Session) Scores(teams []Team) map[string]int {
	return Score(s.Status, s.Owner, teams)
}

// Clone returns a deep copy that shares only the immutable puzzle.
func (s *Session) Clone() *Session {
	c := &Session{
		Puzzle:   s.Puzzle,
		Letters:  append([]string(nil), s.Letters...),
		Status:   append([]CellStatus(nil), s.Status...),
		Owner:    append([]string(nil), s.Owner...),
		Nav:      s.Nav,
		revealed: make(map[Direction][]bool, len(s.revealed)),
	}
	for dir, latches := range s.revealed {
		c.revealed[dir] = append([]bool(nil), latches...)
	}
	return c
}

// NormalizeLetter keeps the first ASCII letter of text, uppercased.
func NormalizeLetter(text string) (string, bool) {
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch >= 'a' && ch <= 'z' {
			return string(ch - ('a' - 'A')), true
		}
		if ch >= 'A' && ch <= 'Z' {
			return string(ch), true
		}
	}
	return "", false
}
