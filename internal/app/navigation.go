package app

// Key is a navigation key as reported by the browser's KeyboardEvent.key.
type Key string

const (
	KeyLeft      Key = "ArrowLeft"
	KeyRight     Key = "ArrowRight"
	KeyUp        Key = "ArrowUp"
	KeyDown      Key = "ArrowDown"
	KeyTab       Key = "Tab"
	KeySpace     Key = " "
	KeyBackspace Key = "Backspace"
	KeyDelete    Key = "Delete"
)

// NoCell is the active cell before anything has been focused.
const NoCell = -1

type NavState struct {
	Active int
	Mode   Direction
}

func NewNavState() NavState {
	return NavState{Active: NoCell, Mode: DirectionAcross}
}

func step(dir Direction, forward bool) (dr, dc int) {
	d := 1
	if !forward {
		d = -1
	}
	if dir == DirectionDown {
		return d, 0
	}
	return 0, d
}

func keyAxis(key Key) (Direction, bool, bool) {
	switch key {
	case KeyLeft:
		return DirectionAcross, false, true
	case KeyRight:
		return DirectionAcross, true, true
	case KeyUp:
		return DirectionDown, false, true
	case KeyDown:
		return DirectionDown, true, true
	}
	return "", false, false
}

// scanOpen walks from cell by (dr, dc) and returns the first open cell
// before the grid edge, or NoCell.
func scanOpen(p *Puzzle, cell, dr, dc int) int {
	row, col := cell/p.Width, cell%p.Width
	for {
		row += dr
		col += dc
		if row < 0 || row >= p.Height || col < 0 || col >= p.Width {
			return NoCell
		}
		if p.IsOpen(row, col) {
			return row*p.Width + col
		}
	}
}

func firstOpen(p *Puzzle) int {
	for _, c := range p.Grid {
		if !c.IsBlock {
			return c.Index
		}
	}
	return NoCell
}

// Move handles the arrow keys. The mode follows the key's axis even when the
// cursor cannot move.
func Move(p *Puzzle, nav NavState, key Key) NavState {
	dir, forward, ok := keyAxis(key)
	if !ok {
		return nav
	}
	nav.Mode = dir

	if nav.Active == NoCell {
		nav.Active = firstOpen(p)
		return nav
	}

	dr, dc := step(dir, forward)
	if next := scanOpen(p, nav.Active, dr, dc); next != NoCell {
		nav.Active = next
	}
	return nav
}

func ToggleMode(nav NavState) NavState {
	nav.Mode = nav.Mode.Other()
	return nav
}

// NextEntry moves to the start of the following entry. Past the last entry of
// one direction it continues with the first entry of the other.
func NextEntry(p *Puzzle, nav NavState) NavState {
	list := p.Entries.List(nav.Mode)
	idx := p.Entries.EntryAt(nav.Mode, nav.Active)

	switch {
	case idx < 0 && len(list) > 0:
		return focus(p, nav.Mode, 0)
	case idx >= 0 && idx+1 < len(list):
		return focus(p, nav.Mode, idx+1)
	}

	other := nav.Mode.Other()
	if len(p.Entries.List(other)) == 0 {
		return nav
	}
	return focus(p, other, 0)
}

// PrevEntry mirrors NextEntry.
func PrevEntry(p *Puzzle, nav NavState) NavState {
	list := p.Entries.List(nav.Mode)
	idx := p.Entries.EntryAt(nav.Mode, nav.Active)

	switch {
	case idx < 0 && len(list) > 0:
		return focus(p, nav.Mode, 0)
	case idx > 0:
		return focus(p, nav.Mode, idx-1)
	}

	other := nav.Mode.Other()
	otherList := p.Entries.List(other)
	if len(otherList) == 0 {
		return nav
	}
	return focus(p, other, len(otherList)-1)
}

// FocusEntry moves to the first cell of ref. It reports false, leaving nav
// unchanged, when ref does not name an entry.
func FocusEntry(p *Puzzle, nav NavState, ref EntryRef) (NavState, bool) {
	list := p.Entries.List(ref.Direction)
	if ref.Direction != DirectionAcross && ref.Direction != DirectionDown {
		return nav, false
	}
	if ref.Index < 0 || ref.Index >= len(list) {
		return nav, false
	}
	return focus(p, ref.Direction, ref.Index), true
}

func focus(p *Puzzle, dir Direction, idx int) NavState {
	return NavState{Active: p.Entries.List(dir)[idx].Cells[0], Mode: dir}
}

// Advance moves past from in the current mode after a letter is accepted,
// staying put at the end of the grid.
func Advance(p *Puzzle, nav NavState, from int) NavState {
	dr, dc := step(nav.Mode, true)
	nav.Active = from
	if next := scanOpen(p, from, dr, dc); next != NoCell {
		nav.Active = next
	}
	return nav
}

// StepBack returns the cell immediately before from in the current mode.
// Blocks are not skipped.
func StepBack(p *Puzzle, nav NavState, from int) (int, bool) {
	if from < 0 || from >= len(p.Grid) {
		return NoCell, false
	}
	dr, dc := step(nav.Mode, false)
	row, col := from/p.Width+dr, from%p.Width+dc
	if !p.IsOpen(row, col) {
		return NoCell, false
	}
	return row*p.Width + col, true
}
