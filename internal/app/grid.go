package app

import "fmt"

type Direction string

const (
	DirectionAcross Direction = "across"
	DirectionDown   Direction = "down"
)

func (d Direction) Other() Direction {
	if d == DirectionDown {
		return DirectionAcross
	}
	return DirectionDown
}

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionAcross, DirectionDown:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// ClueOrder selects how the flat clue list in a file maps onto entries.
// Generators disagree, so it is configuration rather than detection.
type ClueOrder int

const (
	OrderInterleavedAcrossFirst ClueOrder = iota
	OrderInterleavedDownFirst
	OrderAcrossThenDown
	OrderDownThenAcross
)

var clueOrderNames = map[ClueOrder]string{
	OrderInterleavedAcrossFirst: "interleaved-across-first",
	OrderInterleavedDownFirst:   "interleaved-down-first",
	OrderAcrossThenDown:         "across-then-down",
	OrderDownThenAcross:         "down-then-across",
}

func (o ClueOrder) String() string {
	if name, ok := clueOrderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("ClueOrder(%d)", int(o))
}

func ParseClueOrder(s string) (ClueOrder, error) {
	if s == "" {
		return OrderInterleavedAcrossFirst, nil
	}
	for order, name := range clueOrderNames {
		if name == s {
			return order, nil
		}
	}
	return OrderInterleavedAcrossFirst, fmt.Errorf("unknown clue order %q", s)
}

type Entry struct {
	Number    int
	Direction Direction
	Clue      string
	Cells     []int
}

// EntryRef names an entry by direction and position in that direction's list.
type EntryRef struct {
	Direction Direction
	Index     int
}

// Entries is the crossword structure derived from a grid. AcrossOf and DownOf
// map a cell index to its entry index, or -1 for blocks.
type Entries struct {
	Across   []Entry
	Down     []Entry
	Numbers  []int
	AcrossOf []int
	DownOf   []int
}

func (e *Entries) List(dir Direction) []Entry {
	if dir == DirectionDown {
		return e.Down
	}
	return e.Across
}

// EntryAt returns the index of the entry containing cell in the given direction.
func (e *Entries) EntryAt(dir Direction, cell int) int {
	lookup := e.AcrossOf
	if dir == DirectionDown {
		lookup = e.DownOf
	}
	if cell < 0 || cell >= len(lookup) {
		return -1
	}
	return lookup[cell]
}

// Puzzle is a decoded file plus its derived structure. Never mutated.
type Puzzle struct {
	*ParsedPuzzle
	Entries   *Entries
	ClueOrder ClueOrder
}

func NewPuzzle(parsed *ParsedPuzzle, order ClueOrder) *Puzzle {
	return &Puzzle{
		ParsedPuzzle: parsed,
		Entries:      BuildEntries(parsed.Width, parsed.Height, parsed.Grid, parsed.RawClues, order),
		ClueOrder:    order,
	}
}

// IsOpen reports whether (row, col) is inside the grid and not a block.
func (p *Puzzle) IsOpen(row, col int) bool {
	return isOpen(p.Width, p.Height, p.Grid, row, col)
}

func isOpen(width, height int, grid []Cell, row, col int) bool {
	if row < 0 || row >= height || col < 0 || col >= width {
		return false
	}
	return !grid[row*width+col].IsBlock
}

type startPos struct {
	across int
	down   int
}

func BuildEntries(width, height int, grid []Cell, rawClues []string, order ClueOrder) *Entries {
	numCells := width * height
	e := &Entries{
		Numbers:  make([]int, numCells),
		AcrossOf: make([]int, numCells),
		DownOf:   make([]int, numCells),
	}
	for i := range e.AcrossOf {
		e.AcrossOf[i] = -1
		e.DownOf[i] = -1
	}

	var starts []startPos
	counter := 1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !isOpen(width, height, grid, y, x) {
				continue
			}

			startsAcross := !isOpen(width, height, grid, y, x-1)
			startsDown := !isOpen(width, height, grid, y-1, x)
			if !startsAcross && !startsDown {
				continue
			}

			pos := startPos{across: -1, down: -1}
			if startsAcross {
				entry := Entry{Number: counter, Direction: DirectionAcross}
				for c := x; isOpen(width, height, grid, y, c); c++ {
					i := y*width + c
					entry.Cells = append(entry.Cells, i)
					e.AcrossOf[i] = len(e.Across)
				}
				pos.across = len(e.Across)
				e.Across = append(e.Across, entry)
			}
			if startsDown {
				entry := Entry{Number: counter, Direction: DirectionDown}
				for r := y; isOpen(width, height, grid, r, x); r++ {
					i := r*width + x
					entry.Cells = append(entry.Cells, i)
					e.DownOf[i] = len(e.Down)
				}
				pos.down = len(e.Down)
				e.Down = append(e.Down, entry)
			}
			e.Numbers[y*width+x] = counter
			starts = append(starts, pos)
			counter++
		}
	}

	assignClues(e, starts, rawClues, order)
	return e
}

func assignClues(e *Entries, starts []startPos, rawClues []string, order ClueOrder) {
	next := 0
	take := func() string {
		if next >= len(rawClues) {
			return ""
		}
		clue := rawClues[next]
		next++
		return clue
	}

	switch order {
	case OrderAcrossThenDown:
		for i := range e.Across {
			e.Across[i].Clue = take()
		}
		for i := range e.Down {
			e.Down[i].Clue = take()
		}
	case OrderDownThenAcross:
		for i := range e.Down {
			e.Down[i].Clue = take()
		}
		for i := range e.Across {
			e.Across[i].Clue = take()
		}
	case OrderInterleavedDownFirst:
		for _, pos := range starts {
			if pos.down >= 0 {
				e.Down[pos.down].Clue = take()
			}
			if pos.across >= 0 {
				e.Across[pos.across].Clue = take()
			}
		}
	default:
		for _, pos := range starts {
			if pos.across >= 0 {
				e.Across[pos.across].Clue = take()
			}
			if pos.down >= 0 {
				e.Down[pos.down].Clue = take()
			}
		}
	}
}
