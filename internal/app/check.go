package app

import "strings"

type CellStatus int

const (
	StatusUnchecked CellStatus = iota
	StatusCorrect
	StatusIncorrect
)

func (s CellStatus) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	default:
		return "unchecked"
	}
}

// Check recomputes every cell's status from the entered letters alone. The
// previous status in current does not affect the result. Correct cells stay
// correct only because the edit operations refuse to change a locked cell.
func Check(grid []Cell, letters []string, current []CellStatus) []CellStatus {
	status := make([]CellStatus, len(grid))
	for i, cell := range grid {
		if cell.IsBlock {
			continue
		}
		if i >= len(letters) || letters[i] == "" {
			continue
		}
		if strings.ToUpper(letters[i]) == string(cell.Solution) {
			status[i] = StatusCorrect
		} else {
			status[i] = StatusIncorrect
		}
	}
	return status
}
