package app

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPuzzle(t *testing.T, data []byte, order ClueOrder) *Puzzle {
	t.Helper()
	parsed, err := DecodePuz(data)
	require.NoError(t, err)
	return NewPuzzle(parsed, order)
}

func samplePuzzle(t *testing.T, order ClueOrder) *Puzzle {
	t.Helper()
	data, err := os.ReadFile("testdata/sample.puz")
	require.NoError(t, err)
	return mustPuzzle(t, data, order)
}

func numbersOf(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Number
	}
	return out
}

func TestBuildEntries_MinimalGrid(t *testing.T) {
	p := mustPuzzle(t, BuildTestPuz(3, 1, "ABC", "Test"), OrderAcrossThenDown)

	require.Len(t, p.Entries.Across, 1)
	assert.Equal(t, Entry{Number: 1, Direction: DirectionAcross, Clue: "Test", Cells: []int{0, 1, 2}}, p.Entries.Across[0])

	assert.Equal(t, []Entry{
		{Number: 1, Direction: DirectionDown, Clue: "", Cells: []int{0}},
		{Number: 2, Direction: DirectionDown, Clue: "", Cells: []int{1}},
		{Number: 3, Direction: DirectionDown, Clue: "", Cells: []int{2}},
	}, p.Entries.Down)
}

func TestBuildEntries_Sample(t *testing.T) {
	p := samplePuzzle(t, OrderInterleavedAcrossFirst)

	assert.Equal(t, []int{1, 3, 5, 7, 8, 10, 11}, numbersOf(p.Entries.Across))
	assert.Equal(t, []int{1, 2, 3, 4, 6, 8, 9}, numbersOf(p.Entries.Down))

	assert.Equal(t, []int{5, 6, 7, 8, 9}, p.Entries.Across[2].Cells)
	assert.Equal(t, []int{11, 12, 13}, p.Entries.Across[3].Cells)
	assert.Equal(t, []int{1, 6, 11, 16, 21}, p.Entries.Down[1].Cells)
	assert.Equal(t, []int{7, 12, 17}, p.Entries.Down[4].Cells)

	for _, e := range p.Entries.Across {
		assert.Equal(t, fmt.Sprintf("%d Across", e.Number), e.Clue)
	}
	for _, e := range p.Entries.Down {
		assert.Equal(t, fmt.Sprintf("%d Down", e.Number), e.Clue)
	}
}

func TestBuildEntries_Numbering(t *testing.T) {
	t.Run("Empty 3x3 Grid", func(t *testing.T) {
		// 1 2 3
		// 4 . .
		// 5 . .
		p := mustPuzzle(t, BuildTestPuz(3, 3, "ABCDEFGHI"), OrderInterleavedAcrossFirst)
		assert.Equal(t, []int{1, 2, 3, 4, 0, 0, 5, 0, 0}, p.Entries.Numbers)
	})

	t.Run("Grid with Blocks", func(t *testing.T) {
		// 1 2 3
		// 4 # 5
		// 6 7 .
		p := mustPuzzle(t, BuildTestPuz(3, 3, "ABCD.FGHI"), OrderInterleavedAcrossFirst)
		assert.Equal(t, []int{1, 2, 3, 4, 0, 5, 6, 7, 0}, p.Entries.Numbers)
	})

	t.Run("Lonely letters are numbered", func(t *testing.T) {
		// A # C
		// # # #
		// G H I
		p := mustPuzzle(t, BuildTestPuz(3, 3, "A.C...GHI"), OrderInterleavedAcrossFirst)
		assert.Equal(t, []int{1, 0, 2, 0, 0, 0, 3, 4, 5}, p.Entries.Numbers)
		assert.Equal(t, []int{1, 2, 3}, numbersOf(p.Entries.Across))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, numbersOf(p.Entries.Down))
	})

	t.Run("All blocks", func(t *testing.T) {
		p := mustPuzzle(t, BuildTestPuz(2, 2, "...."), OrderInterleavedAcrossFirst)
		assert.Empty(t, p.Entries.Across)
		assert.Empty(t, p.Entries.Down)
		assert.Equal(t, []int{-1, -1, -1, -1}, p.Entries.AcrossOf)
	})
}

func TestBuildEntries_Invariants(t *testing.T) {
	grids := []struct {
		width, height int
		solution      string
	}{
		{3, 1, "ABC"},
		{3, 3, "ABCDEFGHI"},
		{3, 3, "A.C...GHI"},
		{5, 5, "AB.CDEFGHI.JKL.MNOPQRS.TU"},
		{4, 3, "AB.DE.GHIJ.L"},
		{1, 4, "A.CD"},
	}

	for _, g := range grids {
		t.Run(g.solution, func(t *testing.T) {
			p := mustPuzzle(t, BuildTestPuz(g.width, g.height, g.solution), OrderInterleavedAcrossFirst)

			acrossHits := make([]int, len(p.Grid))
			downHits := make([]int, len(p.Grid))
			for i, e := range p.Entries.Across {
				for _, c := range e.Cells {
					acrossHits[c]++
					assert.Equal(t, i, p.Entries.AcrossOf[c])
				}
			}
			for i, e := range p.Entries.Down {
				for _, c := range e.Cells {
					downHits[c]++
					assert.Equal(t, i, p.Entries.DownOf[c])
				}
			}
			for i, cell := range p.Grid {
				want := 1
				if cell.IsBlock {
					want = 0
				}
				assert.Equal(t, want, acrossHits[i], "cell %d across coverage", i)
				assert.Equal(t, want, downHits[i], "cell %d down coverage", i)
			}

			// Numbers appear in scan order as 1, 2, 3, ... with no gaps.
			next := 1
			for _, n := range p.Entries.Numbers {
				if n == 0 {
					continue
				}
				assert.Equal(t, next, n)
				next++
			}
		})
	}
}

func TestBuildEntries_ClueOrders(t *testing.T) {
	// 2 across (rows) and 3 down (columns); numbers 1,2,3 on row 0 and 4 on row 1.
	clues := []string{"c1", "c2", "c3", "c4", "c5"}

	tests := []struct {
		order  ClueOrder
		across []string
		down   []string
	}{
		{OrderAcrossThenDown, []string{"c1", "c2"}, []string{"c3", "c4", "c5"}},
		{OrderDownThenAcross, []string{"c4", "c5"}, []string{"c1", "c2", "c3"}},
		{OrderInterleavedAcrossFirst, []string{"c1", "c5"}, []string{"c2", "c3", "c4"}},
		{OrderInterleavedDownFirst, []string{"c2", "c5"}, []string{"c1", "c3", "c4"}},
	}

	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			p := mustPuzzle(t, BuildTestPuz(3, 2, "ABCDEF", clues...), tt.order)
			var across, down []string
			for _, e := range p.Entries.Across {
				across = append(across, e.Clue)
			}
			for _, e := range p.Entries.Down {
				down = append(down, e.Clue)
			}
			assert.Equal(t, tt.across, across)
			assert.Equal(t, tt.down, down)
		})
	}
}

func TestBuildEntries_ClueShortfall(t *testing.T) {
	p := mustPuzzle(t, BuildTestPuz(3, 2, "ABCDEF", "only"), OrderInterleavedAcrossFirst)

	assert.Equal(t, "only", p.Entries.Across[0].Clue)
	assert.Equal(t, "", p.Entries.Across[1].Clue)
	for _, e := range p.Entries.Down {
		assert.Equal(t, "", e.Clue)
	}
}

func TestParseClueOrder(t *testing.T) {
	for order, name := range clueOrderNames {
		got, err := ParseClueOrder(name)
		require.NoError(t, err)
		assert.Equal(t, order, got)
	}

	got, err := ParseClueOrder("")
	require.NoError(t, err)
	assert.Equal(t, OrderInterleavedAcrossFirst, got)

	_, err = ParseClueOrder("random")
	assert.Error(t, err)
}
