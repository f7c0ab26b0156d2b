package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	// A B . D
	// E . G H
	// I J . L
	p := mustPuzzle(t, BuildTestPuz(4, 3, "AB.DE.GHIJ.L"), OrderInterleavedAcrossFirst)

	tests := []struct {
		name string
		from NavState
		key  Key
		want NavState
	}{
		{"right into open cell", NavState{0, DirectionAcross}, KeyRight, NavState{1, DirectionAcross}},
		{"right jumps a block", NavState{1, DirectionAcross}, KeyRight, NavState{3, DirectionAcross}},
		{"right at edge stays", NavState{3, DirectionAcross}, KeyRight, NavState{3, DirectionAcross}},
		{"left at edge stays", NavState{4, DirectionAcross}, KeyLeft, NavState{4, DirectionAcross}},
		{"down jumps a block", NavState{1, DirectionAcross}, KeyDown, NavState{9, DirectionDown}},
		{"up at edge still switches mode", NavState{1, DirectionAcross}, KeyUp, NavState{1, DirectionDown}},
		{"left sets across", NavState{7, DirectionDown}, KeyLeft, NavState{6, DirectionAcross}},
		{"down blocked to edge", NavState{6, DirectionDown}, KeyDown, NavState{6, DirectionDown}},
		{"nothing active picks first cell", NewNavState(), KeyDown, NavState{0, DirectionDown}},
		{"unknown key ignored", NavState{0, DirectionAcross}, Key("F5"), NavState{0, DirectionAcross}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Move(p, tt.from, tt.key))
		})
	}
}

func TestToggleMode(t *testing.T) {
	nav := NavState{Active: 5, Mode: DirectionAcross}
	nav = ToggleMode(nav)
	assert.Equal(t, NavState{Active: 5, Mode: DirectionDown}, nav)
	nav = ToggleMode(nav)
	assert.Equal(t, NavState{Active: 5, Mode: DirectionAcross}, nav)
}

func TestNextEntry_Wrap(t *testing.T) {
	// Exactly 2 across and 3 down entries.
	p := mustPuzzle(t, BuildTestPuz(3, 2, "ABCDEF"), OrderInterleavedAcrossFirst)
	assert.Len(t, p.Entries.Across, 2)
	assert.Len(t, p.Entries.Down, 3)

	t.Run("across to next across", func(t *testing.T) {
		got := NextEntry(p, NavState{Active: 1, Mode: DirectionAcross})
		assert.Equal(t, NavState{Active: 3, Mode: DirectionAcross}, got)
	})

	t.Run("last across wraps to first down", func(t *testing.T) {
		got := NextEntry(p, NavState{Active: 4, Mode: DirectionAcross})
		assert.Equal(t, NavState{Active: 0, Mode: DirectionDown}, got)
	})

	t.Run("down to next down", func(t *testing.T) {
		got := NextEntry(p, NavState{Active: 3, Mode: DirectionDown})
		assert.Equal(t, NavState{Active: 1, Mode: DirectionDown}, got)
	})

	t.Run("last down wraps to first across", func(t *testing.T) {
		got := NextEntry(p, NavState{Active: 5, Mode: DirectionDown})
		assert.Equal(t, NavState{Active: 0, Mode: DirectionAcross}, got)
	})

	t.Run("nothing active starts at first entry of mode", func(t *testing.T) {
		got := NextEntry(p, NavState{Active: NoCell, Mode: DirectionDown})
		assert.Equal(t, NavState{Active: 0, Mode: DirectionDown}, got)
	})
}

func TestPrevEntry(t *testing.T) {
	p := mustPuzzle(t, BuildTestPuz(3, 2, "ABCDEF"), OrderInterleavedAcrossFirst)

	assert.Equal(t, NavState{Active: 0, Mode: DirectionAcross}, PrevEntry(p, NavState{Active: 5, Mode: DirectionAcross}))
	assert.Equal(t, NavState{Active: 2, Mode: DirectionDown}, PrevEntry(p, NavState{Active: 1, Mode: DirectionAcross}))
	assert.Equal(t, NavState{Active: 3, Mode: DirectionAcross}, PrevEntry(p, NavState{Active: 0, Mode: DirectionDown}))
}

func TestFocusEntry(t *testing.T) {
	p := samplePuzzle(t, OrderInterleavedAcrossFirst)
	start := NavState{Active: 0, Mode: DirectionAcross}

	nav, ok := FocusEntry(p, start, EntryRef{Direction: DirectionDown, Index: 4})
	assert.True(t, ok)
	assert.Equal(t, NavState{Active: 7, Mode: DirectionDown}, nav)

	for _, ref := range []EntryRef{
		{Direction: DirectionAcross, Index: -1},
		{Direction: DirectionAcross, Index: 7},
		{Direction: "diagonal", Index: 0},
	} {
		nav, ok := FocusEntry(p, start, ref)
		assert.False(t, ok, "%+v", ref)
		assert.Equal(t, start, nav)
	}
}

func TestAdvance(t *testing.T) {
	p := mustPuzzle(t, BuildTestPuz(4, 3, "AB.DE.GHIJ.L"), OrderInterleavedAcrossFirst)

	assert.Equal(t, 1, Advance(p, NavState{Mode: DirectionAcross}, 0).Active)
	assert.Equal(t, 3, Advance(p, NavState{Mode: DirectionAcross}, 1).Active, "hops the block")
	assert.Equal(t, 3, Advance(p, NavState{Mode: DirectionAcross}, 3).Active, "stays at the edge")
	assert.Equal(t, 4, Advance(p, NavState{Mode: DirectionDown}, 0).Active)
	assert.Equal(t, 8, Advance(p, NavState{Mode: DirectionDown}, 8).Active)
}

func TestStepBack(t *testing.T) {
	p := mustPuzzle(t, BuildTestPuz(4, 3, "AB.DE.GHIJ.L"), OrderInterleavedAcrossFirst)

	prev, ok := StepBack(p, NavState{Mode: DirectionAcross}, 1)
	assert.True(t, ok)
	assert.Equal(t, 0, prev)

	_, ok = StepBack(p, NavState{Mode: DirectionAcross}, 0)
	assert.False(t, ok, "start of row")

	_, ok = StepBack(p, NavState{Mode: DirectionAcross}, 3)
	assert.False(t, ok, "previous cell is a block")

	prev, ok = StepBack(p, NavState{Mode: DirectionDown}, 7)
	assert.True(t, ok)
	assert.Equal(t, 3, prev)
}
