package components

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"team_word/internal/app"
)

// Version busts caches for static assets.
var Version = "dev"

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// keyHandler forwards single letters to /letters and everything else to /keys.
const keyHandler = `if (evt.target.tagName !== 'INPUT') { ` +
	`if (evt.key === 'Tab' || evt.key === ' ' || evt.key.startsWith('Arrow')) evt.preventDefault(); ` +
	`if (evt.key.length === 1 && evt.key !== ' ') { $letter = evt.key; @post('/letters') } ` +
	`else { $key = evt.key; $shift = evt.shiftKey; @post('/keys') } }`

var directions = []app.Direction{app.DirectionAcross, app.DirectionDown}

func scriptSrc() string {
	return datastarScript + "?v=" + Version
}

// gridRows lists the cell indexes of each row.
func gridRows(p *app.Puzzle) [][]int {
	rows := make([][]int, p.Height)
	for y := range rows {
		rows[y] = make([]int, p.Width)
		for x := range rows[y] {
			rows[y][x] = y*p.Width + x
		}
	}
	return rows
}

func inActiveEntry(sess *app.Session, i int) bool {
	ref, ok := sess.ActiveEntry()
	if !ok {
		return false
	}
	for _, c := range sess.Puzzle.Entries.List(ref.Direction)[ref.Index].Cells {
		if c == i {
			return true
		}
	}
	return false
}

// ownerColor is the color of the team that typed cell i, or "".
func ownerColor(snap app.Snapshot, i int) string {
	owner := snap.Session.Owner[i]
	if owner == "" {
		return ""
	}
	for _, t := range snap.Teams {
		if t.ID == owner {
			return t.Color
		}
	}
	return ""
}

func cellNumber(p *app.Puzzle, i int) string {
	if n := p.Entries.Numbers[i]; n > 0 {
		return fmt.Sprint(n)
	}
	return ""
}

func cellAction(i int) string {
	return fmt.Sprintf("@post('/cells/%d/focus')", i)
}

func clueID(ref app.EntryRef) string {
	return fmt.Sprintf("clue-%s-%d", ref.Direction, ref.Index)
}

func clueAction(ref app.EntryRef) string {
	return fmt.Sprintf("@post('/clues/%s/%d')", ref.Direction, ref.Index)
}

// clueText hides a clue until it has been clicked once.
func clueText(sess *app.Session, ref app.EntryRef, e app.Entry) string {
	if sess.Revealed(ref) {
		return e.Clue
	}
	return "?"
}

func clueClass(sess *app.Session, ref app.EntryRef) string {
	if sess.Revealed(ref) {
		return "revealed"
	}
	return "hidden"
}

func directionTitle(dir app.Direction) string {
	return cases.Title(language.English).String(string(dir))
}

func teamAction(id, verb string) string {
	return fmt.Sprintf("@post('/teams/%s/%s')", id, verb)
}

func standingLine(st app.Standing) string {
	return fmt.Sprintf("%s: %d", st.Team.Name, st.Score)
}
