package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Team struct {
	ID    string
	Name  string
	Color string
}

// DefaultPalette is handed out to teams in order.
var DefaultPalette = []string{
	"#2563eb", "#dc2626", "#16a34a", "#9333ea",
	"#ea580c", "#0891b2", "#c026d3", "#ca8a04",
}

// maxTeamName counts runes, not bytes.
const maxTeamName = 40

var ErrTeamNotFound = errors.New("team not found")

// Teams is the registry of competing teams and the one currently typing.
type Teams struct {
	teams    []Team
	selected string
	palette  []string
	added    int
}

func NewTeams(palette []string) *Teams {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Teams{palette: palette}
}

func (t *Teams) Add(name string) Team {
	name = strings.Join(strings.Fields(name), " ")
	if runes := []rune(name); len(runes) > maxTeamName {
		name = strings.TrimSpace(string(runes[:maxTeamName]))
	}
	if name == "" {
		name = fmt.Sprintf("Team %d", t.added+1)
	}

	team := Team{
		ID:    uuid.NewString(),
		Name:  name,
		Color: t.palette[t.added%len(t.palette)],
	}
	t.added++
	t.teams = append(t.teams, team)

	if t.selected == "" {
		t.selected = team.ID
	}
	return team
}

func (t *Teams) Remove(id string) error {
	for i, team := range t.teams {
		if team.ID == id {
			t.teams = append(t.teams[:i], t.teams[i+1:]...)
			if t.selected == id {
				t.selected = ""
			}
			return nil
		}
	}
	return ErrTeamNotFound
}

func (t *Teams) Select(id string) error {
	if _, ok := t.Get(id); !ok {
		return ErrTeamNotFound
	}
	t.selected = id
	return nil
}

// Selected returns the id of the team credited with new letters, or "".
func (t *Teams) Selected() string {
	return t.selected
}

func (t *Teams) Get(id string) (Team, bool) {
	for _, team := range t.teams {
		if team.ID == id {
			return team, true
		}
	}
	return Team{}, false
}

func (t *Teams) List() []Team {
	out := make([]Team, len(t.teams))
	copy(out, t.teams)
	return out
}
