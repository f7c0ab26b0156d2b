package app

import "sort"

// Score counts correct cells per owning team. Every known team appears in the
// result; cells owned by nobody, or by a team no longer registered, count for
// no one.
func Score(status []CellStatus, owner []string, teams []Team) map[string]int {
	scores := make(map[string]int, len(teams))
	for _, t := range teams {
		scores[t.ID] = 0
	}

	for i, s := range status {
		if s != StatusCorrect || i >= len(owner) || owner[i] == "" {
			continue
		}
		if _, known := scores[owner[i]]; known {
			scores[owner[i]]++
		}
	}
	return scores
}

type Standing struct {
	Team  Team
	Score int
}

// Standings orders teams by score, highest first, breaking ties by name.
func Standings(scores map[string]int, teams []Team) []Standing {
	out := make([]Standing, 0, len(teams))
	for _, t := range teams {
		out = append(out, Standing{Team: t, Score: scores[t.ID]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Team.Name < out[j].Team.Name
	})
	return out
}
