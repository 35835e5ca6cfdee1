package cmd

import (
	"github.com/abhisek/probpick/internal/problemset"
	"github.com/abhisek/probpick/internal/skill"
)

// JSON shapes for list commands.

type problemRow struct {
	Handle string   `json:"handle"`
	Skills []string `json:"skills"`
	Score  *int     `json:"score,omitempty"`
}

func skillNames(skills []skill.Skill) []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name()
	}
	return names
}

func problemRows(problems []problemset.Problem) []problemRow {
	rows := make([]problemRow, len(problems))
	for i, p := range problems {
		rows[i] = problemRow{Handle: p.Handle(), Skills: skillNames(p.Skills())}
	}
	return rows
}

func rankedRows(ranked []problemset.Scored) []problemRow {
	rows := make([]problemRow, len(ranked))
	for i, s := range ranked {
		score := s.Score
		rows[i] = problemRow{Handle: s.Problem.Handle(), Skills: skillNames(s.Problem.Skills()), Score: &score}
	}
	return rows
}

type abilityRow struct {
	Skill string  `json:"skill"`
	Level float64 `json:"level"`
}

type studentRow struct {
	Name      string       `json:"name"`
	Abilities []abilityRow `json:"abilities"`
}
