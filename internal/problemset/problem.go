package problemset

import (
	"fmt"
	"slices"

	"github.com/abhisek/probpick/internal/skill"
)

// Problem is metadata for an exercise: a handle and the skills it exercises.
// Skills may be empty or repeat.
type Problem struct {
	handle string
	skills []skill.Skill
}

// NewProblem creates a Problem. Every skill must have been constructed.
func NewProblem(handle string, skills []skill.Skill) (Problem, error) {
	for i, s := range skills {
		if s.IsZero() {
			return Problem{}, fmt.Errorf("problem %q skill %d: %w", handle, i, skill.ErrInvalidReference)
		}
	}
	return Problem{handle: handle, skills: slices.Clone(skills)}, nil
}

// Handle returns the problem's identifier.
func (p Problem) Handle() string { return p.handle }

// Skills returns a copy of the skills the problem exercises.
func (p Problem) Skills() []skill.Skill { return slices.Clone(p.skills) }
