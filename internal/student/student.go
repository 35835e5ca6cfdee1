package student

import (
	"slices"

	"github.com/abhisek/probpick/internal/skill"
)

// Student is a learner's nickname plus the measured abilities recorded for
// them. The ability list is fixed at construction and may hold several
// entries for the same skill.
type Student struct {
	name      string
	abilities []skill.Ability
}

// New creates a Student. The abilities slice is copied.
func New(name string, abilities []skill.Ability) *Student {
	return &Student{name: name, abilities: slices.Clone(abilities)}
}

// Name returns the student's nickname.
func (s *Student) Name() string { return s.name }

// Abilities returns a copy of the student's abilities in recorded order.
func (s *Student) Abilities() []skill.Ability {
	return slices.Clone(s.abilities)
}

// NeedsHelpWith reports whether any ability recorded for sk sits strictly
// below threshold. A skill with no recorded ability is treated as adequate.
func (s *Student) NeedsHelpWith(sk skill.Skill, threshold float64) bool {
	for _, a := range s.abilities {
		if a.Skill.Equal(sk) && a.Level.Value() < threshold {
			return true
		}
	}
	return false
}
