package skill

import "fmt"

// Ability is one fact about a student: mastery Level of a Skill.
type Ability struct {
	Skill Skill
	Level Level
}

// NewAbility pairs a skill with a level. The skill must have been constructed.
func NewAbility(s Skill, l Level) (Ability, error) {
	if s.IsZero() {
		return Ability{}, fmt.Errorf("%w: ability has no skill", ErrInvalidReference)
	}
	return Ability{Skill: s, Level: l}, nil
}
