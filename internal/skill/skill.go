package skill

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch indicates a Skill or Level was constructed from a value
	// of the wrong type (a non-string name, a non-numeric level).
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidReference indicates an Ability or problem refers to a skill
	// that is absent or unknown.
	ErrInvalidReference = errors.New("invalid skill reference")
)

// Skill identifies an area of learning. Two skills are the same topic when
// their names are equal; identity of the value never matters.
type Skill struct {
	name string
}

// New creates a Skill with the given name.
func New(name string) (Skill, error) {
	if name == "" {
		return Skill{}, fmt.Errorf("%w: skill name must be a non-empty string", ErrTypeMismatch)
	}
	return Skill{name: name}, nil
}

// MustNew is like New but panics on error. Intended for fixtures.
func MustNew(name string) Skill {
	s, err := New(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse creates a Skill from a dynamically typed value, e.g. decoded catalog data.
func Parse(v any) (Skill, error) {
	name, ok := v.(string)
	if !ok {
		return Skill{}, fmt.Errorf("%w: skill constructed with non-string input %v (%T)", ErrTypeMismatch, v, v)
	}
	return New(name)
}

// Name returns the skill's name.
func (s Skill) Name() string { return s.name }

// IsZero reports whether s is the zero Skill, i.e. was never constructed.
func (s Skill) IsZero() bool { return s.name == "" }

// Equal reports whether s and other name the same topic.
func (s Skill) Equal(other Skill) bool { return s.name == other.name }

func (s Skill) String() string { return s.name }
