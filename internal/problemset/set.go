package problemset

import (
	"errors"
	"slices"
	"sort"

	"github.com/abhisek/probpick/internal/skill"
)

// ErrEmptyCollection is returned when selecting from a set with no problems.
var ErrEmptyCollection = errors.New("problem set is empty")

// Learner answers whether help is needed with a skill at a mastery threshold.
type Learner interface {
	NeedsHelpWith(s skill.Skill, threshold float64) bool
}

// Set is an ordered collection of problems. It is not safe for concurrent
// mutation; callers serialize Add against selection.
type Set struct {
	problems []Problem
}

// New creates a Set holding problems in the given order.
func New(problems ...Problem) *Set {
	return &Set{problems: slices.Clone(problems)}
}

// Add appends p. Handles are not checked for uniqueness.
func (s *Set) Add(p Problem) {
	s.problems = append(s.problems, p)
}

// Problems returns the problems in insertion order.
func (s *Set) Problems() []Problem {
	return slices.Clone(s.problems)
}

// Len returns the number of problems.
func (s *Set) Len() int { return len(s.problems) }

// Score counts the tagged skills of p the learner needs help with.
// Repeated skills count once per occurrence.
func Score(l Learner, p Problem, threshold float64) int {
	n := 0
	for _, sk := range p.skills {
		if l.NeedsHelpWith(sk, threshold) {
			n++
		}
	}
	return n
}

// FindBest returns the problem covering the most skills the learner needs
// help with. Ties go to the earliest-added problem.
func (s *Set) FindBest(l Learner, threshold float64) (Problem, error) {
	if len(s.problems) == 0 {
		return Problem{}, ErrEmptyCollection
	}
	bestScore := -1
	best := s.problems[0]
	for _, p := range s.problems {
		if score := Score(l, p, threshold); score > bestScore {
			bestScore = score
			best = p
		}
	}
	return best, nil
}

// Scored pairs a problem with its score for one learner.
type Scored struct {
	Problem Problem
	Score   int
}

// Rank scores every problem for the learner, highest score first. Problems
// with equal scores keep insertion order, so the first entry is always the
// problem FindBest selects.
func (s *Set) Rank(l Learner, threshold float64) []Scored {
	ranked := make([]Scored, len(s.problems))
	for i, p := range s.problems {
		ranked[i] = Scored{Problem: p, Score: Score(l, p, threshold)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
