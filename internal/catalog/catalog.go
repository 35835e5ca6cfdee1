package catalog

import (
	"fmt"
	"slices"

	"golang.org/x/mod/semver"

	"github.com/abhisek/probpick/internal/problemset"
	"github.com/abhisek/probpick/internal/skill"
	"github.com/abhisek/probpick/internal/student"
)

// SupportedMajor is the catalog major version this build reads.
const SupportedMajor = "v1"

type rawCatalog struct {
	Version   string       `json:"version"`
	Threshold *float64     `json:"threshold"`
	Skills    []any        `json:"skills"`
	Problems  []rawProblem `json:"problems"`
	Students  []rawStudent `json:"students"`
}

type rawProblem struct {
	Handle string   `json:"handle"`
	Skills []string `json:"skills"`
}

type rawStudent struct {
	Name      string       `json:"name"`
	Abilities []rawAbility `json:"abilities"`
}

type rawAbility struct {
	Skill string `json:"skill"`
	Level any    `json:"level"`
}

// Catalog is a static snapshot of skills, problems and students.
type Catalog struct {
	version   string
	threshold *float64
	skills    []skill.Skill
	problems  []problemset.Problem
	students  []*student.Student
}

// Version returns the catalog's semantic version.
func (c *Catalog) Version() string { return c.version }

// Threshold returns the catalog's default mastery threshold, if it sets one.
func (c *Catalog) Threshold() (float64, bool) {
	if c.threshold == nil {
		return 0, false
	}
	return *c.threshold, true
}

// Skills returns the declared skills in declaration order.
func (c *Catalog) Skills() []skill.Skill { return slices.Clone(c.skills) }

// ProblemSet returns a new Set holding the catalog's problems in order.
// Each call returns an independent set.
func (c *Catalog) ProblemSet() *problemset.Set {
	return problemset.New(c.problems...)
}

// Students returns the declared students in declaration order.
func (c *Catalog) Students() []*student.Student { return slices.Clone(c.students) }

// Student looks up a student by name.
func (c *Catalog) Student(name string) (*student.Student, error) {
	for _, st := range c.students {
		if st.Name() == name {
			return st, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStudent, name)
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("%w: major %s, want %s", ErrUnsupportedVersion, major, SupportedMajor)
	}
	return nil
}

// build resolves names against the declared skills and constructs the
// domain values.
func build(raw rawCatalog) (*Catalog, error) {
	if err := checkVersion(raw.Version); err != nil {
		return nil, err
	}

	c := &Catalog{version: raw.Version, threshold: raw.Threshold}

	declared := make(map[string]skill.Skill, len(raw.Skills))
	for i, v := range raw.Skills {
		s, err := skill.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("skill %d: %w", i, err)
		}
		if _, dup := declared[s.Name()]; dup {
			return nil, fmt.Errorf("duplicate skill %q", s.Name())
		}
		declared[s.Name()] = s
		c.skills = append(c.skills, s)
	}

	resolve := func(name string) (skill.Skill, error) {
		s, ok := declared[name]
		if !ok {
			return skill.Skill{}, fmt.Errorf("skill %q is not declared: %w", name, skill.ErrInvalidReference)
		}
		return s, nil
	}

	for _, rp := range raw.Problems {
		skills := make([]skill.Skill, 0, len(rp.Skills))
		for _, name := range rp.Skills {
			s, err := resolve(name)
			if err != nil {
				return nil, fmt.Errorf("problem %q: %w", rp.Handle, err)
			}
			skills = append(skills, s)
		}
		p, err := problemset.NewProblem(rp.Handle, skills)
		if err != nil {
			return nil, err
		}
		c.problems = append(c.problems, p)
	}

	seen := make(map[string]bool, len(raw.Students))
	for _, rs := range raw.Students {
		if seen[rs.Name] {
			return nil, fmt.Errorf("duplicate student %q", rs.Name)
		}
		seen[rs.Name] = true

		abilities := make([]skill.Ability, 0, len(rs.Abilities))
		for i, ra := range rs.Abilities {
			s, err := resolve(ra.Skill)
			if err != nil {
				return nil, fmt.Errorf("student %q ability %d: %w", rs.Name, i, err)
			}
			level, err := skill.ParseLevel(ra.Level)
			if err != nil {
				return nil, fmt.Errorf("student %q ability %d: %w", rs.Name, i, err)
			}
			a, err := skill.NewAbility(s, level)
			if err != nil {
				return nil, fmt.Errorf("student %q ability %d: %w", rs.Name, i, err)
			}
			abilities = append(abilities, a)
		}
		c.students = append(c.students, student.New(rs.Name, abilities))
	}

	return c, nil
}
