package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/probpick/internal/skill"
)

func TestDemo_Recommendations(t *testing.T) {
	c, err := Demo()
	require.NoError(t, err)

	threshold, ok := c.Threshold()
	require.True(t, ok)
	assert.Equal(t, 0.95, threshold)
	assert.Equal(t, "v1.0.0", c.Version())
	assert.Len(t, c.Skills(), 4)
	assert.Equal(t, 6, c.ProblemSet().Len())

	want := map[string]string{
		"RazorBat":      "prob4",
		"PumpkinOfDoom": "prob2",
		"WonderBrain":   "prob3",
	}
	students := c.Students()
	require.Len(t, students, 3)
	for _, st := range students {
		best, err := c.ProblemSet().FindBest(st, threshold)
		require.NoError(t, err)
		assert.Equal(t, want[st.Name()], best.Handle(), "student %s", st.Name())
	}
}

func TestDemo_IndependentCopies(t *testing.T) {
	a, err := Demo()
	require.NoError(t, err)
	b, err := Demo()
	require.NoError(t, err)

	set := a.ProblemSet()
	set.Add(set.Problems()[0])
	assert.Equal(t, 6, a.ProblemSet().Len())
	assert.Equal(t, 6, b.ProblemSet().Len())
}

func TestStudentLookup(t *testing.T) {
	c, err := Demo()
	require.NoError(t, err)

	st, err := c.Student("WonderBrain")
	require.NoError(t, err)
	assert.Equal(t, "WonderBrain", st.Name())

	_, err = c.Student("Nobody")
	assert.True(t, errors.Is(err, ErrUnknownStudent))
}

func TestParse_JSON(t *testing.T) {
	doc := `{
		"version": "v1.2.0",
		"skills": ["a", "b"],
		"problems": [
			{"handle": "p1", "skills": ["a"]},
			{"handle": "p2", "skills": ["a", "b"]},
			{"handle": "p3", "skills": []}
		],
		"students": [
			{"name": "s", "abilities": [{"skill": "a", "level": 0.1}, {"skill": "b", "level": "0.2"}]}
		]
	}`
	c, err := Parse([]byte(doc), FormatJSON)
	require.NoError(t, err)

	_, ok := c.Threshold()
	assert.False(t, ok)

	st, err := c.Student("s")
	require.NoError(t, err)
	best, err := c.ProblemSet().FindBest(st, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "p2", best.Handle())
}

func TestParse_NonFiniteLevelsClamp(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format Format
	}{
		{
			name: "yaml infinities",
			doc: "version: v1.0.0\nskills: [a, b]\nproblems: []\nstudents:\n" +
				"  - {name: s, abilities: [{skill: a, level: .inf}, {skill: b, level: -.inf}]}\n",
			format: FormatYAML,
		},
		{
			name: "json out of range",
			doc: `{"version": "v1.0.0", "skills": ["a", "b"], "problems": [], "students": [
				{"name": "s", "abilities": [{"skill": "a", "level": 1e400}, {"skill": "b", "level": -1e400}]}]}`,
			format: FormatJSON,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.doc), tt.format)
			require.NoError(t, err)

			st, err := c.Student("s")
			require.NoError(t, err)
			abilities := st.Abilities()
			require.Len(t, abilities, 2)
			assert.Equal(t, 1.0, abilities[0].Level.Value())
			assert.Equal(t, 0.0, abilities[1].Level.Value())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantIs  error
		wantVal bool
	}{
		{
			name:    "malformed yaml",
			doc:     "version: [",
			wantVal: true,
		},
		{
			name:    "missing problems",
			doc:     "version: v1.0.0\nskills: [a]\n",
			wantVal: true,
		},
		{
			name:    "unknown field",
			doc:     "version: v1.0.0\nskills: [a]\nproblems: []\nextra: 1\n",
			wantVal: true,
		},
		{
			name:    "threshold out of range",
			doc:     "version: v1.0.0\nthreshold: 1.5\nskills: [a]\nproblems: []\n",
			wantVal: true,
		},
		{
			name:   "empty skill name",
			doc:    "version: v1.0.0\nskills: ['']\nproblems: []\n",
			wantIs: skill.ErrTypeMismatch,
		},
		{
			name:   "non-string skill name",
			doc:    "version: v1.0.0\nskills: [a, 7]\nproblems: []\n",
			wantIs: skill.ErrTypeMismatch,
		},
		{
			name: "yaml nan level",
			doc: "version: v1.0.0\nskills: [a]\nproblems: []\nstudents:\n" +
				"  - {name: s, abilities: [{skill: a, level: .nan}]}\n",
			wantIs: skill.ErrTypeMismatch,
		},
		{
			name:   "not semver",
			doc:    "version: latest\nskills: [a]\nproblems: []\n",
			wantIs: ErrUnsupportedVersion,
		},
		{
			name:   "future major",
			doc:    "version: v2.0.0\nskills: [a]\nproblems: []\n",
			wantIs: ErrUnsupportedVersion,
		},
		{
			name:   "undeclared problem skill",
			doc:    "version: v1.0.0\nskills: [a]\nproblems:\n  - {handle: p, skills: [b]}\n",
			wantIs: skill.ErrInvalidReference,
		},
		{
			name: "undeclared ability skill",
			doc: "version: v1.0.0\nskills: [a]\nproblems: []\nstudents:\n" +
				"  - {name: s, abilities: [{skill: z, level: 0.1}]}\n",
			wantIs: skill.ErrInvalidReference,
		},
		{
			name: "non-numeric level",
			doc: "version: v1.0.0\nskills: [a]\nproblems: []\nstudents:\n" +
				"  - {name: s, abilities: [{skill: a, level: high}]}\n",
			wantIs: skill.ErrTypeMismatch,
		},
		{
			name: "boolean level",
			doc: "version: v1.0.0\nskills: [a]\nproblems: []\nstudents:\n" +
				"  - {name: s, abilities: [{skill: a, level: true}]}\n",
			wantIs: skill.ErrTypeMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatYAML)
			require.Error(t, err)
			if tt.wantVal {
				var verr *ValidationError
				assert.True(t, errors.As(err, &verr), "want *ValidationError, got %T: %v", err, err)
			}
			if tt.wantIs != nil {
				assert.True(t, errors.Is(err, tt.wantIs), "want %v, got %v", tt.wantIs, err)
			}
		})
	}
}

func TestParse_DuplicateSkillAndStudent(t *testing.T) {
	_, err := Parse([]byte("version: v1.0.0\nskills: [a, a]\nproblems: []\n"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate skill")

	doc := "version: v1.0.0\nskills: [a]\nproblems: []\nstudents:\n" +
		"  - {name: s, abilities: []}\n  - {name: s, abilities: []}\n"
	_, err = Parse([]byte(doc), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate student")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yml")
	require.NoError(t, os.WriteFile(path, DemoSource(), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Students(), 3)

	_, err = LoadFile(filepath.Join(dir, "catalog.toml"))
	require.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.yaml", FormatYAML, false},
		{"a.YML", FormatYAML, false},
		{"dir/a.json", FormatJSON, false},
		{"a.txt", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}
