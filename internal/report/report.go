// Package report renders recommendations, catalogs and history for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abhisek/probpick/internal/app"
	"github.com/abhisek/probpick/internal/problemset"
	"github.com/abhisek/probpick/internal/skill"
	"github.com/abhisek/probpick/internal/store"
	"github.com/abhisek/probpick/internal/student"
	"github.com/abhisek/probpick/internal/ui/components"
	"github.com/abhisek/probpick/internal/ui/theme"
)

// Renderer writes human-readable output. When Styled is false no escape
// sequences are emitted.
type Renderer struct {
	w      io.Writer
	styled bool
}

// New creates a Renderer writing to w.
func New(w io.Writer, styled bool) *Renderer {
	return &Renderer{w: w, styled: styled}
}

func (r *Renderer) style(s string, render func(...string) string) string {
	if !r.styled {
		return s
	}
	return render(s)
}

// Recommendations prints one line per recommendation.
func (r *Renderer) Recommendations(recs []app.Recommendation) {
	for _, rec := range recs {
		fmt.Fprintf(r.w, "For %s, we recommend: %s\n",
			r.style(rec.Student, theme.Student.Render),
			r.style(rec.Handle, theme.Handle.Render))
	}
}

// Problems lists problems with their tagged skills.
func (r *Renderer) Problems(problems []problemset.Problem) {
	fmt.Fprintln(r.w, r.style(fmt.Sprintf("%-12s  %s", "Handle", "Skills"), theme.Title.Render))
	fmt.Fprintln(r.w, strings.Repeat("─", 60))
	for _, p := range problems {
		fmt.Fprintf(r.w, "%-12s  %s\n", p.Handle(), joinSkills(p.Skills()))
	}
	fmt.Fprintf(r.w, "\n%d problems\n", len(problems))
}

// Ranking lists problems by score for one student. The first row is the
// recommendation.
func (r *Renderer) Ranking(studentName string, threshold float64, ranked []problemset.Scored) {
	fmt.Fprintln(r.w, r.style(fmt.Sprintf("Problems for %s at threshold %.2f", studentName, threshold), theme.Title.Render))
	fmt.Fprintf(r.w, "%4s  %-12s  %5s  %s\n", "Rank", "Handle", "Score", "Skills")
	fmt.Fprintln(r.w, strings.Repeat("─", 60))
	for i, s := range ranked {
		handle := fmt.Sprintf("%-12s", s.Problem.Handle())
		if i == 0 {
			handle = r.style(handle, theme.Handle.Render)
		}
		fmt.Fprintf(r.w, "%4d  %s  %5d  %s\n", i+1, handle, s.Score, joinSkills(s.Problem.Skills()))
	}
}

// Skills lists skill names.
func (r *Renderer) Skills(skills []skill.Skill) {
	for _, s := range skills {
		fmt.Fprintln(r.w, s.Name())
	}
	fmt.Fprintf(r.w, "\n%d skills\n", len(skills))
}

// Students lists each student's abilities as level bars.
func (r *Renderer) Students(students []*student.Student, threshold float64) {
	for i, st := range students {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintln(r.w, r.style(st.Name(), theme.Title.Render))
		abilities := st.Abilities()
		if len(abilities) == 0 {
			fmt.Fprintln(r.w, r.style("  (no measured abilities)", theme.Hint.Render))
			continue
		}
		for _, a := range abilities {
			bar := components.NewLevelBar(a.Skill.Name(), a.Level.Value(), threshold, 20, r.styled)
			fmt.Fprintln(r.w, "  "+bar.View())
		}
	}
}

// History lists recorded recommendations.
func (r *Renderer) History(events []store.RecommendationEvent) {
	if len(events) == 0 {
		fmt.Fprintln(r.w, r.style("No recorded recommendations.", theme.Hint.Render))
		return
	}
	fmt.Fprintf(r.w, "%-20s  %-16s  %-12s  %5s  %9s  %s\n",
		"Time", "Student", "Handle", "Score", "Threshold", "Catalog")
	fmt.Fprintln(r.w, strings.Repeat("─", 84))
	for _, ev := range events {
		fmt.Fprintf(r.w, "%-20s  %-16s  %-12s  %5d  %9.2f  %s\n",
			ev.Timestamp.Local().Format(time.DateTime), ev.Student, ev.Handle,
			ev.Score, ev.Threshold, ev.CatalogVersion)
	}
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func joinSkills(skills []skill.Skill) string {
	if len(skills) == 0 {
		return "-"
	}
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name()
	}
	return strings.Join(names, ", ")
}
