package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/probpick/internal/ui/theme"
)

// LevelBar displays a mastery level as a horizontal bar, marked against a threshold.
type LevelBar struct {
	Label     string
	Level     float64
	Threshold float64
	Width     int
	Styled    bool
}

// NewLevelBar creates a new level bar.
func NewLevelBar(label string, level, threshold float64, width int, styled bool) LevelBar {
	return LevelBar{
		Label:     label,
		Level:     level,
		Threshold: threshold,
		Width:     width,
		Styled:    styled,
	}
}

// Deficient reports whether the level sits strictly below the threshold.
func (b LevelBar) Deficient() bool { return b.Level < b.Threshold }

// View renders the bar. Unstyled bars use '#' for filled cells and '.' for
// empty ones.
func (b LevelBar) View() string {
	barWidth := b.Width
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * b.Level)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	value := fmt.Sprintf("%.2f", b.Level)
	mark := ""
	if b.Deficient() {
		mark = " needs help"
	}

	if !b.Styled {
		return fmt.Sprintf("%-24s [%s%s] %s%s",
			b.Label, strings.Repeat("#", filled), strings.Repeat(".", empty), value, mark)
	}

	fill := theme.Success
	valueStyle := theme.Adequate
	if b.Deficient() {
		fill = theme.Error
		valueStyle = theme.Deficient
	}
	filledStr := lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	emptyStr := lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))
	label := theme.Body.Width(24).Render(b.Label)

	return label + " " + filledStr + emptyStr + " " + valueStyle.Render(value+mark)
}
