package styles

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tripbook/internal/domain/entity"
)

// Indicator is the spinner line shown while a lookup or a save is running.
type Indicator struct {
	Spinner spinner.Model
	label   string
	theme   *Theme
}

func newIndicator(theme *Theme, label string) Indicator {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return Indicator{Spinner: s, label: label, theme: theme}
}

// NewSearchIndicator creates the indicator of a category lookup.
func NewSearchIndicator(theme *Theme, category entity.Category) Indicator {
	return newIndicator(theme, "Searching "+string(category)+"...")
}

// NewSaveIndicator creates the indicator shown while a trip is stored.
func NewSaveIndicator(theme *Theme) Indicator {
	return newIndicator(theme, "Saving trip...")
}

// View renders the spinner and label.
func (i Indicator) View() string {
	return i.Spinner.View() + " " + i.theme.Subtle.Render(i.label)
}
