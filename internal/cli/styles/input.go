package styles

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tripbook/internal/domain/entity"
)

const fieldLabelWidth = 12

var errNotANumber = errors.New("not a number")

// CategoryIcon returns the icon shown in front of an input of category.
func CategoryIcon(category entity.Category) string {
	switch category {
	case entity.CategoryVehicle:
		return IconTruck
	case entity.CategoryLocation:
		return IconMapPin
	case entity.CategoryDriver:
		return IconUser
	default:
		return IconCursor
	}
}

func newInput(theme *Theme, prompt, placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return ti
}

// NewSearchInput creates the input of a category picker.
func NewSearchInput(theme *Theme, category entity.Category) textinput.Model {
	return newInput(theme, CategoryIcon(category)+" ", "Search "+string(category)+"...", 64)
}

// NewFieldInput creates a trip form input searching category.
func NewFieldInput(theme *Theme, label string, category entity.Category) textinput.Model {
	prompt := padLabel(label) + CategoryIcon(category) + " "
	return newInput(theme, prompt, string(category), 64)
}

// NewNumberInput creates a trip form input that only takes a non-negative
// decimal.
func NewNumberInput(theme *Theme, label, placeholder string) textinput.Model {
	ti := newInput(theme, padLabel(label)+"  ", placeholder, 16)
	ti.Validate = func(s string) error {
		if s == "" {
			return nil
		}
		if strings.HasPrefix(s, "-") {
			return errNotANumber
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil && s != "." {
			return errNotANumber
		}
		return nil
	}
	return ti
}

func padLabel(label string) string {
	if len(label) >= fieldLabelWidth {
		return label + " "
	}
	return label + strings.Repeat(" ", fieldLabelWidth-len(label))
}
