package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tripbook/internal/domain/build"
)

// AboutRenderer renders build info and the active storage setup.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// StoreInfo describes where trips and catalog items live.
type StoreInfo struct {
	Driver   string
	Location string
	// Schema is the profile store's migration status, e.g. "v2".
	Schema     string
	ConfigFile string
	Broker     string
}

// Render renders build info with ASCII logo and styled info lines.
func (r *AboutRenderer) Render(info build.Info, store StoreInfo) string {
	logo := r.renderLogo()
	lines := r.renderInfoLines(info, store)

	// Combine horizontally: logo | info
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", lines)
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	logo := `███████
  ███
  ███
  ███
  ███`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info build.Info, store StoreInfo) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	lines := []string{
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconVersion), keyStyle.Render("Version"), valStyle.Render(info.Version)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGitBranch), keyStyle.Render("Commit"), valStyle.Render(info.Commit)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconCalendar), keyStyle.Render("Built"), valStyle.Render(info.BuildDate)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGo), keyStyle.Render("Go"), valStyle.Render(info.GoVersion)),
		"",
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconDatabase), keyStyle.Render(store.Driver), valStyle.Render(store.Location)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconLayers), keyStyle.Render("Schema"), valStyle.Render(store.Schema)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconConfig), keyStyle.Render("Config"), valStyle.Render(store.ConfigFile)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconRoute), keyStyle.Render("Events"), valStyle.Render(store.Broker)),
		"",
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL()), keyStyle.Render("as "+info.ClientName())),
	}

	return strings.Join(lines, "\n")
}
