package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gridlog/gridlog/internal/domain"
	"github.com/gridlog/gridlog/internal/timeline"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle returns a foreground style for a category's stored hex
// color, falling back to the plain foreground for blank colors.
func CategoryStyle(c *domain.Category) lipgloss.Style {
	if c == nil || c.Color == "" {
		return StyleFg
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color))
}

// MoodGlyph returns the single-rune marker shown on records carrying a
// mood.
func MoodGlyph(state *string) string {
	if state == nil {
		return ""
	}
	switch domain.MoodState(*state) {
	case domain.MoodGreat:
		return StyleGreen.Render("^")
	case domain.MoodGood:
		return StyleGreen.Render("+")
	case domain.MoodNeutral:
		return StyleDim.Render("=")
	case domain.MoodLow:
		return StyleYellow.Render("-")
	case domain.MoodBad:
		return StyleRed.Render("!")
	default:
		return ""
	}
}

// ImpactLabel renders the colored flash text for a haptic pulse tier.
func ImpactLabel(strength timeline.ImpactStrength) string {
	switch strength {
	case timeline.ImpactHeavy:
		return StyleRed.Render("◆ " + strength.String())
	case timeline.ImpactMedium:
		return StyleYellow.Render("◆ " + strength.String())
	default:
		return StyleDim.Render("◆ " + strength.String())
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
