package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/charmbracelet/lipgloss"
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

// WeekStatePill returns a colored indicator for a week's workflow state.
func WeekStatePill(state domain.WeekState) string {
	switch state {
	case domain.WeekOpen:
		return StyleBlue.Render("○ Open")
	case domain.WeekSubmitted:
		return StyleYellow.Render("● Submitted")
	case domain.WeekApproved:
		return StyleGreen.Render("✔ Approved")
	default:
		return StyleDim.Render(string(state))
	}
}

// TimerPill returns a colored run-state indicator for a timer.
func TimerPill(paused bool) string {
	if paused {
		return StyleYellow.Render("⏸ Paused")
	}
	return StyleGreen.Render("● Running")
}

// BilledPill marks an entry as invoiced or still open.
func BilledPill(billed bool) string {
	if billed {
		return StyleDim.Render("✔ Billed")
	}
	return StyleBlue.Render("○ Open")
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
