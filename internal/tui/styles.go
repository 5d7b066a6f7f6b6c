package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/figaro/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg       lipgloss.Color
	colorAccent   lipgloss.Color
	colorFgMuted  lipgloss.Color
	colorFree     lipgloss.Color
	colorOccupied lipgloss.Color
	colorWarning  lipgloss.Color

	// Chrome
	TitleStyle  lipgloss.Style
	TabStyle    lipgloss.Style
	TabActive   lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style

	// Agenda grid
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style
	TimeColumnStyle     lipgloss.Style
	SlotFreeStyle       lipgloss.Style
	SlotOccupiedStyle   lipgloss.Style
	SlotCursorStyle     lipgloss.Style
	SlotPastStyle       lipgloss.Style

	// Lists
	RowStyle         lipgloss.Style
	RowSelectedStyle lipgloss.Style
	RowMutedStyle    lipgloss.Style

	// Payment chips
	ChipUpcomingStyle lipgloss.Style
	ChipDueStyle      lipgloss.Style
	ChipPaidStyle     lipgloss.Style

	// Modal and forms
	ModalStyle            lipgloss.Style
	ModalTitleStyle       lipgloss.Style
	ModalLabelStyle       lipgloss.Style
	ModalWarningStyle     lipgloss.Style
	InputTextStyle        lipgloss.Style
	InputPlaceholderStyle lipgloss.Style
	FocusedPanelStyle     lipgloss.Style
	BlurredPanelStyle     lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:       theme.Color(t.Bg),
		colorAccent:   theme.Color(t.Accent),
		colorFgMuted:  theme.Color(t.FgMuted),
		colorFree:     theme.Color(t.Free),
		colorOccupied: theme.Color(t.Occupied),
		colorWarning:  theme.Color(t.Warning),
	}

	fg := theme.Color(t.Fg)
	bgHighlight := theme.Color(t.BgHighlight)
	bgSelection := theme.Color(t.BgSelection)

	s.TitleStyle = lipgloss.NewStyle().Foreground(s.colorAccent).Bold(true)
	s.TabStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted).Padding(0, 1)
	s.TabActive = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorAccent).Bold(true).Padding(0, 1)
	s.StatusStyle = lipgloss.NewStyle().Foreground(theme.Color(t.Due))
	s.HelpStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	s.DayHeaderStyle = lipgloss.NewStyle().Foreground(fg).Bold(true).Align(lipgloss.Center)
	s.DayHeaderTodayStyle = s.DayHeaderStyle.Foreground(s.colorAccent)
	s.TimeColumnStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.SlotFreeStyle = lipgloss.NewStyle().Foreground(s.colorFree)
	s.SlotOccupiedStyle = lipgloss.NewStyle().Foreground(s.colorOccupied)
	s.SlotCursorStyle = lipgloss.NewStyle().Foreground(fg).Background(bgSelection).Bold(true)
	s.SlotPastStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	s.RowStyle = lipgloss.NewStyle().Foreground(fg)
	s.RowSelectedStyle = lipgloss.NewStyle().Foreground(fg).Background(bgSelection).Bold(true)
	s.RowMutedStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	s.ChipUpcomingStyle = lipgloss.NewStyle().Foreground(s.colorAccent)
	s.ChipDueStyle = lipgloss.NewStyle().Foreground(theme.Color(t.Due)).Bold(true)
	s.ChipPaidStyle = lipgloss.NewStyle().Foreground(theme.Color(t.Paid))

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(bgHighlight).
		Padding(1, 2)
	s.ModalTitleStyle = lipgloss.NewStyle().Foreground(s.colorAccent).Bold(true)
	s.ModalLabelStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.ModalWarningStyle = lipgloss.NewStyle().Foreground(s.colorWarning).Bold(true)
	s.InputTextStyle = lipgloss.NewStyle().Foreground(fg)
	s.InputPlaceholderStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.FocusedPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.colorAccent).
		Padding(0, 1)
	s.BlurredPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.colorFgMuted).
		Padding(0, 1)

	return s
}
