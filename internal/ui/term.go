package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the CLI output.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Free slots and positive states: green
	colorFree = color.New(color.FgGreen)

	// Booked slots: red
	colorBooked = color.New(color.FgRed)

	// Payments due: yellow to make it pop
	colorDue = color.New(color.FgYellow)

	// Muted: for secondary information and inactive entities
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// truncate trims a line to the given width, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 3 || len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatFree formats text for free slots.
func formatFree(s string) string {
	return colorFree.Sprint(s)
}

// formatBooked formats text for booked slots.
func formatBooked(s string) string {
	return colorBooked.Sprint(s)
}

// formatDue formats text for unpaid finished appointments.
func formatDue(s string) string {
	return colorDue.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
