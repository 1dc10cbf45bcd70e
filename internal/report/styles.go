// Package report renders and accumulates the validation transcript.
package report

import "github.com/charmbracelet/lipgloss"

// Styler renders one class of report text. The sink is handed a styler at
// startup instead of consulting process-wide color state, so plain and
// colorized output share every other code path.
type Styler interface {
	Title(s string) string
	Error(s string) string
	Warning(s string) string
	Success(s string) string
	Location(s string) string
	Bold(s string) string
}

// NewStyler returns a colorized styler, or a pass-through one when color
// is disabled.
func NewStyler(color bool) Styler {
	if !color {
		return plainStyler{}
	}
	return ansiStyler{
		title:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // bright cyan
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // bright red
		warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // bright yellow
		ok:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // bright green
		location: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		bold:     lipgloss.NewStyle().Bold(true),
	}
}

type ansiStyler struct {
	title    lipgloss.Style
	err      lipgloss.Style
	warn     lipgloss.Style
	ok       lipgloss.Style
	location lipgloss.Style
	bold     lipgloss.Style
}

func (a ansiStyler) Title(s string) string    { return a.title.Render(s) }
func (a ansiStyler) Error(s string) string    { return a.err.Render(s) }
func (a ansiStyler) Warning(s string) string  { return a.warn.Render(s) }
func (a ansiStyler) Success(s string) string  { return a.ok.Render(s) }
func (a ansiStyler) Location(s string) string { return a.location.Render(s) }
func (a ansiStyler) Bold(s string) string     { return a.bold.Render(s) }

type plainStyler struct{}

func (plainStyler) Title(s string) string    { return s }
func (plainStyler) Error(s string) string    { return s }
func (plainStyler) Warning(s string) string  { return s }
func (plainStyler) Success(s string) string  { return s }
func (plainStyler) Location(s string) string { return s }
func (plainStyler) Bold(s string) string     { return s }
