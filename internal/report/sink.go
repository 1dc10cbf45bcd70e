package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdx-tools/pdxlint/internal/model"
)

const ruleWidth = 80

// Sink accumulates the validation transcript. Styled lines are mirrored to
// the console writer as they arrive; a plain copy of every line is kept for
// the optional output file. The sink also tracks the running issue total.
type Sink struct {
	out    io.Writer
	styler Styler
	lines  []string
	issues int
}

// NewSink creates a sink writing styled output to out.
func NewSink(out io.Writer, styler Styler) *Sink {
	return &Sink{out: out, styler: styler}
}

func (s *Sink) emit(plain, styled string) {
	fmt.Fprintln(s.out, styled)
	s.lines = append(s.lines, plain)
}

// Println writes an unstyled line.
func (s *Sink) Println(text string) {
	s.emit(text, text)
}

// Section opens a check section: a blank line, a separator rule, the check
// title, and another rule.
func (s *Sink) Section(title string) {
	rule := strings.Repeat("=", ruleWidth)
	s.Println("")
	s.Println(rule)
	s.emit(title, s.styler.Title(title))
	s.Println(rule)
}

// Banner opens a validator run with its headline.
func (s *Sink) Banner(title string) {
	rule := strings.Repeat("#", ruleWidth)
	s.Println("")
	s.Println(rule)
	s.emit(title, s.styler.Bold(title))
	s.Println(rule)
}

// Headline writes the red lead-in of a failed check.
func (s *Sink) Headline(text string) {
	s.emit(text, s.styler.Error(text))
}

// Note writes a yellow advisory line.
func (s *Sink) Note(text string) {
	s.emit(text, s.styler.Warning(text))
}

// Info writes a cyan informational line.
func (s *Sink) Info(text string) {
	s.emit(text, s.styler.Title(text))
}

// Defect writes one defect row. The line segment is omitted when the
// occurrence could not be re-located.
func (s *Sink) Defect(d model.Defect) {
	location := d.File
	if d.Line > 0 {
		location = fmt.Sprintf("%s:%d", d.File, d.Line)
	}
	plain := fmt.Sprintf("  %s - %s", location, d.Symbol)
	styled := fmt.Sprintf("  %s - %s", s.styler.Location(location), d.Symbol)
	s.emit(plain, styled)
}

// IssueCount closes a failed check and adds n to the running total.
func (s *Sink) IssueCount(n int) {
	text := fmt.Sprintf("%d issues found", n)
	s.emit(text, s.styler.Error(text))
	s.issues += n
}

// Pass closes a clean check.
func (s *Sink) Pass(text string) {
	line := "✓ " + text
	s.emit(line, s.styler.Success(line))
}

// Summary closes the run with the final banner and total.
func (s *Sink) Summary() {
	rule := strings.Repeat("#", ruleWidth)
	s.Println("")
	s.Println(rule)
	if s.issues == 0 {
		text := "✓ VALIDATION COMPLETE - NO ISSUES FOUND"
		s.emit(text, s.styler.Success(text))
	} else {
		text := fmt.Sprintf("✗ VALIDATION COMPLETE - %d TOTAL ISSUES FOUND", s.issues)
		s.emit(text, s.styler.Error(text))
	}
	s.Println(rule)
	s.Println("")
}

// Issues returns the running defect total.
func (s *Sink) Issues() int {
	return s.issues
}

// Transcript returns the accumulated plain-text report.
func (s *Sink) Transcript() string {
	return strings.Join(s.lines, "\n")
}

// Save writes the plain transcript to path. A write failure is the
// caller's to log; it never affects the in-memory report or the exit code.
func (s *Sink) Save(path string) error {
	if path == "" || len(s.lines) == 0 {
		return nil
	}
	return os.WriteFile(path, []byte(s.Transcript()), 0o644)
}
