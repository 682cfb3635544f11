package main

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const screenWidth = 46

// screen prints the startup and summary text around the game. Numbers are
// grouped the English way; color can be turned off for plain terminals.
type screen struct {
	w     io.Writer
	p     *message.Printer
	color bool
}

func newScreen(w io.Writer, color bool) *screen {
	return &screen{w: w, p: message.NewPrinter(language.English), color: color}
}

func (s *screen) paint(code, text string) string {
	if !s.color {
		return text
	}
	return "\033[" + code + "m" + text + "\033[0m"
}

// fill returns n copies of r, never fewer than 3.
func fill(r string, n int) string {
	return strings.Repeat(r, max(n, 3))
}

func (s *screen) banner(seed uint64) {
	edge := fill("─", screenWidth-3)
	s.p.Fprintf(s.w, "\n  %s\n", s.paint("32;1", "┌"+edge+"┐"))
	for _, line := range []string{"CraftRPG  v0.1.0", "a text survival adventure"} {
		pad := screenWidth - 3 - len(line)
		left := pad / 2
		s.p.Fprintf(s.w, "  %s%s%s%s%s\n", s.paint("32;1", "│"),
			strings.Repeat(" ", left), line, strings.Repeat(" ", pad-left), s.paint("32;1", "│"))
	}
	s.p.Fprintf(s.w, "  %s\n\n", s.paint("32;1", "└"+edge+"┘"))
	if seed != 0 {
		s.p.Fprintf(s.w, "  %s %d\n\n", s.paint("1", "Seed:"), seed)
	}
}

func (s *screen) section(title string) {
	s.p.Fprintf(s.w, "  %s\n", s.paint("33", "── "+title+" "+fill("─", screenWidth-len(title)-1)))
}

// stat prints a label and a count joined by a dotted leader.
func (s *screen) stat(label string, n int) {
	num := s.p.Sprintf("%d", n)
	s.p.Fprintf(s.w, "  %s %s %s\n", label, s.paint("90", fill("·", screenWidth-4-len(label)-len(num))), s.paint("32", num))
}

func (s *screen) note(text string) {
	s.p.Fprintf(s.w, "    %s\n", s.paint("90", text))
}

func (s *screen) ok(msg string) {
	s.p.Fprintf(s.w, "  %s %s\n", s.paint("32", "✓"), msg)
}

func (s *screen) ready(msg string) {
	s.p.Fprintf(s.w, "  %s %s\n", s.paint("32", "▶"), msg)
}

func (s *screen) printf(format string, args ...any) {
	s.p.Fprintf(s.w, format, args...)
}
