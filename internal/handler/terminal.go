package handler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// Terminal is a line-based Prompter. Options are numbered from 1; the player
// answers with a number or a word. At end of input the last option is
// chosen, which every menu reserves for its way out.
type Terminal struct {
	in     *bufio.Scanner
	out    io.Writer
	closed bool
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// Choose implements Prompter.
func (t *Terminal) Choose(options ...string) int {
	for i, o := range options {
		fmt.Fprintf(t.out, "%d. %s\n", i+1, o)
	}
	for {
		fmt.Fprint(t.out, ">> ")
		if t.closed || !t.in.Scan() {
			t.closed = true
			fmt.Fprintln(t.out)
			return len(options) - 1
		}
		if i, ok := Match(t.in.Text(), options); ok {
			return i
		}
	}
}

// Closed reports whether input has ended.
func (t *Terminal) Closed() bool {
	return t.closed
}

// Match resolves an answer to an option index. It accepts a 1-based number,
// a case-insensitive label or unique label prefix, and otherwise the single
// closest label within a length-scaled edit distance.
func Match(input string, options []string) (int, bool) {
	in := strings.TrimSpace(input)
	if in == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(in); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}

	fold := cases.Fold()
	in = fold.String(in)
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = fold.String(o)
		if labels[i] == in {
			return i, true
		}
	}

	prefix := -1
	for i, l := range labels {
		if strings.HasPrefix(l, in) {
			if prefix >= 0 {
				return 0, false
			}
			prefix = i
		}
	}
	if prefix >= 0 {
		return prefix, true
	}

	if len(in) < 3 {
		return 0, false
	}
	best, bestDist, tie := -1, 0, false
	for i, l := range labels {
		dist := levenshtein.ComputeDistance(in, l)
		if dist > levenshteinLimit(len(l)) {
			continue
		}
		switch {
		case best < 0 || dist < bestDist:
			best, bestDist, tie = i, dist, false
		case dist == bestDist:
			tie = true
		}
	}
	if best < 0 || tie {
		return 0, false
	}
	return best, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
