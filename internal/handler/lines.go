package handler

import (
	"fmt"
	"io"

	"github.com/craftrpg/engine/internal/core/event"
)

const (
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// SubscribeLines prints every notification with a line to w. With color on,
// damage is red, healing green, and the hunger reading yellow once
// saturation is gone.
func SubscribeLines(bus *event.Bus, w io.Writer, color bool) {
	bus.SubscribeAll(func(ev event.Event) {
		line := ev.Line()
		if line == "" {
			return
		}
		if color {
			if c := colorOf(ev); c != "" {
				line = c + line + ansiReset
			}
		}
		fmt.Fprintln(w, line)
	})
}

func colorOf(ev event.Event) string {
	switch e := ev.(type) {
	case event.Damaged, event.Died:
		return ansiRed
	case event.Healed:
		return ansiGreen
	case event.HungerChanged:
		if e.Saturation == 0 {
			return ansiYellow
		}
	}
	return ""
}
