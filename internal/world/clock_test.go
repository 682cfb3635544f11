package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockCarriesSeconds(t *testing.T) {
	var c Clock
	_, ok := c.Advance(61)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Minutes)
	assert.Equal(t, 1, c.Seconds)

	c.Advance(59)
	assert.Equal(t, 2, c.Minutes)
	assert.Equal(t, 0, c.Seconds)
}

func TestClockNoOpForNonPositive(t *testing.T) {
	c := Clock{Minutes: 19, Seconds: 59}
	_, ok := c.Advance(0)
	assert.False(t, ok)
	_, ok = c.Advance(-30)
	assert.False(t, ok)
	assert.Equal(t, Clock{Minutes: 19, Seconds: 59}, c)
}

func TestClockBecomesNight(t *testing.T) {
	c := Clock{Minutes: 19, Seconds: 30}
	tr, ok := c.Advance(30)
	assert.True(t, ok)
	assert.Equal(t, Transition{From: Dusk, To: Night}, tr)
	assert.Equal(t, "It is now night.", tr.To.Announcement())
	assert.True(t, c.IsNight())
}

func TestClockSunset(t *testing.T) {
	c := Clock{Minutes: 17, Seconds: 45}
	tr, ok := c.Advance(30)
	assert.True(t, ok)
	assert.Equal(t, Dusk, tr.To)
	assert.Equal(t, "The sun begins to set.", tr.To.Announcement())
	assert.False(t, c.IsNight())
}

func TestClockWrapsToDay(t *testing.T) {
	c := Clock{Minutes: 39, Seconds: 50}
	tr, ok := c.Advance(20)
	assert.True(t, ok)
	assert.Equal(t, 0, c.Minutes)
	assert.Equal(t, 10, c.Seconds)
	assert.Equal(t, Day, tr.To)
	assert.Equal(t, "It is now day.", tr.To.Announcement())
	assert.False(t, c.IsNight())
}

func TestClockSunrise(t *testing.T) {
	c := Clock{Minutes: 37, Seconds: 59}
	tr, ok := c.Advance(1)
	assert.True(t, ok)
	assert.Equal(t, Transition{From: Night, To: Dawn}, tr)
	assert.Equal(t, "The sun begins to come up.", tr.To.Announcement())
	// Dawn still counts as night for spawning.
	assert.True(t, c.IsNight())
}

func TestClockLargeStepReportsOnlyFinalPhase(t *testing.T) {
	// From day straight through dusk and into night.
	c := Clock{Minutes: 10}
	tr, ok := c.Advance(15 * 60)
	assert.True(t, ok)
	assert.Equal(t, 25, c.Minutes)
	assert.Equal(t, Transition{From: Day, To: Night}, tr)

	// A full day round trip lands in the same phase: nothing to report.
	c = Clock{Minutes: 5}
	_, ok = c.Advance(DayMinutes * 60)
	assert.False(t, ok)
	assert.Equal(t, 5, c.Minutes)
}

func TestClockSameNotificationRegardlessOfStepSize(t *testing.T) {
	big := Clock{Minutes: 16}
	trBig, _ := big.Advance(5 * 60)

	small := Clock{Minutes: 16}
	var last Transition
	count := 0
	for i := 0; i < 5*60; i++ {
		if tr, ok := small.Advance(1); ok {
			last = tr
			count++
		}
	}
	assert.Equal(t, big, small)
	assert.Equal(t, trBig.To, last.To)
	assert.Equal(t, 2, count, "dusk then night")
}

func TestPhaseAt(t *testing.T) {
	cases := map[int]Phase{0: Day, 17: Day, 18: Dusk, 19: Dusk, 20: Night, 37: Night, 38: Dawn, 39: Dawn}
	for m, want := range cases {
		assert.Equal(t, want, PhaseAt(m), "minute %d", m)
	}
}
