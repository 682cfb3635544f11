package world

// In-world time. A full day is 40 minutes: night covers the second half, and
// short dusk and dawn segments lead into each half.
const (
	DayMinutes = 40
	DuskStart  = 18
	NightStart = 20
	DawnStart  = 38
)

// Phase is the segment of the day a minute value falls in.
type Phase int

const (
	Day Phase = iota
	Dusk
	Night
	Dawn
)

// PhaseAt returns the phase of a minute value in [0, DayMinutes).
func PhaseAt(minutes int) Phase {
	switch {
	case minutes >= DawnStart:
		return Dawn
	case minutes >= NightStart:
		return Night
	case minutes >= DuskStart:
		return Dusk
	}
	return Day
}

func (p Phase) String() string {
	switch p {
	case Day:
		return "day"
	case Dusk:
		return "dusk"
	case Night:
		return "night"
	case Dawn:
		return "dawn"
	}
	return "unknown"
}

// Announcement is the line shown on entering the phase.
func (p Phase) Announcement() string {
	switch p {
	case Day:
		return "It is now day."
	case Dusk:
		return "The sun begins to set."
	case Night:
		return "It is now night."
	case Dawn:
		return "The sun begins to come up."
	}
	return ""
}

// Transition describes a phase change caused by one Advance call.
type Transition struct {
	From Phase
	To   Phase
}

// Clock is the session's in-world time. Owned by the player; advanced only
// by vitals ticks and activities that cost time.
type Clock struct {
	Minutes int
	Seconds int
}

// Advance adds seconds, carries into minutes and wraps at DayMinutes. It
// reports at most one transition: the phase after the call compared with
// the phase before it, however many boundaries the step skipped.
func (c *Clock) Advance(seconds int) (Transition, bool) {
	if seconds <= 0 {
		return Transition{}, false
	}
	before := PhaseAt(c.Minutes)

	total := c.Seconds + seconds
	c.Seconds = total % 60
	c.Minutes = (c.Minutes + total/60) % DayMinutes

	after := PhaseAt(c.Minutes)
	if before == after {
		return Transition{}, false
	}
	return Transition{From: before, To: after}, true
}

// IsNight reports whether hostile night creatures can spawn.
func (c *Clock) IsNight() bool {
	return c.Minutes >= NightStart
}
