package domain

import "time"

// SelectionWindow is a half-open time interval [Lower, Upper). A zero Upper
// means the window is unbounded above.
type SelectionWindow struct {
	Lower time.Time
	Upper time.Time
}

// Contains reports whether t falls inside the window.
func (w SelectionWindow) Contains(t time.Time) bool {
	if t.Before(w.Lower) {
		return false
	}
	if !w.Upper.IsZero() && !t.Before(w.Upper) {
		return false
	}
	return true
}

// DailyWindow returns the window [yesterday at hourUTC:00, +inf) relative to
// now, the bound the bot has historically filtered against.
func DailyWindow(now time.Time, hourUTC int) SelectionWindow {
	yday := now.UTC().AddDate(0, 0, -1)
	lower := time.Date(yday.Year(), yday.Month(), yday.Day(), hourUTC, 0, 0, 0, time.UTC)
	return SelectionWindow{Lower: lower}
}
