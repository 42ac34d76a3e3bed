package progress

import "time"

// Window is the inclusive range of days that accept clicks.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// InteractiveWindow returns the clickable days of a habit starting at start.
// A positive durationDays bounds the window to that many days including the
// start day; zero or negative means unlimited. The window never extends past
// today.
func InteractiveWindow(start time.Time, durationDays int, today time.Time) Window {
	w := Window{Start: Day(start), End: Day(today)}
	if durationDays > 0 {
		last := w.Start.AddDate(0, 0, durationDays-1)
		if last.Before(w.End) {
			w.End = last
		}
	}
	return w
}

// Empty reports whether no day is interactive.
func (w Window) Empty() bool {
	return w.End.Before(w.Start)
}

func (w Window) Contains(day time.Time) bool {
	d := Day(day)
	return !w.Empty() && !d.Before(w.Start) && !d.After(w.End)
}
