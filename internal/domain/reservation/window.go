package reservation

import "time"

// Bookings re-open for the coming week on Sundays at 22:00 local time.
const windowRolloverHour = 22

// Window is the inclusive date range [start, end] that may currently be
// booked. It spans exactly one week, anchored on Sundays.
type Window struct {
	start time.Time
	end   time.Time
}

// WindowAt computes the booking window from the given instant. Before Sunday
// 22:00 the window runs last-Sunday..this-Sunday; from Sunday 22:00 onward
// (>=, a request at exactly 22:00:00 is already rolled over) it runs
// this-Sunday..next-Sunday.
func WindowAt(now time.Time) Window {
	today := DateOf(now)

	var end time.Time
	if now.Weekday() == time.Sunday {
		if now.Hour() >= windowRolloverHour {
			end = today.AddDate(0, 0, 7)
		} else {
			end = today
		}
	} else {
		end = today.AddDate(0, 0, 7-int(now.Weekday()))
	}

	return Window{start: end.AddDate(0, 0, -7), end: end}
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

// Contains reports whether the calendar day falls inside the window,
// boundaries included.
func (w Window) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(w.start) && !d.After(w.end)
}

// DateOf truncates an instant to its calendar day. The result is anchored
// at UTC midnight so that days taken from instants in different locations
// compare as plain calendar days.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
