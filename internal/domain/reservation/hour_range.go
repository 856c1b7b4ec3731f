package reservation

import (
	"errors"
	"fmt"
)

var ErrInvalidTimeSlot = errors.New("invalid time slot")

// Bookable sub-ranges of a day. Requests may not straddle the lunch (12-13)
// or dinner (18-19) breaks, nor fall outside 8-22.
var canonicalSlots = [3]HourRange{
	{start: 8, end: 12},
	{start: 13, end: 18},
	{start: 19, end: 22},
}

// HourRange is a half-open whole-hour interval [start, end) within a day.
type HourRange struct {
	start int
	end   int
}

// NewHourRange validates that start < end and that the interval is fully
// contained in exactly one canonical slot.
func NewHourRange(start, end int) (HourRange, error) {
	if start >= end {
		return HourRange{}, ErrInvalidTimeSlot
	}
	for _, slot := range canonicalSlots {
		if start >= slot.start && end <= slot.end {
			return HourRange{start: start, end: end}, nil
		}
	}
	return HourRange{}, ErrInvalidTimeSlot
}

// ReconstructHourRange rebuilds a range from storage without re-validation.
func ReconstructHourRange(start, end int) HourRange {
	return HourRange{start: start, end: end}
}

func (h HourRange) Start() int {
	return h.start
}

func (h HourRange) End() int {
	return h.end
}

func (h HourRange) Hours() int {
	return h.end - h.start
}

// Overlaps uses half-open semantics: touching boundaries do not overlap.
func (h HourRange) Overlaps(other HourRange) bool {
	return h.start < other.end && h.end > other.start
}

func (h HourRange) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", h.start, h.end)
}

func CanonicalSlots() []HourRange {
	return canonicalSlots[:]
}
