package blackout

import (
	"errors"
	"time"

	"rehearsal-rooms/internal/domain/reservation"

	"github.com/google/uuid"
)

var ErrInvalidHourRange = errors.New("invalid blackout hour range")

const DefaultReason = "unavailable"

type Kind string

const (
	// KindExactDate applies to a single calendar day.
	KindExactDate Kind = "exact_date"
	// KindWeekly recurs on one weekday (time.Weekday numbering, 0=Sunday).
	KindWeekly Kind = "weekly"
	// KindGlobal applies to every day.
	KindGlobal Kind = "global"
)

// Rule is a campus-scoped time range during which booking is disallowed.
// The kind makes the active-for-date matching exhaustive instead of a chain
// of null checks over optional date / weekday columns.
type Rule struct {
	id        uuid.UUID
	campusID  uuid.UUID
	kind      Kind
	date      time.Time
	weekday   time.Weekday
	startHour int
	endHour   int
	reason    string
}

func NewExactDateRule(campusID uuid.UUID, date time.Time, startHour, endHour int, reason string) (Rule, error) {
	if err := validateHours(startHour, endHour); err != nil {
		return Rule{}, err
	}
	return Rule{
		id:        uuid.New(),
		campusID:  campusID,
		kind:      KindExactDate,
		date:      reservation.DateOf(date),
		startHour: startHour,
		endHour:   endHour,
		reason:    reason,
	}, nil
}

func NewWeeklyRule(campusID uuid.UUID, weekday time.Weekday, startHour, endHour int, reason string) (Rule, error) {
	if err := validateHours(startHour, endHour); err != nil {
		return Rule{}, err
	}
	return Rule{
		id:        uuid.New(),
		campusID:  campusID,
		kind:      KindWeekly,
		weekday:   weekday,
		startHour: startHour,
		endHour:   endHour,
		reason:    reason,
	}, nil
}

func NewGlobalRule(campusID uuid.UUID, startHour, endHour int, reason string) (Rule, error) {
	if err := validateHours(startHour, endHour); err != nil {
		return Rule{}, err
	}
	return Rule{
		id:        uuid.New(),
		campusID:  campusID,
		kind:      KindGlobal,
		startHour: startHour,
		endHour:   endHour,
		reason:    reason,
	}, nil
}

// ReconstructRule rebuilds a rule from its stored representation, where date
// and weekday are optional columns. A set date wins over a set weekday; both
// unset means the rule is global.
func ReconstructRule(id, campusID uuid.UUID, date *time.Time, weekday *time.Weekday, startHour, endHour int, reason string) Rule {
	r := Rule{
		id:        id,
		campusID:  campusID,
		kind:      KindGlobal,
		startHour: startHour,
		endHour:   endHour,
		reason:    reason,
	}
	switch {
	case date != nil:
		r.kind = KindExactDate
		r.date = reservation.DateOf(*date)
	case weekday != nil:
		r.kind = KindWeekly
		r.weekday = *weekday
	}
	return r
}

func validateHours(startHour, endHour int) error {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return ErrInvalidHourRange
	}
	return nil
}

// AppliesTo reports whether the rule is active on the given calendar day.
func (r Rule) AppliesTo(date time.Time) bool {
	switch r.kind {
	case KindExactDate:
		return r.date.Equal(reservation.DateOf(date))
	case KindWeekly:
		return r.weekday == date.Weekday()
	case KindGlobal:
		return true
	default:
		return false
	}
}

// Blocks reports whether the rule forbids the requested hour range on the
// given day (open-interval overlap, adjacency allowed).
func (r Rule) Blocks(date time.Time, hours reservation.HourRange) bool {
	return r.AppliesTo(date) && r.startHour < hours.End() && r.endHour > hours.Start()
}

// Reason returns the stored reason, or a generic fallback when none is set.
func (r Rule) Reason() string {
	if r.reason == "" {
		return DefaultReason
	}
	return r.reason
}

func (r Rule) ID() uuid.UUID       { return r.id }
func (r Rule) CampusID() uuid.UUID { return r.campusID }
func (r Rule) RuleKind() Kind      { return r.kind }
func (r Rule) StartHour() int      { return r.startHour }
func (r Rule) EndHour() int        { return r.endHour }

// Date is meaningful only for KindExactDate rules.
func (r Rule) Date() time.Time { return r.date }

// Weekday is meaningful only for KindWeekly rules.
func (r Rule) Weekday() time.Weekday { return r.weekday }

// RawReason returns the reason as stored, possibly empty.
func (r Rule) RawReason() string { return r.reason }
