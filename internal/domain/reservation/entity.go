package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled   = errors.New("reservation is already cancelled")
	ErrNotActive          = errors.New("reservation is not active")
	ErrKeyAlreadyPickedUp = errors.New("key already picked up")
	ErrKeyNotPickedUp     = errors.New("key has not been picked up")
	ErrKeyAlreadyReturned = errors.New("key already returned")
)

// Reservation is one booking of a campus rehearsal room for an hour range on
// a calendar day. Lifecycle: created active; cancellation and the key flags
// are one-way and never revert.
type Reservation struct {
	id            uuid.UUID
	userID        uuid.UUID
	campusID      uuid.UUID
	date          time.Time
	hours         HourRange
	status        Status
	keyPickedUp   bool
	keyPickupTime *time.Time
	keyReturned   bool
	keyReturnTime *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReservation(userID, campusID uuid.UUID, date time.Time, hours HourRange) *Reservation {
	return &Reservation{
		id:       uuid.New(),
		userID:   userID,
		campusID: campusID,
		date:     DateOf(date),
		hours:    hours,
		status:   StatusActive,
	}
}

func Reconstruct(
	id, userID, campusID uuid.UUID,
	date time.Time,
	hours HourRange,
	status Status,
	keyPickedUp bool,
	keyPickupTime *time.Time,
	keyReturned bool,
	keyReturnTime *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		userID:        userID,
		campusID:      campusID,
		date:          date,
		hours:         hours,
		status:        status,
		keyPickedUp:   keyPickedUp,
		keyPickupTime: keyPickupTime,
		keyReturned:   keyReturned,
		keyReturnTime: keyReturnTime,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Cancel moves an active reservation to cancelled. Cancelling twice is an
// error, not a silent no-op.
func (r *Reservation) Cancel() error {
	if r.status != StatusActive {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	return nil
}

// PickUpKey records the key handover. Allowed once, and only while active.
func (r *Reservation) PickUpKey(now time.Time) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	if r.keyPickedUp {
		return ErrKeyAlreadyPickedUp
	}
	r.keyPickedUp = true
	r.keyPickupTime = &now
	return nil
}

// ReturnKey records the key coming back. Requires a prior pickup.
func (r *Reservation) ReturnKey(now time.Time) error {
	if !r.keyPickedUp {
		return ErrKeyNotPickedUp
	}
	if r.keyReturned {
		return ErrKeyAlreadyReturned
	}
	r.keyReturned = true
	r.keyReturnTime = &now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) UserID() uuid.UUID         { return r.userID }
func (r *Reservation) CampusID() uuid.UUID       { return r.campusID }
func (r *Reservation) Date() time.Time           { return r.date }
func (r *Reservation) Hours() HourRange          { return r.hours }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) KeyPickedUp() bool         { return r.keyPickedUp }
func (r *Reservation) KeyPickupTime() *time.Time { return r.keyPickupTime }
func (r *Reservation) KeyReturned() bool         { return r.keyReturned }
func (r *Reservation) KeyReturnTime() *time.Time { return r.keyReturnTime }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
