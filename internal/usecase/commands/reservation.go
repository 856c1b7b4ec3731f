package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rehearsal-rooms/internal/domain/reservation"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/infra/db"
	"rehearsal-rooms/internal/pkg/clock"
	"rehearsal-rooms/internal/pkg/errs"
	"rehearsal-rooms/internal/usecase/queries"
	"rehearsal-rooms/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound            = errs.New("user not found")
	ErrAccountDisabled         = errs.New("account is disabled")
	ErrCampusNotFound          = errs.New("campus not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrPastDate                = errs.New("cannot reserve past dates")
	ErrOutsideBookingWindow    = errs.New("date is outside the booking window")
	ErrSlotUnavailable         = errs.New("time slot unavailable")
	ErrQuotaExceeded           = errs.New("weekly quota exceeded")
	ErrReservationConflict     = errs.New("time slot already reserved")
	ErrUnauthorized            = errs.New("not allowed to modify this reservation")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SlotUnavailableError carries the matching blackout rule's reason.
type SlotUnavailableError struct {
	Reason string
}

func (e *SlotUnavailableError) Error() string {
	return "time slot unavailable: " + e.Reason
}

// QuotaExceededError carries the caller's current usage against the cap.
type QuotaExceededError struct {
	UsedHours      int
	RequestedHours int
	LimitHours     int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("weekly quota exceeded: used %d, requested %d, limit %d",
		e.UsedHours, e.RequestedHours, e.LimitHours)
}

// WeeklyQuotaHours caps a user's total active hours per booking window.
const WeeklyQuotaHours = 6

type CreateReservationInput struct {
	CampusID  uuid.UUID
	Date      time.Time
	StartHour int
	EndHour   int
}

type ReservationCommands interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateReservationInput) (*queries.ReservationView, error)
	Cancel(ctx context.Context, reservationID, actorID uuid.UUID) error
	PickUpKey(ctx context.Context, reservationID, actorID uuid.UUID) error
	ReturnKey(ctx context.Context, reservationID, actorID uuid.UUID) error
}

type reservationCommandsImpl struct {
	reservations ReservationRepository
	users        UserReader
	campuses     CampusReader
	blackouts    BlackoutRulesReader
	views        queries.ReservationReadStore
	tx           shared.TxRunner
	clock        clock.Clock
}

func NewReservationCommands(
	reservations ReservationRepository,
	users UserReader,
	campuses CampusReader,
	blackouts BlackoutRulesReader,
	views queries.ReservationReadStore,
	tx shared.TxRunner,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservations: reservations,
		users:        users,
		campuses:     campuses,
		blackouts:    blackouts,
		views:        views,
		tx:           tx,
		clock:        clock,
	}
}

// Create runs the admission pipeline: caller account state, campus
// existence, booking window, slot shape, blackout rules, then the locked
// conflict + quota re-check around the insert. Every stage short-circuits
// on its first failure.
func (c *reservationCommandsImpl) Create(ctx context.Context, userID uuid.UUID, input CreateReservationInput) (*queries.ReservationView, error) {
	if err := c.requireActiveUser(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := c.campuses.FindByID(ctx, input.CampusID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCampusNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	hours, err := reservation.NewHourRange(input.StartHour, input.EndHour)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	now := c.clock.Now()
	date := reservation.DateOf(input.Date)
	if date.Before(reservation.DateOf(now)) {
		return nil, ErrPastDate
	}

	window := reservation.WindowAt(now)
	if !window.Contains(date) {
		return nil, ErrOutsideBookingWindow
	}

	if err := c.checkBlackouts(ctx, input.CampusID, date, hours); err != nil {
		return nil, err
	}

	entity := reservation.NewReservation(userID, input.CampusID, date, hours)

	err = c.tx.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		// Quota lock first, schedule lock second. All writers take them in
		// this order, which keeps advisory lock acquisition deadlock-free.
		if err := c.reservations.LockUserQuota(ctx, dbtx, userID); err != nil {
			return err
		}
		if err := c.reservations.LockSchedule(ctx, dbtx, input.CampusID, date); err != nil {
			return err
		}

		conflict, err := c.reservations.HasOverlap(ctx, dbtx, input.CampusID, date, hours, nil)
		if err != nil {
			return err
		}
		if conflict {
			return ErrReservationConflict
		}

		if err := c.checkQuota(ctx, dbtx, userID, window, hours.Hours()); err != nil {
			return err
		}

		_, err = c.reservations.Create(ctx, dbtx, entity)
		return err
	})
	if err != nil {
		return nil, markStorageFailure(err)
	}

	view, err := c.views.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Cancel moves a reservation to cancelled. Only the owner or an
// administrator may cancel; cancelling twice is reported, not swallowed.
func (c *reservationCommandsImpl) Cancel(ctx context.Context, reservationID, actorID uuid.UUID) error {
	actor, err := c.users.FindByID(ctx, actorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	err = c.tx.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		entity, err := c.reservations.FindForUpdate(ctx, dbtx, reservationID)
		if err != nil {
			return err
		}

		if entity.UserID() != actorID && !actor.Role.IsAdmin() {
			return ErrUnauthorized
		}

		if err := entity.Cancel(); err != nil {
			return err
		}

		return c.reservations.UpdateLifecycle(ctx, dbtx, entity)
	})
	return markStorageFailure(err)
}

// PickUpKey stamps the key handover. Owner only.
func (c *reservationCommandsImpl) PickUpKey(ctx context.Context, reservationID, actorID uuid.UUID) error {
	return c.transitionOwned(ctx, reservationID, actorID, func(entity *reservation.Reservation) error {
		return entity.PickUpKey(c.clock.Now())
	})
}

// ReturnKey stamps the key coming back. Owner only, requires a pickup.
func (c *reservationCommandsImpl) ReturnKey(ctx context.Context, reservationID, actorID uuid.UUID) error {
	return c.transitionOwned(ctx, reservationID, actorID, func(entity *reservation.Reservation) error {
		return entity.ReturnKey(c.clock.Now())
	})
}

func (c *reservationCommandsImpl) transitionOwned(ctx context.Context, reservationID, actorID uuid.UUID, transition func(*reservation.Reservation) error) error {
	err := c.tx.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		entity, err := c.reservations.FindForUpdate(ctx, dbtx, reservationID)
		if err != nil {
			return err
		}

		if entity.UserID() != actorID {
			return ErrUnauthorized
		}

		if err := transition(entity); err != nil {
			return err
		}

		return c.reservations.UpdateLifecycle(ctx, dbtx, entity)
	})
	return markStorageFailure(err)
}

func (c *reservationCommandsImpl) requireActiveUser(ctx context.Context, userID uuid.UUID) error {
	caller, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !caller.IsActive {
		return ErrAccountDisabled
	}
	return nil
}

func (c *reservationCommandsImpl) checkBlackouts(ctx context.Context, campusID uuid.UUID, date time.Time, hours reservation.HourRange) error {
	rules, err := c.blackouts.RulesForCampus(ctx, campusID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	for _, rule := range rules {
		if rule.Blocks(date, hours) {
			return errs.Mark(&SlotUnavailableError{Reason: rule.Reason()}, ErrSlotUnavailable)
		}
	}
	return nil
}

// checkQuota sums the caller's active hours inside the window. It runs
// under the quota advisory lock, so the sum cannot be raced by a
// concurrent insert from the same user.
func (c *reservationCommandsImpl) checkQuota(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, window reservation.Window, requested int) error {
	used, err := c.reservations.SumActiveHours(ctx, dbtx, userID, window)
	if err != nil {
		return err
	}
	if used+requested > WeeklyQuotaHours {
		quotaErr := &QuotaExceededError{
			UsedHours:      used,
			RequestedHours: requested,
			LimitHours:     WeeklyQuotaHours,
		}
		return errs.Mark(quotaErr, ErrQuotaExceeded)
	}
	return nil
}

// markStorageFailure keeps domain and usecase sentinels as-is and wraps
// anything else (storage, transaction machinery) as an internal failure.
func markStorageFailure(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrReservationNotFound)
	}
	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return err
}
