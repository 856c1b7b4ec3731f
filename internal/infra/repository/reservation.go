package repository

import (
	"context"
	"time"

	"rehearsal-rooms/internal/domain/reservation"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/infra/db"
	"rehearsal-rooms/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const createReservationSQL = `
INSERT INTO reservations (
	id, user_id, campus_id, date, start_hour, end_hour, status,
	key_picked_up, key_pickup_time, key_returned, key_return_time,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
RETURNING id`

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createReservationSQL,
		res.ID(),
		res.UserID(),
		res.CampusID(),
		pgconv.DateToPgtype(res.Date()),
		res.Hours().Start(),
		res.Hours().End(),
		res.Status().String(),
		res.KeyPickedUp(),
		pgconv.TimePtrToPgtype(res.KeyPickupTime()),
		res.KeyReturned(),
		pgconv.TimePtrToPgtype(res.KeyReturnTime()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

// LockSchedule serializes all writers for one (campus, date) partition. The
// advisory lock is transaction-scoped, so it is released on commit, rollback
// and connection loss alike. Row locks alone cannot exclude phantom inserts
// between a conflict check and its insert.
const lockScheduleSQL = `SELECT pg_advisory_xact_lock(hashtext('schedule'), hashtext($1))`

func (r *ReservationRepository) LockSchedule(ctx context.Context, dbtx db.DBTX, campusID uuid.UUID, date time.Time) error {
	key := campusID.String() + ":" + date.Format("2006-01-02")
	if _, err := dbtx.Exec(ctx, lockScheduleSQL, key); err != nil {
		return infra.WrapRepoErr("failed to lock schedule partition", err)
	}
	return nil
}

// LockUserQuota serializes a user's quota accounting across partitions.
// Callers must always take this lock before LockSchedule to keep the
// acquisition order global and deadlock-free.
const lockUserQuotaSQL = `SELECT pg_advisory_xact_lock(hashtext('quota'), hashtext($1))`

func (r *ReservationRepository) LockUserQuota(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, lockUserQuotaSQL, userID.String()); err != nil {
		return infra.WrapRepoErr("failed to lock user quota", err)
	}
	return nil
}

const hasOverlapSQL = `
SELECT EXISTS (
	SELECT 1 FROM reservations
	WHERE campus_id = $1
	  AND date = $2
	  AND status = 'active'
	  AND start_hour < $4
	  AND end_hour > $3
	  AND ($5::uuid IS NULL OR id <> $5)
)`

// HasOverlap reports whether any active reservation for (campus, date)
// overlaps the requested range, optionally ignoring one reservation id.
// Only meaningful under LockSchedule.
func (r *ReservationRepository) HasOverlap(ctx context.Context, dbtx db.DBTX, campusID uuid.UUID, date time.Time, hours reservation.HourRange, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, hasOverlapSQL,
		campusID,
		pgconv.DateToPgtype(date),
		hours.Start(),
		hours.End(),
		pgconv.UUIDPtrToPgtype(excludeID),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

const sumActiveHoursSQL = `
SELECT COALESCE(SUM(end_hour - start_hour), 0)
FROM reservations
WHERE user_id = $1
  AND status = 'active'
  AND date BETWEEN $2 AND $3`

func (r *ReservationRepository) SumActiveHours(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, window reservation.Window) (int, error) {
	var total int
	err := dbtx.QueryRow(ctx, sumActiveHoursSQL,
		userID,
		pgconv.DateToPgtype(window.Start()),
		pgconv.DateToPgtype(window.End()),
	).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum active hours", err)
	}
	return total, nil
}

const findForUpdateSQL = `
SELECT id, user_id, campus_id, date, start_hour, end_hour, status,
       key_picked_up, key_pickup_time, key_returned, key_return_time,
       created_at, updated_at
FROM reservations
WHERE id = $1
FOR UPDATE`

// FindForUpdate loads a reservation under a row lock so lifecycle
// transitions serialize per reservation.
func (r *ReservationRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		resID, userID, campusID uuid.UUID
		date                    pgtype.Date
		startHour, endHour      int
		status                  string
		keyPickedUp             bool
		keyPickupTime           pgtype.Timestamptz
		keyReturned             bool
		keyReturnTime           pgtype.Timestamptz
		createdAt, updatedAt    pgtype.Timestamptz
	)

	err := dbtx.QueryRow(ctx, findForUpdateSQL, id).Scan(
		&resID, &userID, &campusID, &date, &startHour, &endHour, &status,
		&keyPickedUp, &keyPickupTime, &keyReturned, &keyReturnTime,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation for update", err)
	}

	return reservation.Reconstruct(
		resID, userID, campusID,
		pgconv.DateFromPgtype(date),
		reservation.ReconstructHourRange(startHour, endHour),
		reservation.Status(status),
		keyPickedUp,
		pgconv.TimePtrFromPgtype(keyPickupTime),
		keyReturned,
		pgconv.TimePtrFromPgtype(keyReturnTime),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const updateLifecycleSQL = `
UPDATE reservations
SET status = $2,
    key_picked_up = $3,
    key_pickup_time = $4,
    key_returned = $5,
    key_return_time = $6,
    updated_at = now()
WHERE id = $1`

// UpdateLifecycle persists the entity's status and key flags after a state
// machine transition.
func (r *ReservationRepository) UpdateLifecycle(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error {
	tag, err := dbtx.Exec(ctx, updateLifecycleSQL,
		res.ID(),
		res.Status().String(),
		res.KeyPickedUp(),
		pgconv.TimePtrToPgtype(res.KeyPickupTime()),
		res.KeyReturned(),
		pgconv.TimePtrToPgtype(res.KeyReturnTime()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation lifecycle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
