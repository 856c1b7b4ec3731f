package commands

import (
	"context"
	"time"

	"rehearsal-rooms/internal/domain/blackout"
	"rehearsal-rooms/internal/domain/reservation"
	"rehearsal-rooms/internal/domain/user"
	"rehearsal-rooms/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types.
type UserSnapshot struct {
	ID       uuid.UUID
	Name     string
	Role     user.Role
	IsActive bool
}

type CampusSnapshot struct {
	ID   uuid.UUID
	Name string
}

type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type CampusReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CampusSnapshot, error)
}

type BlackoutRulesReader interface {
	RulesForCampus(ctx context.Context, campusID uuid.UUID) ([]blackout.Rule, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateLifecycle(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error
	LockUserQuota(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
	LockSchedule(ctx context.Context, dbtx db.DBTX, campusID uuid.UUID, date time.Time) error
	HasOverlap(ctx context.Context, dbtx db.DBTX, campusID uuid.UUID, date time.Time, hours reservation.HourRange, excludeID *uuid.UUID) (bool, error)
	SumActiveHours(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, window reservation.Window) (int, error)
}

type BlackoutRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rule blackout.Rule) (uuid.UUID, error)
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}
