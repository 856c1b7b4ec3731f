package repository

import (
	"context"
	"time"

	"rehearsal-rooms/internal/domain/blackout"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/infra/db"
	"rehearsal-rooms/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlackoutRepository struct{}

func NewBlackoutRepository() *BlackoutRepository {
	return &BlackoutRepository{}
}

const createBlackoutSQL = `
INSERT INTO unavailable_times (id, campus_id, date, day_of_week, start_hour, end_hour, reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
RETURNING id`

func (r *BlackoutRepository) Create(ctx context.Context, dbtx db.DBTX, rule blackout.Rule) (uuid.UUID, error) {
	var date *time.Time
	var weekday *int32
	switch rule.RuleKind() {
	case blackout.KindExactDate:
		d := rule.Date()
		date = &d
	case blackout.KindWeekly:
		w := int32(rule.Weekday())
		weekday = &w
	}

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createBlackoutSQL,
		rule.ID(),
		rule.CampusID(),
		pgconv.DatePtrToPgtype(date),
		pgconv.Int32PtrToPgtype(weekday),
		rule.StartHour(),
		rule.EndHour(),
		rule.RawReason(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create blackout rule", err)
	}
	return id, nil
}

const deleteBlackoutSQL = `DELETE FROM unavailable_times WHERE id = $1`

func (r *BlackoutRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteBlackoutSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete blackout rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("blackout rule not found", nil, infra.KindNotFound)
	}
	return nil
}
