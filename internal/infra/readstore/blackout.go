package readstore

import (
	"context"
	"time"

	"rehearsal-rooms/internal/domain/blackout"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/pkg/pgconv"
	"rehearsal-rooms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BlackoutReadStore struct {
	pool *pgxpool.Pool
}

func NewBlackoutReadStore(pool *pgxpool.Pool) *BlackoutReadStore {
	return &BlackoutReadStore{pool: pool}
}

const blackoutColumns = `id, campus_id, date, day_of_week, start_hour, end_hour, reason, created_at`

// RulesForCampus loads every closure rule for one campus as domain rules,
// ready for Blocks checks on the write side.
func (s *BlackoutReadStore) RulesForCampus(ctx context.Context, campusID uuid.UUID) ([]blackout.Rule, error) {
	sql := `SELECT id, campus_id, date, day_of_week, start_hour, end_hour, reason
FROM unavailable_times
WHERE campus_id = $1
ORDER BY created_at`

	rows, err := s.pool.Query(ctx, sql, campusID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load blackout rules", err)
	}
	defer rows.Close()

	rules := make([]blackout.Rule, 0)
	for rows.Next() {
		var (
			id, campus pgtype.UUID
			date       pgtype.Date
			dayOfWeek  pgtype.Int4
			start, end int
			reason     pgtype.Text
		)
		if err := rows.Scan(&id, &campus, &date, &dayOfWeek, &start, &end, &reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blackout rule", err)
		}

		var weekday *time.Weekday
		if d := pgconv.Int32PtrFromPgtype(dayOfWeek); d != nil {
			w := time.Weekday(*d)
			weekday = &w
		}
		var reasonStr string
		if r := pgconv.StringPtrFromPgtype(reason); r != nil {
			reasonStr = *r
		}

		rules = append(rules, blackout.ReconstructRule(
			pgconv.UUIDFromPgtype(id),
			pgconv.UUIDFromPgtype(campus),
			pgconv.DatePtrFromPgtype(date),
			weekday,
			start, end,
			reasonStr,
		))
	}
	return rules, rows.Err()
}

// ListViews returns rule rows for the admin screens. A nil campusID lists
// every campus.
func (s *BlackoutReadStore) ListViews(ctx context.Context, campusID *uuid.UUID) ([]*queries.BlackoutRuleView, error) {
	sql := `SELECT ` + blackoutColumns + `
FROM unavailable_times
WHERE ($1::uuid IS NULL OR campus_id = $1)
ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, sql, pgconv.UUIDPtrToPgtype(campusID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blackout rules", err)
	}
	defer rows.Close()

	views := make([]*queries.BlackoutRuleView, 0)
	for rows.Next() {
		var (
			view      queries.BlackoutRuleView
			date      pgtype.Date
			dayOfWeek pgtype.Int4
			reason    pgtype.Text
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.CampusID, &date, &dayOfWeek, &view.StartHour, &view.EndHour, &reason, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blackout rule", err)
		}

		view.Date = pgconv.DatePtrFromPgtype(date)
		if d := pgconv.Int32PtrFromPgtype(dayOfWeek); d != nil {
			day := int(*d)
			view.DayOfWeek = &day
		}
		if r := pgconv.StringPtrFromPgtype(reason); r != nil {
			view.Reason = *r
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

		views = append(views, &view)
	}
	return views, rows.Err()
}
