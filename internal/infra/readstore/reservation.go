package readstore

import (
	"context"
	"time"

	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/pkg/pgconv"
	"rehearsal-rooms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

const reservationViewColumns = `
	r.id, r.user_id, u.name, r.campus_id, c.name,
	r.date, r.start_hour, r.end_hour, r.status,
	r.key_picked_up, r.key_pickup_time, r.key_returned, r.key_return_time,
	r.created_at`

const reservationViewFrom = `
FROM reservations r
JOIN users u ON u.id = r.user_id
JOIN campuses c ON c.id = r.campus_id`

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		view       queries.ReservationView
		date       pgtype.Date
		pickupTime pgtype.Timestamptz
		returnTime pgtype.Timestamptz
		createdAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.UserID, &view.UserName, &view.CampusID, &view.CampusName,
		&date, &view.StartHour, &view.EndHour, &view.Status,
		&view.KeyPickedUp, &pickupTime, &view.KeyReturned, &returnTime,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	view.Date = pgconv.DateFromPgtype(date)
	view.KeyPickupTime = pgconv.TimePtrFromPgtype(pickupTime)
	view.KeyReturnTime = pgconv.TimePtrFromPgtype(returnTime)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	sql := `SELECT` + reservationViewColumns + reservationViewFrom + `
WHERE r.id = $1`

	view, err := scanReservationView(s.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	sql := `SELECT` + reservationViewColumns + reservationViewFrom + `
WHERE r.user_id = $1 AND r.status = 'active'
ORDER BY r.date, r.start_hour`

	rows, err := s.pool.Query(ctx, sql, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations", err)
	}
	views, err := collectReservationViews(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations", err)
	}
	return views, nil
}

func (s *ReservationReadStore) FindActiveByCampusDate(ctx context.Context, campusID uuid.UUID, date time.Time) ([]*queries.ReservationView, error) {
	sql := `SELECT` + reservationViewColumns + reservationViewFrom + `
WHERE r.campus_id = $1 AND r.date = $2 AND r.status = 'active'
ORDER BY r.start_hour`

	rows, err := s.pool.Query(ctx, sql, campusID, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campus reservations", err)
	}
	views, err := collectReservationViews(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campus reservations", err)
	}
	return views, nil
}

func (s *ReservationReadStore) FindActiveInRange(ctx context.Context, campusID uuid.UUID, from, to time.Time) ([]*queries.ReservationView, error) {
	sql := `SELECT` + reservationViewColumns + reservationViewFrom + `
WHERE r.campus_id = $1 AND r.date BETWEEN $2 AND $3 AND r.status = 'active'
ORDER BY r.date, r.start_hour`

	rows, err := s.pool.Query(ctx, sql, campusID, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list week reservations", err)
	}
	views, err := collectReservationViews(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list week reservations", err)
	}
	return views, nil
}

func (s *ReservationReadStore) FindKeyPickups(ctx context.Context, campusID uuid.UUID, limit int) ([]*queries.ReservationView, error) {
	sql := `SELECT` + reservationViewColumns + reservationViewFrom + `
WHERE r.campus_id = $1 AND r.key_picked_up AND r.status = 'active'
ORDER BY r.key_pickup_time DESC
LIMIT $2`

	rows, err := s.pool.Query(ctx, sql, campusID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list key pickups", err)
	}
	views, err := collectReservationViews(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list key pickups", err)
	}
	return views, nil
}

// FindPaginated filters optionally by campus and by earliest date. The
// total count shares the filter so page math stays consistent.
func (s *ReservationReadStore) FindPaginated(ctx context.Context, filter queries.AdminReservationFilter) ([]*queries.ReservationView, int64, error) {
	where := ` WHERE ($1::uuid IS NULL OR r.campus_id = $1)
  AND ($2::date IS NULL OR r.date >= $2)`

	campusArg := pgconv.UUIDPtrToPgtype(filter.CampusID)
	dateArg := pgconv.DatePtrToPgtype(filter.StartDate)

	var total int64
	countSQL := `SELECT count(*)` + reservationViewFrom + where
	if err := s.pool.QueryRow(ctx, countSQL, campusArg, dateArg).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reservations", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	listSQL := `SELECT` + reservationViewColumns + reservationViewFrom + where + `
ORDER BY r.date DESC, r.start_hour, r.created_at
LIMIT $3 OFFSET $4`

	rows, err := s.pool.Query(ctx, listSQL, campusArg, dateArg, filter.PageSize, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reservations", err)
	}
	views, err := collectReservationViews(rows)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reservations", err)
	}
	return views, total, nil
}
