package queries

import (
	"context"
	"time"

	"rehearsal-rooms/internal/domain/reservation"
	"rehearsal-rooms/internal/pkg/clock"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name"`
	CampusID      uuid.UUID  `json:"campus_id"`
	CampusName    string     `json:"campus_name"`
	Date          time.Time  `json:"date"`
	StartHour     int        `json:"start_hour"`
	EndHour       int        `json:"end_hour"`
	Status        string     `json:"status"`
	KeyPickedUp   bool       `json:"key_picked_up"`
	KeyPickupTime *time.Time `json:"key_pickup_time,omitempty"`
	KeyReturned   bool       `json:"key_returned"`
	KeyReturnTime *time.Time `json:"key_return_time,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type WeekScheduleView struct {
	WindowStart  time.Time          `json:"window_start"`
	WindowEnd    time.Time          `json:"window_end"`
	Reservations []*ReservationView `json:"reservations"`
}

type AdminReservationFilter struct {
	CampusID  *uuid.UUID
	StartDate *time.Time
	Page      int
	PageSize  int
}

type PagedReservations struct {
	Items    []*ReservationView `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	FindActiveByCampusDate(ctx context.Context, campusID uuid.UUID, date time.Time) ([]*ReservationView, error)
	FindActiveInRange(ctx context.Context, campusID uuid.UUID, from, to time.Time) ([]*ReservationView, error)
	FindKeyPickups(ctx context.Context, campusID uuid.UUID, limit int) ([]*ReservationView, error)
	FindPaginated(ctx context.Context, filter AdminReservationFilter) ([]*ReservationView, int64, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListByDate(ctx context.Context, campusID uuid.UUID, date time.Time) ([]*ReservationView, error)
	// ListWeek returns the current booking window and the campus's active
	// reservations inside it.
	ListWeek(ctx context.Context, campusID uuid.UUID) (*WeekScheduleView, error)
	ListKeyPickups(ctx context.Context, campusID uuid.UUID) ([]*ReservationView, error)
	ListAdmin(ctx context.Context, filter AdminReservationFilter) (*PagedReservations, error)
}

const (
	defaultPageSize    = 20
	maxPageSize        = 100
	keyPickupListLimit = 50
)

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clock}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.store.FindActiveByUser(ctx, userID)
}

func (q *reservationQueriesImpl) ListByDate(ctx context.Context, campusID uuid.UUID, date time.Time) ([]*ReservationView, error) {
	return q.store.FindActiveByCampusDate(ctx, campusID, date)
}

func (q *reservationQueriesImpl) ListWeek(ctx context.Context, campusID uuid.UUID) (*WeekScheduleView, error) {
	window := reservation.WindowAt(q.clock.Now())

	rows, err := q.store.FindActiveInRange(ctx, campusID, window.Start(), window.End())
	if err != nil {
		return nil, err
	}

	return &WeekScheduleView{
		WindowStart:  window.Start(),
		WindowEnd:    window.End(),
		Reservations: rows,
	}, nil
}

func (q *reservationQueriesImpl) ListKeyPickups(ctx context.Context, campusID uuid.UUID) ([]*ReservationView, error) {
	return q.store.FindKeyPickups(ctx, campusID, keyPickupListLimit)
}

func (q *reservationQueriesImpl) ListAdmin(ctx context.Context, filter AdminReservationFilter) (*PagedReservations, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	items, total, err := q.store.FindPaginated(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &PagedReservations{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
