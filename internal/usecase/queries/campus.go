package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CampusView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BlackoutRuleView struct {
	ID        uuid.UUID  `json:"id"`
	CampusID  uuid.UUID  `json:"campus_id"`
	Date      *time.Time `json:"date,omitempty"`
	DayOfWeek *int       `json:"day_of_week,omitempty"`
	StartHour int        `json:"start_hour"`
	EndHour   int        `json:"end_hour"`
	Reason    string     `json:"reason"`
	CreatedAt time.Time  `json:"created_at"`
}

type CampusReadStore interface {
	List(ctx context.Context) ([]*CampusView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CampusView, error)
}

type BlackoutReadStore interface {
	ListViews(ctx context.Context, campusID *uuid.UUID) ([]*BlackoutRuleView, error)
}

type CampusQueries interface {
	List(ctx context.Context) ([]*CampusView, error)
	ListBlackouts(ctx context.Context, campusID *uuid.UUID) ([]*BlackoutRuleView, error)
}

type campusQueriesImpl struct {
	campuses  CampusReadStore
	blackouts BlackoutReadStore
}

func NewCampusQueries(campuses CampusReadStore, blackouts BlackoutReadStore) CampusQueries {
	return &campusQueriesImpl{campuses: campuses, blackouts: blackouts}
}

func (q *campusQueriesImpl) List(ctx context.Context) ([]*CampusView, error) {
	return q.campuses.List(ctx)
}

func (q *campusQueriesImpl) ListBlackouts(ctx context.Context, campusID *uuid.UUID) ([]*BlackoutRuleView, error) {
	return q.blackouts.ListViews(ctx, campusID)
}
