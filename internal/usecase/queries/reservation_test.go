//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rehearsal-rooms/internal/pkg/clock"
	"rehearsal-rooms/internal/usecase/queries"
	queriesmock "rehearsal-rooms/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *queriesmock.MockReservationReadStore
	clock   *clock.MockClock
	queries queries.ReservationQueries
	ctx     context.Context
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockReservationReadStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC))
	s.queries = queries.NewReservationQueries(s.store, s.clock)
	s.ctx = context.Background()
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) TestListWeek() {
	campusID := uuid.New()
	rows := []*queries.ReservationView{
		{ID: uuid.New(), CampusID: campusID, StartHour: 8, EndHour: 12, Status: "active"},
	}

	// Wednesday 2026-08-26 sits in the window [Sun 2026-08-23, Sun 2026-08-30].
	wantStart := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	s.store.EXPECT().FindActiveInRange(s.ctx, campusID, wantStart, wantEnd).Return(rows, nil)

	got, err := s.queries.ListWeek(s.ctx, campusID)
	s.Require().NoError(err)

	want := &queries.WeekScheduleView{
		WindowStart:  wantStart,
		WindowEnd:    wantEnd,
		Reservations: rows,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("week schedule mismatch (-want +got):\n%s", diff)
	}
}

func (s *ReservationQueriesTestSuite) TestListWeekAfterSundayRollover() {
	campusID := uuid.New()
	s.clock.Set(time.Date(2026, 8, 30, 22, 30, 0, 0, time.UTC)) // Sunday past 22:00

	wantStart := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	s.store.EXPECT().FindActiveInRange(s.ctx, campusID, wantStart, wantEnd).Return(nil, nil)

	got, err := s.queries.ListWeek(s.ctx, campusID)
	s.Require().NoError(err)
	s.Equal(wantStart, got.WindowStart)
	s.Equal(wantEnd, got.WindowEnd)
	s.Empty(got.Reservations)
}

func (s *ReservationQueriesTestSuite) TestListKeyPickupsAppliesLimit() {
	campusID := uuid.New()
	s.store.EXPECT().FindKeyPickups(s.ctx, campusID, 50).Return(nil, nil)

	_, err := s.queries.ListKeyPickups(s.ctx, campusID)
	s.NoError(err)
}

func (s *ReservationQueriesTestSuite) TestListAdminPaging() {
	cases := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults applied", 0, 0, 1, 20},
		{"oversized page size clamped", 3, 500, 3, 100},
		{"explicit values kept", 2, 40, 2, 40},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.store.EXPECT().
				FindPaginated(s.ctx, queries.AdminReservationFilter{Page: tc.wantPage, PageSize: tc.wantPageSize}).
				Return([]*queries.ReservationView{}, int64(0), nil)

			got, err := s.queries.ListAdmin(s.ctx, queries.AdminReservationFilter{Page: tc.page, PageSize: tc.pageSize})
			s.Require().NoError(err)
			s.Equal(tc.wantPage, got.Page)
			s.Equal(tc.wantPageSize, got.PageSize)
		})
	}
}
