//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rehearsal-rooms/internal/domain/blackout"
	"rehearsal-rooms/internal/domain/reservation"
	"rehearsal-rooms/internal/domain/user"
	"rehearsal-rooms/internal/infra/db"
	"rehearsal-rooms/internal/pkg/clock"
	"rehearsal-rooms/internal/usecase/commands"
	"rehearsal-rooms/internal/usecase/queries"
	"rehearsal-rooms/internal/usecase/shared"
	commandsmock "rehearsal-rooms/tests/mock/commands"
	queriesmock "rehearsal-rooms/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubTxRunner executes the function directly without a real transaction.
type stubTxRunner struct{}

func (stubTxRunner) Within(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
	return fn(ctx, nil)
}

var _ shared.TxRunner = stubTxRunner{}

// Wednesday 2026-08-26; booking window 2026-08-23 .. 2026-08-30.
var testNow = time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	repo      *commandsmock.MockReservationRepository
	users     *commandsmock.MockUserReader
	campuses  *commandsmock.MockCampusReader
	blackouts *commandsmock.MockBlackoutRulesReader
	views     *queriesmock.MockReservationReadStore
	clock     *clock.MockClock
	commands  commands.ReservationCommands

	userID   uuid.UUID
	campusID uuid.UUID
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = commandsmock.NewMockReservationRepository(s.ctrl)
	s.users = commandsmock.NewMockUserReader(s.ctrl)
	s.campuses = commandsmock.NewMockCampusReader(s.ctrl)
	s.blackouts = commandsmock.NewMockBlackoutRulesReader(s.ctrl)
	s.views = queriesmock.NewMockReservationReadStore(s.ctrl)
	s.clock = clock.NewMockClock(testNow)
	s.commands = commands.NewReservationCommands(
		s.repo, s.users, s.campuses, s.blackouts, s.views, stubTxRunner{}, s.clock,
	)

	s.userID = uuid.New()
	s.campusID = uuid.New()
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) activeUser() *commands.UserSnapshot {
	return &commands.UserSnapshot{ID: s.userID, Name: "alice", Role: user.RoleMember, IsActive: true}
}

func (s *ReservationCommandsTestSuite) campus() *commands.CampusSnapshot {
	return &commands.CampusSnapshot{ID: s.campusID, Name: "North"}
}

func (s *ReservationCommandsTestSuite) input(dayOffset, start, end int) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CampusID:  s.campusID,
		Date:      testNow.AddDate(0, 0, dayOffset),
		StartHour: start,
		EndHour:   end,
	}
}

func (s *ReservationCommandsTestSuite) expectAdmissionReads(rules []blackout.Rule) {
	s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(s.activeUser(), nil)
	s.campuses.EXPECT().FindByID(gomock.Any(), s.campusID).Return(s.campus(), nil)
	s.blackouts.EXPECT().RulesForCampus(gomock.Any(), s.campusID).Return(rules, nil)
}

func (s *ReservationCommandsTestSuite) expectLocks() {
	s.repo.EXPECT().LockUserQuota(gomock.Any(), gomock.Any(), s.userID).Return(nil)
	s.repo.EXPECT().LockSchedule(gomock.Any(), gomock.Any(), s.campusID, gomock.Any()).Return(nil)
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("success", func() {
		s.SetupTest()
		s.expectAdmissionReads(nil)
		s.expectLocks()
		s.repo.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), s.campusID, gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		s.repo.EXPECT().SumActiveHours(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).Return(0, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
				s.Equal(s.userID, res.UserID())
				s.Equal(9, res.Hours().Start())
				s.Equal(11, res.Hours().End())
				return res.ID(), nil
			})
		s.views.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&queries.ReservationView{UserID: s.userID}, nil)

		view, err := s.commands.Create(context.Background(), s.userID, s.input(1, 9, 11))
		s.NoError(err)
		s.Equal(s.userID, view.UserID)
	})

	s.Run("disabled account is rejected before anything else", func() {
		s.SetupTest()
		disabled := s.activeUser()
		disabled.IsActive = false
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(disabled, nil)

		_, err := s.commands.Create(context.Background(), s.userID, s.input(1, 9, 11))
		s.ErrorIs(err, commands.ErrAccountDisabled)
	})

	s.Run("slot straddling the lunch break is invalid", func() {
		s.SetupTest()
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(s.activeUser(), nil)
		s.campuses.EXPECT().FindByID(gomock.Any(), s.campusID).Return(s.campus(), nil)

		_, err := s.commands.Create(context.Background(), s.userID, s.input(1, 11, 14))
		s.ErrorIs(err, commands.ErrInvalidTimeSlot)
	})

	s.Run("past date is rejected", func() {
		s.SetupTest()
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(s.activeUser(), nil)
		s.campuses.EXPECT().FindByID(gomock.Any(), s.campusID).Return(s.campus(), nil)

		_, err := s.commands.Create(context.Background(), s.userID, s.input(-1, 9, 11))
		s.ErrorIs(err, commands.ErrPastDate)
	})

	s.Run("date beyond the window is rejected", func() {
		s.SetupTest()
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(s.activeUser(), nil)
		s.campuses.EXPECT().FindByID(gomock.Any(), s.campusID).Return(s.campus(), nil)

		_, err := s.commands.Create(context.Background(), s.userID, s.input(10, 9, 11))
		s.ErrorIs(err, commands.ErrOutsideBookingWindow)
	})

	s.Run("blackout rule blocks with its reason", func() {
		s.SetupTest()
		rule, err := blackout.NewWeeklyRule(s.campusID, time.Thursday, 8, 12, "orchestra practice")
		s.Require().NoError(err)
		s.expectAdmissionReads([]blackout.Rule{rule})

		// Thursday 2026-08-27
		_, err = s.commands.Create(context.Background(), s.userID, s.input(1, 9, 11))
		s.ErrorIs(err, commands.ErrSlotUnavailable)

		var unavailable *commands.SlotUnavailableError
		s.ErrorAs(err, &unavailable)
		s.Equal("orchestra practice", unavailable.Reason)
	})

	s.Run("conflicting reservation aborts the transaction", func() {
		s.SetupTest()
		s.expectAdmissionReads(nil)
		s.expectLocks()
		s.repo.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), s.campusID, gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)

		_, err := s.commands.Create(context.Background(), s.userID, s.input(1, 9, 11))
		s.ErrorIs(err, commands.ErrReservationConflict)
	})

	s.Run("4 used plus 3 requested exceeds the 6 hour quota", func() {
		s.SetupTest()
		s.expectAdmissionReads(nil)
		s.expectLocks()
		s.repo.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), s.campusID, gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		s.repo.EXPECT().SumActiveHours(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).Return(4, nil)

		_, err := s.commands.Create(context.Background(), s.userID, s.input(1, 13, 16))
		s.ErrorIs(err, commands.ErrQuotaExceeded)

		var quotaErr *commands.QuotaExceededError
		s.ErrorAs(err, &quotaErr)
		s.Equal(4, quotaErr.UsedHours)
		s.Equal(3, quotaErr.RequestedHours)
		s.Equal(commands.WeeklyQuotaHours, quotaErr.LimitHours)
	})

	s.Run("4 used plus 2 requested fills the quota exactly", func() {
		s.SetupTest()
		s.expectAdmissionReads(nil)
		s.expectLocks()
		s.repo.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), s.campusID, gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		s.repo.EXPECT().SumActiveHours(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).Return(4, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.views.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&queries.ReservationView{}, nil)

		_, err := s.commands.Create(context.Background(), s.userID, s.input(1, 13, 15))
		s.NoError(err)
	})

	s.Run("today stays bookable on a UTC-negative server", func() {
		s.SetupTest()
		// Request dates parse as UTC midnight; the server clock runs at -05:00.
		s.clock.Set(time.Date(2026, 8, 26, 10, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)))
		today, err := time.Parse("2006-01-02", "2026-08-26")
		s.Require().NoError(err)

		s.expectAdmissionReads(nil)
		s.expectLocks()
		s.repo.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), s.campusID, gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		s.repo.EXPECT().SumActiveHours(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).Return(0, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.views.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&queries.ReservationView{}, nil)

		input := commands.CreateReservationInput{CampusID: s.campusID, Date: today, StartHour: 9, EndHour: 11}
		_, err = s.commands.Create(context.Background(), s.userID, input)
		s.NoError(err)
	})

	s.Run("window-end Sunday stays bookable on a UTC-positive server", func() {
		s.SetupTest()
		s.clock.Set(time.Date(2026, 8, 26, 15, 0, 0, 0, time.FixedZone("UTC+8", 8*3600)))
		sunday, err := time.Parse("2006-01-02", "2026-08-30")
		s.Require().NoError(err)

		s.expectAdmissionReads(nil)
		s.expectLocks()
		s.repo.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), s.campusID, gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		s.repo.EXPECT().SumActiveHours(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).Return(0, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.views.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&queries.ReservationView{}, nil)

		input := commands.CreateReservationInput{CampusID: s.campusID, Date: sunday, StartHour: 9, EndHour: 11}
		_, err = s.commands.Create(context.Background(), s.userID, input)
		s.NoError(err)
	})
}

func (s *ReservationCommandsTestSuite) existingReservation(owner uuid.UUID) *reservation.Reservation {
	hours := reservation.ReconstructHourRange(9, 11)
	return reservation.Reconstruct(
		uuid.New(), owner, s.campusID,
		testNow.AddDate(0, 0, 1),
		hours, reservation.StatusActive,
		false, nil, false, nil,
		testNow, testNow,
	)
}

func (s *ReservationCommandsTestSuite) TestCancel() {
	s.Run("owner cancels own reservation", func() {
		s.SetupTest()
		res := s.existingReservation(s.userID)
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(s.activeUser(), nil)
		s.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)
		s.repo.EXPECT().UpdateLifecycle(gomock.Any(), gomock.Any(), res).Return(nil)

		s.NoError(s.commands.Cancel(context.Background(), res.ID(), s.userID))
		s.Equal(reservation.StatusCancelled, res.Status())
	})

	s.Run("stranger cannot cancel", func() {
		s.SetupTest()
		res := s.existingReservation(uuid.New())
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(s.activeUser(), nil)
		s.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)

		err := s.commands.Cancel(context.Background(), res.ID(), s.userID)
		s.ErrorIs(err, commands.ErrUnauthorized)
		s.Equal(reservation.StatusActive, res.Status())
	})

	s.Run("admin cancels anyone's reservation", func() {
		s.SetupTest()
		res := s.existingReservation(uuid.New())
		admin := &commands.UserSnapshot{ID: s.userID, Name: "root", Role: user.RoleAdmin, IsActive: true}
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(admin, nil)
		s.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)
		s.repo.EXPECT().UpdateLifecycle(gomock.Any(), gomock.Any(), res).Return(nil)

		s.NoError(s.commands.Cancel(context.Background(), res.ID(), s.userID))
	})

	s.Run("cancelling twice reports the state", func() {
		s.SetupTest()
		res := s.existingReservation(s.userID)
		s.Require().NoError(res.Cancel())
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(s.activeUser(), nil)
		s.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)

		err := s.commands.Cancel(context.Background(), res.ID(), s.userID)
		s.ErrorIs(err, reservation.ErrAlreadyCancelled)
	})
}

func (s *ReservationCommandsTestSuite) TestKeyLifecycle() {
	s.Run("owner picks up the key at the mocked time", func() {
		s.SetupTest()
		res := s.existingReservation(s.userID)
		s.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)
		s.repo.EXPECT().UpdateLifecycle(gomock.Any(), gomock.Any(), res).Return(nil)

		s.NoError(s.commands.PickUpKey(context.Background(), res.ID(), s.userID))
		s.True(res.KeyPickedUp())
		s.Require().NotNil(res.KeyPickupTime())
		s.Equal(testNow, *res.KeyPickupTime())
	})

	s.Run("only the owner may pick up", func() {
		s.SetupTest()
		res := s.existingReservation(uuid.New())
		s.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)

		err := s.commands.PickUpKey(context.Background(), res.ID(), s.userID)
		s.ErrorIs(err, commands.ErrUnauthorized)
	})

	s.Run("return before pickup fails", func() {
		s.SetupTest()
		res := s.existingReservation(s.userID)
		s.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)

		err := s.commands.ReturnKey(context.Background(), res.ID(), s.userID)
		s.ErrorIs(err, reservation.ErrKeyNotPickedUp)
	})

	s.Run("pickup then return stamps both times", func() {
		s.SetupTest()
		res := s.existingReservation(s.userID)
		s.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil).Times(2)
		s.repo.EXPECT().UpdateLifecycle(gomock.Any(), gomock.Any(), res).Return(nil).Times(2)

		s.NoError(s.commands.PickUpKey(context.Background(), res.ID(), s.userID))
		s.clock.Add(4 * time.Hour)
		s.NoError(s.commands.ReturnKey(context.Background(), res.ID(), s.userID))

		s.Require().NotNil(res.KeyReturnTime())
		s.Equal(testNow.Add(4*time.Hour), *res.KeyReturnTime())
	})
}
