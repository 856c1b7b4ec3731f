//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rehearsal-rooms/internal/domain/user"
	"rehearsal-rooms/internal/handler/api"
	"rehearsal-rooms/internal/handler/middleware"
	"rehearsal-rooms/internal/usecase/queries"
	queriesmock "rehearsal-rooms/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CampusHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCampuses     *queriesmock.MockCampusQueries
	mockReservations *queriesmock.MockReservationQueries
	userID           uuid.UUID
	role             user.Role
}

func (s *CampusHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCampuses = queriesmock.NewMockCampusQueries(s.mockCtrl)
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	handler := api.NewCampusHandler(s.mockCampuses, s.mockReservations)
	s.userID = uuid.New()
	s.role = user.RoleMember

	// Stand-in for RequireAuth: inject the suite's current identity
	auth := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
		c.Next()
	}
	adminGate := middleware.NewAuthMiddleware(nil).RequireAdmin()

	s.router.GET("/campuses", auth, handler.ListCampuses)
	s.router.GET("/campuses/:id/reservations", auth, handler.ListCampusReservations)
	s.router.GET("/campuses/:id/week", auth, handler.GetWeekSchedule)
	s.router.GET("/campuses/:id/key-pickups", auth, adminGate, handler.ListKeyPickups)
}

func (s *CampusHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCampusHandlerSuite(t *testing.T) {
	suite.Run(t, new(CampusHandlerTestSuite))
}

func (s *CampusHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *CampusHandlerTestSuite) TestListCampuses() {
	views := []*queries.CampusView{{ID: uuid.New(), Name: "North"}}
	s.mockCampuses.EXPECT().List(gomock.Any()).Return(views, nil)

	rec := s.get("/campuses")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "North")
}

func (s *CampusHandlerTestSuite) TestListCampusReservations() {
	campusID := uuid.New()

	s.Run("missing date returns 400", func() {
		rec := s.get("/campuses/" + campusID.String() + "/reservations")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("valid date returns the list", func() {
		s.mockReservations.EXPECT().ListByDate(gomock.Any(), campusID, gomock.Any()).
			Return([]*queries.ReservationView{}, nil)
		rec := s.get("/campuses/" + campusID.String() + "/reservations?date=2026-08-27")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("malformed campus id returns 400", func() {
		rec := s.get("/campuses/nope/reservations?date=2026-08-27")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CampusHandlerTestSuite) TestListKeyPickups() {
	campusID := uuid.New()

	s.Run("member is rejected with 403", func() {
		s.role = user.RoleMember
		rec := s.get("/campuses/" + campusID.String() + "/key-pickups")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("admin gets the list", func() {
		s.role = user.RoleAdmin
		views := []*queries.ReservationView{{ID: uuid.New(), CampusID: campusID, Status: "active", KeyPickedUp: true}}
		s.mockReservations.EXPECT().ListKeyPickups(gomock.Any(), campusID).Return(views, nil)

		rec := s.get("/campuses/" + campusID.String() + "/key-pickups")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), views[0].ID.String())
	})
}
