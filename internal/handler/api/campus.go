package api

import (
	"net/http"

	reqdto "rehearsal-rooms/internal/handler/dto/request"
	resdto "rehearsal-rooms/internal/handler/dto/response"
	"rehearsal-rooms/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CampusHandler struct {
	campuses     queries.CampusQueries
	reservations queries.ReservationQueries
}

func NewCampusHandler(campuses queries.CampusQueries, reservations queries.ReservationQueries) *CampusHandler {
	return &CampusHandler{
		campuses:     campuses,
		reservations: reservations,
	}
}

// @Summary List campuses
// @Description List all campuses
// @Tags campuses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CampusResponse
// @Failure 401 {object} map[string]string
// @Router /campuses [get]
func (h *CampusHandler) ListCampuses(c *gin.Context) {
	views, err := h.campuses.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampusViews(views))
}

// @Summary List campus reservations
// @Description List a campus's active reservations on one date
// @Tags campuses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campus ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /campuses/{id}/reservations [get]
func (h *CampusHandler) ListCampusReservations(c *gin.Context) {
	campusID, ok := h.parseCampusID(c)
	if !ok {
		return
	}

	date, err := reqdto.ParseDateParam(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.reservations.ListByDate(c.Request.Context(), campusID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get week schedule
// @Description Get the current booking window and the campus's reservations inside it
// @Tags campuses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campus ID"
// @Success 200 {object} resdto.WeekScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /campuses/{id}/week [get]
func (h *CampusHandler) GetWeekSchedule(c *gin.Context) {
	campusID, ok := h.parseCampusID(c)
	if !ok {
		return
	}

	view, err := h.reservations.ListWeek(c.Request.Context(), campusID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekScheduleView(view))
}

// @Summary List key pickups
// @Description List a campus's active reservations with the key out, most recent first (admin only)
// @Tags campuses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campus ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /campuses/{id}/key-pickups [get]
func (h *CampusHandler) ListKeyPickups(c *gin.Context) {
	campusID, ok := h.parseCampusID(c)
	if !ok {
		return
	}

	views, err := h.reservations.ListKeyPickups(c.Request.Context(), campusID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *CampusHandler) parseCampusID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid campus ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
