package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "rehearsal-rooms/internal/handler/dto/request"
	resdto "rehearsal-rooms/internal/handler/dto/response"
	"rehearsal-rooms/internal/usecase/commands"
	"rehearsal-rooms/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	blackouts    commands.BlackoutCommands
	campuses     queries.CampusQueries
	reservations queries.ReservationQueries
}

func NewAdminHandler(blackouts commands.BlackoutCommands, campuses queries.CampusQueries, reservations queries.ReservationQueries) *AdminHandler {
	return &AdminHandler{
		blackouts:    blackouts,
		campuses:     campuses,
		reservations: reservations,
	}
}

// @Summary Create blackout rule
// @Description Close a campus for a date, weekday or every day (admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBlackoutRequest true "Blackout rule"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/blackouts [post]
func (h *AdminHandler) CreateBlackout(c *gin.Context) {
	var req reqdto.CreateBlackoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	id, err := h.blackouts.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCampusNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Campus not found",
			})
		case errors.Is(err, commands.ErrInvalidBlackoutRule):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid blackout rule",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Delete blackout rule
// @Description Remove a closure rule (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blackout rule ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/blackouts/{id} [delete]
func (h *AdminHandler) DeleteBlackout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid blackout rule ID format",
		})
		return
	}

	if err := h.blackouts.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBlackoutRuleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Blackout rule not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List blackout rules
// @Description List closure rules, optionally for one campus (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param campus_id query string false "Campus ID"
// @Success 200 {array} resdto.BlackoutRuleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/blackouts [get]
func (h *AdminHandler) ListBlackouts(c *gin.Context) {
	var campusID *uuid.UUID
	if raw := c.Query("campus_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid campus ID format",
			})
			return
		}
		campusID = &id
	}

	views, err := h.campuses.ListBlackouts(c.Request.Context(), campusID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBlackoutRuleViews(views))
}

// @Summary List reservations
// @Description Page through reservations across campuses (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param campus_id query string false "Campus ID"
// @Param start_date query string false "Earliest date (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} resdto.PagedReservationsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/reservations [get]
func (h *AdminHandler) ListReservations(c *gin.Context) {
	var filter queries.AdminReservationFilter

	if raw := c.Query("campus_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid campus ID format",
			})
			return
		}
		filter.CampusID = &id
	}

	if raw := c.Query("start_date"); raw != "" {
		date, err := reqdto.ParseDateParam(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		filter.StartDate = &date
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "0"))

	page, err := h.reservations.ListAdmin(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPagedReservations(page))
}
