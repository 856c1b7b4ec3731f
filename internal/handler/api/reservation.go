package api

import (
	"context"
	"errors"
	"net/http"

	"rehearsal-rooms/internal/domain/reservation"
	reqdto "rehearsal-rooms/internal/handler/dto/request"
	resdto "rehearsal-rooms/internal/handler/dto/response"
	"rehearsal-rooms/internal/handler/middleware"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/usecase/commands"
	"rehearsal-rooms/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create reservation
// @Description Reserve a rehearsal room slot for the current user
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
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

	view, err := h.commands.Create(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCampusNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Campus not found",
			})
		case errors.Is(err, commands.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Time slot must fall inside one opening block",
			})
		case errors.Is(err, commands.ErrPastDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot reserve past dates",
			})
		case errors.Is(err, commands.ErrOutsideBookingWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date is outside the current booking window",
			})
		case errors.Is(err, commands.ErrSlotUnavailable):
			var unavailable *commands.SlotUnavailableError
			msg := "Time slot unavailable"
			if errors.As(err, &unavailable) {
				msg = "Time slot unavailable: " + unavailable.Reason
			}
			c.JSON(http.StatusBadRequest, gin.H{
				"error": msg,
			})
		case errors.Is(err, commands.ErrQuotaExceeded):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Weekly reservation limit reached",
			})
		case errors.Is(err, commands.ErrReservationConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot already reserved",
			})
		case errors.Is(err, commands.ErrAccountDisabled):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is disabled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondNotFoundOr500(c, err, "Reservation not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List my reservations
// @Description List the current user's active reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.queries.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Cancel reservation
// @Description Cancel an active reservation (owner or admin)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	h.runLifecycle(c, h.commands.Cancel)
}

// @Summary Record key pickup
// @Description Mark the room key as picked up (owner only)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/key-pickup [post]
func (h *ReservationHandler) PickUpKey(c *gin.Context) {
	h.runLifecycle(c, h.commands.PickUpKey)
}

// @Summary Record key return
// @Description Mark the room key as returned (owner only)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/key-return [post]
func (h *ReservationHandler) ReturnKey(c *gin.Context) {
	h.runLifecycle(c, h.commands.ReturnKey)
}

func (h *ReservationHandler) runLifecycle(c *gin.Context, op func(ctx context.Context, reservationID, actorID uuid.UUID) error) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := op(c.Request.Context(), id, actorID); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to modify this reservation",
			})
		case errors.Is(err, reservation.ErrAlreadyCancelled):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Reservation is already cancelled",
			})
		case errors.Is(err, reservation.ErrNotActive):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Reservation is not active",
			})
		case errors.Is(err, reservation.ErrKeyAlreadyPickedUp):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Key has already been picked up",
			})
		case errors.Is(err, reservation.ErrKeyNotPickedUp):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Key has not been picked up yet",
			})
		case errors.Is(err, reservation.ErrKeyAlreadyReturned):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Key has already been returned",
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

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func respondNotFoundOr500(c *gin.Context, err error, notFoundMsg string) {
	if infra.IsKind(err, infra.KindNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFoundMsg,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
