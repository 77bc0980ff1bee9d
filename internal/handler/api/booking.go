package api

import (
	"errors"
	"net/http"

	reqdto "slotbooker/internal/handler/dto/request"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a slot with a host; at most one of any set of concurrent overlapping requests succeeds
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Optional idempotency key; same key with the same payload replays the original result"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed via idempotency key"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid idempotency key format",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateBookingParams{
		HostID:          req.HostID,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		AttendeeName:    req.AttendeeName,
		AttendeeEmail:   req.AttendeeEmail,
		AttendeePhone:   req.OptionalPhone(),
		AttendeeCompany: req.OptionalCompany(),
		Guests:          req.Guests,
		Title:           req.OptionalTitle(),
		Notes:           req.OptionalNotes(),
		Location:        req.OptionalLocation(),
		MeetingType:     req.OptionalType(),
		Timezone:        req.Timezone,
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), params, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHostNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Host not found",
			})
		case errors.Is(err, commands.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is no longer available",
				"code":  "SLOT_TAKEN",
			})
		case errors.Is(err, commands.ErrDuplicateRequest):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Idempotency key was already used with a different request",
			})
		case errors.Is(err, commands.ErrRequestInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking request is currently being processed",
			})
		case errors.Is(err, commands.ErrInvalidBooking):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking validation failed",
			})
		case errors.Is(err, commands.ErrStoreTimeout):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Booking could not be completed in time, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(result.Booking))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking, freeing its interval for rebooking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already cancelled",
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

// @Summary List host bookings
// @Description List all bookings for a host ordered by start time
// @Tags bookings
// @Produce json
// @Param id path string true "Host ID"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /hosts/{id}/bookings [get]
func (h *BookingHandler) ListByHost(c *gin.Context) {
	hostID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid host ID format",
		})
		return
	}

	items, err := h.bookingQueries.ListByHost(c.Request.Context(), hostID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// getIdempotencyKey reads the optional Idempotency-Key header; a missing
// header means the request is not replayable.
func (h *BookingHandler) getIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return nil, nil
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
