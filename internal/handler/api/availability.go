package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	cfg          config.BookingConfig
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, cfg config.Config) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		cfg:          cfg.Booking,
	}
}

// @Summary Get availability
// @Description List bookable slots for a host on a calendar date, displayed in the viewer's timezone
// @Tags availability
// @Produce json
// @Param id path string true "Host ID"
// @Param date query string true "Calendar date in the host's timezone (YYYY-MM-DD)"
// @Param timezone query string false "Viewer IANA timezone (default UTC)"
// @Param duration query int false "Slot length in minutes (default 30)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hosts/{id}/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	hostID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid host ID format",
		})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'date' is required",
		})
		return
	}

	viewerTimezone := c.DefaultQuery("timezone", "UTC")

	duration := time.Duration(h.cfg.DefaultSlotMinutes) * time.Minute
	if raw := c.Query("duration"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Query parameter 'duration' must be a positive number of minutes",
			})
			return
		}
		duration = time.Duration(minutes) * time.Minute
	}

	slots, err := h.availability.Slots(c.Request.Context(), hostID, date, viewerTimezone, duration)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrHostNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Host not found",
			})
		case errors.Is(err, queries.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date must be formatted as YYYY-MM-DD",
			})
		case errors.Is(err, queries.ErrInvalidTimezone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown timezone identifier",
			})
		case errors.Is(err, queries.ErrInvalidDuration):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid slot duration",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(hostID, date, viewerTimezone, slots))
}
