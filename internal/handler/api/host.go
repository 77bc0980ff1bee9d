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

type HostHandler struct {
	hostQueries      queries.HostQueries
	scheduleCommands commands.ScheduleCommands
}

func NewHostHandler(hostQueries queries.HostQueries, scheduleCommands commands.ScheduleCommands) *HostHandler {
	return &HostHandler{
		hostQueries:      hostQueries,
		scheduleCommands: scheduleCommands,
	}
}

// @Summary List hosts
// @Description List all bookable hosts
// @Tags hosts
// @Produce json
// @Success 200 {array} resdto.HostResponse
// @Router /hosts [get]
func (h *HostHandler) List(c *gin.Context) {
	hosts, err := h.hostQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.HostResponse, len(hosts))
	for i, host := range hosts {
		response[i] = resdto.FromHostView(host)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get host
// @Description Get host by ID
// @Tags hosts
// @Produce json
// @Param id path string true "Host ID"
// @Success 200 {object} resdto.HostResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hosts/{id} [get]
func (h *HostHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid host ID format",
		})
		return
	}

	host, err := h.hostQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrHostNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Host not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHostView(host))
}

// @Summary Get working hours
// @Description Get the host's weekly working hours rules
// @Tags hosts
// @Produce json
// @Param id path string true "Host ID"
// @Success 200 {array} resdto.WorkingHoursResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hosts/{id}/working-hours [get]
func (h *HostHandler) GetWorkingHours(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid host ID format",
		})
		return
	}

	rules, err := h.hostQueries.WorkingHours(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrHostNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Host not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]resdto.WorkingHoursResponse, len(rules))
	for i, rule := range rules {
		response[i] = resdto.FromWorkingHoursView(rule)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Replace working hours
// @Description Replace the host's weekly working hours rules atomically; at most one rule per weekday
// @Tags hosts
// @Accept json
// @Produce json
// @Param id path string true "Host ID"
// @Param request body reqdto.ReplaceWorkingHoursRequest true "Weekly rules"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hosts/{id}/working-hours [put]
func (h *HostHandler) ReplaceWorkingHours(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid host ID format",
		})
		return
	}

	var req reqdto.ReplaceWorkingHoursRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	inputs := make([]commands.WorkingHoursInput, len(req.Rules))
	for i, rule := range req.Rules {
		inputs[i] = commands.WorkingHoursInput{
			DayOfWeek: rule.DayOfWeek,
			StartTime: rule.StartTime,
			EndTime:   rule.EndTime,
			Timezone:  rule.Timezone,
		}
	}

	if err := h.scheduleCommands.ReplaceWorkingHours(c.Request.Context(), id, inputs); err != nil {
		switch {
		case errors.Is(err, commands.ErrHostNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Host not found",
			})
		case errors.Is(err, commands.ErrInvalidWorkingHours):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Working hours validation failed",
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
