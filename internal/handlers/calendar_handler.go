package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	appointmentuc "github.com/salonworks/salon-scheduler/internal/usecase/appointment"
)

type CalendarHandler struct {
	grid     *appointmentuc.CalendarGrid
	validate *appointmentuc.ValidateSlot
}

func NewCalendarHandler(
	grid *appointmentuc.CalendarGrid,
	validate *appointmentuc.ValidateSlot,
) *CalendarHandler {
	return &CalendarHandler{grid: grid, validate: validate}
}

type ValidateSlotRequest struct {
	Instant string `json:"instant" binding:"required"` // RFC 3339
	StaffID uint   `json:"staff_id"`
}

// DayGrid classifies every interval of one day for calendar rendering.
func (h *CalendarHandler) DayGrid(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Parameter 'date' must use the YYYY-MM-DD format.")
		return
	}

	staffID := userID
	if s := c.Query("staff_id"); s != "" {
		parsed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_staff_id", "Parameter 'staff_id' must be a number.")
			return
		}
		staffID = uint(parsed)
	}

	intervalMin := 30
	if s := c.Query("interval_min"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 5 || parsed > 240 {
			httperr.BadRequest(c, "invalid_interval", "Parameter 'interval_min' must be between 5 and 240.")
			return
		}
		intervalMin = parsed
	}

	grid, err := h.grid.Execute(c.Request.Context(), salonID, staffID, date, intervalMin)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date.Format("2006-01-02"),
		"staff_id":     staffID,
		"interval_min": intervalMin,
		"slots":        grid,
	})
}

// ValidateSelection runs the engine's gate for one candidate slot and
// always answers 200: the decision is the payload, not an error.
func (h *CalendarHandler) ValidateSelection(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req ValidateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	instant, err := time.Parse(time.RFC3339, req.Instant)
	if err != nil {
		httperr.BadRequest(c, "invalid_instant", "Field 'instant' must be an RFC 3339 timestamp.")
		return
	}

	decision, err := h.validate.Execute(c.Request.Context(), salonID, req.StaffID, instant)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	resp := gin.H{
		"allowed": decision.Allowed,
		"class":   decision.Class.String(),
	}
	if decision.Code != "" {
		resp["reason"] = decision.Code
	}
	if decision.HasWindow() {
		resp["window_start"] = decision.WindowStart
		resp["window_end"] = decision.WindowEnd
	}

	c.JSON(http.StatusOK, resp)
}
