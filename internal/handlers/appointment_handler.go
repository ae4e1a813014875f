package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salonworks/salon-scheduler/internal/domain/schedule"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	appointmentuc "github.com/salonworks/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create      *appointmentuc.CreateAppointment
	cancel      *appointmentuc.CancelAppointment
	complete    *appointmentuc.CompleteAppointment
	reschedule  *appointmentuc.RescheduleAppointment
	listByDate  *appointmentuc.ListAppointmentsByDate
	listByMonth *appointmentuc.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	create *appointmentuc.CreateAppointment,
	cancel *appointmentuc.CancelAppointment,
	complete *appointmentuc.CompleteAppointment,
	reschedule *appointmentuc.RescheduleAppointment,
	listByDate *appointmentuc.ListAppointmentsByDate,
	listByMonth *appointmentuc.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		cancel:      cancel,
		complete:    complete,
		reschedule:  reschedule,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	StaffID     uint   `json:"staff_id"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	Kind       string `json:"kind" binding:"required"` // move | resize
	NewStart   string `json:"new_start"`               // RFC 3339, Kind=move
	NewEnd     string `json:"new_end"`                 // RFC 3339, Kind=resize
	NewStaffID uint   `json:"new_staff_id"`            // 0 = keep column
}

// ======================================================
// ERROR MAPPING
// ======================================================

var businessStatus = map[string]int{
	"appointment_not_found":             http.StatusNotFound,
	"service_not_found":                 http.StatusNotFound,
	"time_conflict":                     http.StatusConflict,
	"invalid_state":                     http.StatusConflict,
	"too_soon":                          http.StatusUnprocessableEntity,
	"invalid_date_or_time":              http.StatusBadRequest,
	schedule.ReasonInvalidInstant:       http.StatusBadRequest,
	schedule.ReasonBusinessClosed:       http.StatusUnprocessableEntity,
	schedule.ReasonOutsideBusinessHours: http.StatusUnprocessableEntity,
	schedule.ReasonOutsideStaffHours:    http.StatusUnprocessableEntity,
}

var businessMessage = map[string]string{
	"appointment_not_found":             "Appointment not found.",
	"service_not_found":                 "Service not found.",
	"time_conflict":                     "Another appointment already occupies this time.",
	"invalid_state":                     "The appointment's current status does not allow this operation.",
	"too_soon":                          "This time is in the past or does not respect the minimum advance.",
	"invalid_date_or_time":              "Invalid date or time.",
	schedule.ReasonInvalidInstant:       "Invalid instant.",
	schedule.ReasonBusinessClosed:       "The salon is closed on this day.",
	schedule.ReasonOutsideBusinessHours: "This time is outside the salon's business hours.",
	schedule.ReasonOutsideStaffHours:    "This time is outside this staff member's working hours.",
}

// writeBusinessError renders a business rule violation. Unknown errors
// fall through to a 500.
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	status, ok := businessStatus[code]
	if !ok {
		status = http.StatusUnprocessableEntity
	}
	msg, ok := businessMessage[code]
	if !ok {
		msg = "Operation not allowed."
	}

	httperr.Write(c, status, code, msg)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	staffID := req.StaffID
	if staffID == 0 {
		staffID = userID
	}

	ap, err := h.create.Execute(c.Request.Context(), appointmentuc.CreateAppointmentInput{
		SalonID:     salonID,
		StaffID:     staffID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
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

	items, err := h.listByDate.Execute(c.Request.Context(), staffID, salonID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2200 {
		httperr.BadRequest(c, "invalid_year", "Parameter 'year' must be a valid year.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Parameter 'month' must be between 1 and 12.")
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

	items, err := h.listByMonth.Execute(c.Request.Context(), staffID, salonID, year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be a number.")
		return 0, false
	}
	return uint(id), true
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := h.appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), salonID, userID, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := h.appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), salonID, userID, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// RESCHEDULE (drag / resize)
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := h.appointmentID(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := appointmentuc.RescheduleAppointmentInput{
		SalonID:       salonID,
		StaffID:       userID,
		AppointmentID: id,
		NewStaffID:    req.NewStaffID,
	}

	switch req.Kind {
	case "move":
		in.Kind = appointmentuc.RescheduleMove
		start, err := time.Parse(time.RFC3339, req.NewStart)
		if err != nil {
			httperr.BadRequest(c, "invalid_new_start", "Field 'new_start' must be an RFC 3339 timestamp.")
			return
		}
		in.NewStart = start
	case "resize":
		in.Kind = appointmentuc.RescheduleResize
		end, err := time.Parse(time.RFC3339, req.NewEnd)
		if err != nil {
			httperr.BadRequest(c, "invalid_new_end", "Field 'new_end' must be an RFC 3339 timestamp.")
			return
		}
		in.NewEnd = end
	default:
		httperr.BadRequest(c, "invalid_kind", "Field 'kind' must be 'move' or 'resize'.")
		return
	}

	ap, decision, err := h.reschedule.Execute(c.Request.Context(), in)
	if err != nil {
		code := httperr.BusinessCode(err)
		if code != "" && decision.Code == code && decision.HasWindow() {
			// rejection with a known-good window: tell the client where
			// the appointment is allowed to land
			status, ok := businessStatus[code]
			if !ok {
				status = http.StatusUnprocessableEntity
			}
			c.JSON(status, gin.H{
				"error_code":   code,
				"message":      businessMessage[code],
				"window_start": decision.WindowStart,
				"window_end":   decision.WindowEnd,
			})
			return
		}
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}
