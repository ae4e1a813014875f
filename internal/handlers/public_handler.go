package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/salonworks/salon-scheduler/internal/domain/appointment"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
	appointmentuc "github.com/salonworks/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the unauthenticated booking surface, addressed
// by salon slug.
type PublicHandler struct {
	db           *gorm.DB
	create       *appointmentuc.CreateAppointment
	availability *appointmentuc.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	create *appointmentuc.CreateAppointment,
	availability *appointmentuc.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		create:       create,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	StaffID     uint   `json:"staff_id"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Notes       string `json:"notes"`
}

// ======================================================
// HELPERS
// ======================================================

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return nil, false
	}
	return &salon, true
}

// resolveStaff picks the staff member a public booking targets: the
// requested one if it belongs to the salon, otherwise the owner.
func (h *PublicHandler) resolveStaff(c *gin.Context, salon *models.Salon, staffID uint) (*models.User, bool) {
	var staff models.User

	if staffID != 0 {
		if err := h.db.
			Where("id = ? AND salon_id = ? AND active = ?", staffID, salon.ID, true).
			First(&staff).Error; err != nil {

			httperr.BadRequest(c, "staff_not_found", "Staff member not found.")
			return nil, false
		}
		return &staff, true
	}

	if err := h.db.
		Where("salon_id = ? AND role = ?", salon.ID, "owner").
		First(&staff).Error; err != nil {

		httperr.BadRequest(c, "staff_not_found", "Staff member not found.")
		return nil, false
	}
	return &staff, true
}

// ======================================================
// SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("salon_id = ? AND active = true", salon.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.SalonService
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

// ======================================================
// STAFF
// ======================================================

func (h *PublicHandler) ListStaff(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var staff []models.User
	if err := h.db.
		Select("id", "name").
		Where("salon_id = ? AND active = ?", salon.ID, true).
		Order("name ASC").
		Find(&staff).Error; err != nil {

		httperr.Internal(c, "failed_to_list_staff", "Failed to list staff members.")
		return
	}

	out := make([]gin.H, 0, len(staff))
	for _, s := range staff {
		out = append(out, gin.H{"id": s.ID, "name": s.Name})
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Parameters 'date' and 'service_id' are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Parameter 'service_id' must be a number.")
		return
	}

	var staffID uint
	if s := c.Query("staff_id"); s != "" {
		parsed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_staff_id", "Parameter 'staff_id' must be a number.")
			return
		}
		staffID = uint(parsed)
	}

	staff, ok := h.resolveStaff(c, salon, staffID)
	if !ok {
		return
	}

	date, err := parseDateInSalon(salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Parameter 'date' must use the YYYY-MM-DD format.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			SalonID:   salon.ID,
			StaffID:   staff.ID,
			ServiceID: uint(serviceID),
			Date:      date,
		},
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     dateStr,
		"staff_id": staff.ID,
		"slots":    slots,
	})
}

// ======================================================
// CREATE APPOINTMENT
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	staff, ok := h.resolveStaff(c, salon, req.StaffID)
	if !ok {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointmentuc.CreateAppointmentInput{
		SalonID:     salon.ID,
		StaffID:     staff.ID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		Reference:   uuid.NewString(),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference":   ap.Reference,
		"appointment": ap,
	})
}

// ======================================================
// LOOKUP BY REFERENCE
// ======================================================

// GetByReference lets a client check their booking with the reference
// handed out at creation time, no account required.
func (h *PublicHandler) GetByReference(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	ref := c.Param("reference")
	if _, err := uuid.Parse(ref); err != nil {
		httperr.BadRequest(c, "invalid_reference", "Reference must be a valid UUID.")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("SalonService").
		Where("salon_id = ? AND reference = ?", salon.ID, ref).
		First(&ap).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Failed to load appointment.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference":  ap.Reference,
		"status":     ap.Status,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"service":    ap.SalonService.Name,
	})
}
