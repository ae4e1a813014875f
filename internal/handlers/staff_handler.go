package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonworks/salon-scheduler/internal/audit"
	"github.com/salonworks/salon-scheduler/internal/domain/schedule"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/httpresp"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	"github.com/salonworks/salon-scheduler/internal/models"
)

type StaffHandler struct {
	db       *gorm.DB
	auditDsp *audit.Dispatcher
}

func NewStaffHandler(db *gorm.DB, auditDsp *audit.Dispatcher) *StaffHandler {
	return &StaffHandler{db: db, auditDsp: auditDsp}
}

type StaffWorkingHourEntry struct {
	DayOfWeek int    `json:"day_of_week"`
	IsWorking bool   `json:"is_working"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type PutStaffWorkingHoursRequest struct {
	Hours []StaffWorkingHourEntry `json:"hours" binding:"required"`
}

// List returns the salon's active staff members (users that can be
// assigned appointments).
func (h *StaffHandler) List(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var staff []models.User
	if err := h.db.
		Where("salon_id = ? AND active = ?", salonID, true).
		Order("name ASC").
		Find(&staff).Error; err != nil {

		httperr.Internal(c, "failed_to_list_staff", "Failed to list staff members.")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) staffForSalon(c *gin.Context, salonID uint) (*models.User, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Staff id must be a number.")
		return nil, false
	}

	var staff models.User
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&staff).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "staff_not_found", "Staff member not found.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_staff", "Failed to load staff member.")
		return nil, false
	}

	return &staff, true
}

// GetWorkingHours returns the seven weekday rows for one staff member,
// filling unconfigured days as not working.
func (h *StaffHandler) GetWorkingHours(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	staff, ok := h.staffForSalon(c, salonID)
	if !ok {
		return
	}

	var rows []models.StaffWorkingHour
	if err := h.db.
		Where("staff_id = ?", staff.ID).
		Order("day_of_week ASC").
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Failed to load working hours.")
		return
	}

	byDay := make(map[int]models.StaffWorkingHour, len(rows))
	for _, r := range rows {
		byDay[r.DayOfWeek] = r
	}

	week := make([]models.StaffWorkingHour, 0, 7)
	for day := 0; day < 7; day++ {
		if r, ok := byDay[day]; ok {
			week = append(week, r)
			continue
		}
		week = append(week, models.StaffWorkingHour{
			StaffID:   staff.ID,
			DayOfWeek: day,
			IsWorking: false,
		})
	}

	c.JSON(http.StatusOK, week)
}

// PutWorkingHours replaces all weekday rows for one staff member in a
// single transaction.
func (h *StaffHandler) PutWorkingHours(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	staff, ok := h.staffForSalon(c, salonID)
	if !ok {
		return
	}

	var req PutStaffWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	seen := make(map[int]bool, 7)
	for _, entry := range req.Hours {
		if entry.DayOfWeek < 0 || entry.DayOfWeek > 6 {
			httperr.BadRequest(c, "invalid_day_of_week",
				fmt.Sprintf("Day of week must be between 0 (Sunday) and 6 (Saturday), got %d.", entry.DayOfWeek))
			return
		}
		if seen[entry.DayOfWeek] {
			httperr.BadRequest(c, "duplicate_day_of_week",
				fmt.Sprintf("Day %d appears more than once.", entry.DayOfWeek))
			return
		}
		seen[entry.DayOfWeek] = true

		if !entry.IsWorking {
			continue
		}

		start := schedule.TimeOfDay(entry.StartTime)
		end := schedule.TimeOfDay(entry.EndTime)
		if !start.IsValid() || !end.IsValid() {
			httperr.BadRequest(c, "invalid_time_format",
				fmt.Sprintf("Times for day %d must use the HH:MM format.", entry.DayOfWeek))
			return
		}
		if !schedule.IsOrdered(start, end) {
			httperr.BadRequest(c, "invalid_time_window",
				fmt.Sprintf("Start time must be before end time on day %d.", entry.DayOfWeek))
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("staff_id = ?", staff.ID).
			Delete(&models.StaffWorkingHour{}).Error; err != nil {
			return err
		}

		for _, entry := range req.Hours {
			row := models.StaffWorkingHour{
				StaffID:   staff.ID,
				DayOfWeek: entry.DayOfWeek,
				IsWorking: entry.IsWorking,
			}
			if entry.IsWorking {
				row.StartTime = entry.StartTime
				row.EndTime = entry.EndTime
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_working_hours", "Failed to save working hours.")
		return
	}

	h.auditDsp.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "staff_working_hours_updated",
		Entity:   "staff_working_hour",
		EntityID: &staff.ID,
		Metadata: req.Hours,
	})

	h.GetWorkingHours(c)
}
