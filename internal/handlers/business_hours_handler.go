package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonworks/salon-scheduler/internal/audit"
	"github.com/salonworks/salon-scheduler/internal/cache"
	"github.com/salonworks/salon-scheduler/internal/domain/schedule"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	"github.com/salonworks/salon-scheduler/internal/models"
)

type BusinessHoursHandler struct {
	db       *gorm.DB
	cache    *cache.CalendarCache
	auditDsp *audit.Dispatcher
}

func NewBusinessHoursHandler(db *gorm.DB, calCache *cache.CalendarCache, auditDsp *audit.Dispatcher) *BusinessHoursHandler {
	return &BusinessHoursHandler{db: db, cache: calCache, auditDsp: auditDsp}
}

type BusinessHourEntry struct {
	DayOfWeek int    `json:"day_of_week"`
	IsOpen    bool   `json:"is_open"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type PutBusinessHoursRequest struct {
	Hours []BusinessHourEntry `json:"hours" binding:"required"`
}

// Get returns all seven weekday rows. Days never configured come back as
// closed rows so the client always sees a full week.
func (h *BusinessHoursHandler) Get(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var rows []models.BusinessHour
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("day_of_week ASC").
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_get_business_hours", "Failed to load business hours.")
		return
	}

	byDay := make(map[int]models.BusinessHour, len(rows))
	for _, r := range rows {
		byDay[r.DayOfWeek] = r
	}

	week := make([]models.BusinessHour, 0, 7)
	for day := 0; day < 7; day++ {
		if r, ok := byDay[day]; ok {
			week = append(week, r)
			continue
		}
		week = append(week, models.BusinessHour{
			SalonID:   salonID,
			DayOfWeek: day,
			IsOpen:    false,
		})
	}

	c.JSON(http.StatusOK, week)
}

// Put replaces the full weekly configuration in one transaction. Exactly
// one entry per weekday is required; open days must carry an ordered
// HH:MM window.
func (h *BusinessHoursHandler) Put(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var req PutBusinessHoursRequest
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

		if !entry.IsOpen {
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
	if len(seen) != 7 {
		httperr.BadRequest(c, "incomplete_week", "All seven days of the week must be provided.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("salon_id = ?", salonID).
			Delete(&models.BusinessHour{}).Error; err != nil {
			return err
		}

		for _, entry := range req.Hours {
			row := models.BusinessHour{
				SalonID:   salonID,
				DayOfWeek: entry.DayOfWeek,
				IsOpen:    entry.IsOpen,
			}
			if entry.IsOpen {
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
		httperr.Internal(c, "failed_to_update_business_hours", "Failed to save business hours.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), salonID)

	h.auditDsp.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "business_hours_updated",
		Entity:   "business_hour",
		Metadata: req.Hours,
	})

	h.Get(c)
}
