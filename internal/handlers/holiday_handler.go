package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonworks/salon-scheduler/internal/audit"
	"github.com/salonworks/salon-scheduler/internal/cache"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/httpresp"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	"github.com/salonworks/salon-scheduler/internal/models"
)

type HolidayHandler struct {
	db       *gorm.DB
	cache    *cache.CalendarCache
	auditDsp *audit.Dispatcher
}

func NewHolidayHandler(db *gorm.DB, calCache *cache.CalendarCache, auditDsp *audit.Dispatcher) *HolidayHandler {
	return &HolidayHandler{db: db, cache: calCache, auditDsp: auditDsp}
}

type CreateHolidayRequest struct {
	Date         string `json:"date" binding:"required"`
	IsWorkingDay bool   `json:"is_working_day"`
	Description  string `json:"description"`
}

func (h *HolidayHandler) List(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	q := h.db.Where("salon_id = ?", salonID)

	if from := c.Query("from"); from != "" {
		if _, err := time.Parse("2006-01-02", from); err != nil {
			httperr.BadRequest(c, "invalid_date", "Parameter 'from' must use the YYYY-MM-DD format.")
			return
		}
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		if _, err := time.Parse("2006-01-02", to); err != nil {
			httperr.BadRequest(c, "invalid_date", "Parameter 'to' must use the YYYY-MM-DD format.")
			return
		}
		q = q.Where("date <= ?", to)
	}

	var exceptions []models.HolidayException
	if err := q.Order("date ASC").Find(&exceptions).Error; err != nil {
		httperr.Internal(c, "failed_to_list_holidays", "Failed to list holiday exceptions.")
		return
	}

	httpresp.List(c, exceptions)
}

func (h *HolidayHandler) Create(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must use the YYYY-MM-DD format.")
		return
	}

	var count int64
	if err := h.db.Model(&models.HolidayException{}).
		Where("salon_id = ? AND date = ?", salonID, req.Date).
		Count(&count).Error; err != nil {

		httperr.Internal(c, "failed_to_create_holiday", "Failed to save holiday exception.")
		return
	}
	if count > 0 {
		httperr.Write(c, http.StatusConflict, "holiday_already_exists",
			"An exception for this date already exists.")
		return
	}

	exc := models.HolidayException{
		SalonID:      salonID,
		Date:         req.Date,
		IsWorkingDay: req.IsWorkingDay,
		Description:  req.Description,
	}

	if err := h.db.Create(&exc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_holiday", "Failed to save holiday exception.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), salonID)

	h.auditDsp.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "holiday_exception_created",
		Entity:   "holiday_exception",
		EntityID: &exc.ID,
		Metadata: map[string]any{
			"date":           exc.Date,
			"is_working_day": exc.IsWorkingDay,
		},
	})

	c.JSON(http.StatusCreated, exc)
}

func (h *HolidayHandler) Delete(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	id := c.Param("id")

	var exc models.HolidayException
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&exc).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "holiday_not_found", "Holiday exception not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_holiday", "Failed to load holiday exception.")
		return
	}

	if err := h.db.Delete(&exc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_holiday", "Failed to delete holiday exception.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), salonID)

	h.auditDsp.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "holiday_exception_deleted",
		Entity:   "holiday_exception",
		EntityID: &exc.ID,
		Metadata: map[string]any{"date": exc.Date},
	})

	c.Status(http.StatusNoContent)
}
