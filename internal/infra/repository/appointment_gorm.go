package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/salonworks/salon-scheduler/internal/cache"
	domain "github.com/salonworks/salon-scheduler/internal/domain/appointment"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db       *gorm.DB
	calCache *cache.CalendarCache
}

// NewAppointmentGormRepository builds the persistence layer. calCache
// may be nil; the repository then always reads calendar data from the
// database.
func NewAppointmentGormRepository(db *gorm.DB, calCache *cache.CalendarCache) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, calCache: calCache}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.SalonService, error) {

	var svc models.SalonService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
	excludeAppointmentID uint,
) error {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"staff_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
			staffID,
			end,
			start,
		)

	if excludeAppointmentID != 0 {
		q = q.Where("id <> ?", excludeAppointmentID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

func (r *AppointmentGormRepository) GetAppointmentForStaff(
	ctx context.Context,
	appointmentID uint,
	staffID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND staff_id = ?", appointmentID, staffID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Calendar snapshots
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCalendarData(
	ctx context.Context,
	salonID uint,
) ([]models.BusinessHour, []models.HolidayException, error) {

	if snap, ok := r.calCache.Get(ctx, salonID); ok {
		return snap.Hours, snap.Exceptions, nil
	}

	var hours []models.BusinessHour
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		return nil, nil, err
	}

	var exceptions []models.HolidayException
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Find(&exceptions).Error; err != nil {
		return nil, nil, err
	}

	r.calCache.Set(ctx, salonID, &cache.CalendarSnapshot{
		Hours:      hours,
		Exceptions: exceptions,
	})

	return hours, exceptions, nil
}

func (r *AppointmentGormRepository) ListStaffWorkingHours(
	ctx context.Context,
	staffID uint,
) ([]models.StaffWorkingHour, error) {

	var rows []models.StaffWorkingHour
	if err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("day_of_week ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Availability / listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"staff_id = ? AND status = 'scheduled' AND start_time >= ? AND start_time < ?",
			staffID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("SalonService").
		Where(
			"staff_id = ? AND start_time >= ? AND start_time < ?",
			staffID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
