package appointment

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/salonworks/salon-scheduler/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetSalonByID(ctx context.Context, id uint) (*models.Salon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Salon), args.Error(1)
}

func (m *mockRepo) GetService(ctx context.Context, salonID, serviceID uint) (*models.SalonService, error) {
	args := m.Called(ctx, salonID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SalonService), args.Error(1)
}

func (m *mockRepo) GetOrCreateClient(ctx context.Context, salonID uint, name, phone, email string) (*models.Client, error) {
	args := m.Called(ctx, salonID, name, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *mockRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockRepo) AssertNoTimeConflict(ctx context.Context, staffID uint, start, end time.Time, excludeID uint) error {
	return m.Called(ctx, staffID, start, end, excludeID).Error(0)
}

func (m *mockRepo) GetAppointmentForStaff(ctx context.Context, appointmentID, staffID uint) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockRepo) GetCalendarData(ctx context.Context, salonID uint) ([]models.BusinessHour, []models.HolidayException, error) {
	args := m.Called(ctx, salonID)
	var hours []models.BusinessHour
	var exceptions []models.HolidayException
	if args.Get(0) != nil {
		hours = args.Get(0).([]models.BusinessHour)
	}
	if args.Get(1) != nil {
		exceptions = args.Get(1).([]models.HolidayException)
	}
	return hours, exceptions, args.Error(2)
}

func (m *mockRepo) ListStaffWorkingHours(ctx context.Context, staffID uint) ([]models.StaffWorkingHour, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StaffWorkingHour), args.Error(1)
}

func (m *mockRepo) ListAppointmentsForDay(ctx context.Context, staffID uint, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, staffID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepo) ListAppointmentsForPeriod(ctx context.Context, staffID uint, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, staffID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}
