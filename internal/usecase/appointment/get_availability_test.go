package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/salonworks/salon-scheduler/internal/domain/appointment"
	"github.com/salonworks/salon-scheduler/internal/models"
)

func TestGetAvailabilityIntersectsStaffAndBusinessWindows(t *testing.T) {
	repo := new(mockRepo)
	uc := NewGetAvailability(repo)

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(&models.Salon{ID: 1, Timezone: "UTC"}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).Return(&models.SalonService{ID: 3, DurationMin: 60}, nil)
	repo.On("GetCalendarData", mock.Anything, uint(1)).Return(weekBusinessHours(), nil, nil)
	repo.On("ListStaffWorkingHours", mock.Anything, uint(7)).Return([]models.StaffWorkingHour{
		{StaffID: 7, DayOfWeek: 1, IsWorking: true, StartTime: "10:00", EndTime: "16:00"},
	}, nil)
	repo.On("ListAppointmentsForDay", mock.Anything, uint(7), mock.Anything, mock.Anything).Return([]models.Appointment{
		{StartTime: mondayUTC(12, 0), EndTime: mondayUTC(13, 0)},
	}, nil)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:   1,
		StaffID:   7,
		ServiceID: 3,
		Date:      mondayUTC(0, 0),
	})

	assert.NoError(t, err)
	// staff window 10:00-16:00 inside business 09:00-19:00, minus the
	// booked 12:00-13:00 hour
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start)
	}
	assert.Equal(t, []string{"10:00", "11:00", "13:00", "14:00", "15:00"}, starts)
}

func TestGetAvailabilityClosedDayIsEmpty(t *testing.T) {
	repo := new(mockRepo)
	uc := NewGetAvailability(repo)

	sunday := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(&models.Salon{ID: 1, Timezone: "UTC"}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).Return(&models.SalonService{ID: 3, DurationMin: 60}, nil)
	repo.On("GetCalendarData", mock.Anything, uint(1)).Return(weekBusinessHours(), nil, nil)
	repo.On("ListStaffWorkingHours", mock.Anything, uint(7)).Return([]models.StaffWorkingHour{
		{StaffID: 7, DayOfWeek: 0, IsWorking: true, StartTime: "09:00", EndTime: "19:00"},
	}, nil)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:   1,
		StaffID:   7,
		ServiceID: 3,
		Date:      sunday,
	})

	assert.NoError(t, err)
	assert.Empty(t, slots, "business closure wins over the staff schedule")
}

func TestGetAvailabilityHolidayExceptionClosesDay(t *testing.T) {
	repo := new(mockRepo)
	uc := NewGetAvailability(repo)

	// Monday forced closed by an exception
	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(&models.Salon{ID: 1, Timezone: "UTC"}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(3)).Return(&models.SalonService{ID: 3, DurationMin: 60}, nil)
	repo.On("GetCalendarData", mock.Anything, uint(1)).Return(weekBusinessHours(), []models.HolidayException{
		{SalonID: 1, Date: "2026-02-02", IsWorkingDay: false, Description: "renovation"},
	}, nil)
	repo.On("ListStaffWorkingHours", mock.Anything, uint(7)).Return([]models.StaffWorkingHour{
		{StaffID: 7, DayOfWeek: 1, IsWorking: true, StartTime: "09:00", EndTime: "19:00"},
	}, nil)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SalonID:   1,
		StaffID:   7,
		ServiceID: 3,
		Date:      mondayUTC(0, 0),
	})

	assert.NoError(t, err)
	assert.Empty(t, slots)
}
