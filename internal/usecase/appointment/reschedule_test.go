package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/salonworks/salon-scheduler/internal/audit"
	"github.com/salonworks/salon-scheduler/internal/domain/schedule"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zerolog.Nop())
}

func weekBusinessHours() []models.BusinessHour {
	var hours []models.BusinessHour
	for d := 1; d <= 5; d++ {
		hours = append(hours, models.BusinessHour{
			SalonID:   1,
			DayOfWeek: d,
			IsOpen:    true,
			StartTime: "09:00",
			EndTime:   "19:00",
		})
	}
	return hours
}

// 2026-02-02 is a Monday.
func mondayUTC(hour, min int) time.Time {
	return time.Date(2026, 2, 2, hour, min, 0, 0, time.UTC)
}

func rescheduleFixture(t *testing.T) (*mockRepo, *RescheduleAppointment, *models.Appointment) {
	t.Helper()

	repo := new(mockRepo)
	uc := NewRescheduleAppointment(repo, testDispatcher())

	salon := &models.Salon{ID: 1, Timezone: "UTC"}
	ap := &models.Appointment{
		ID:        10,
		SalonID:   1,
		StaffID:   7,
		StartTime: mondayUTC(10, 0),
		EndTime:   mondayUTC(11, 0),
		Status:    "scheduled",
	}

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(salon, nil)
	repo.On("GetAppointmentForStaff", mock.Anything, uint(10), uint(7)).Return(ap, nil)
	repo.On("GetCalendarData", mock.Anything, uint(1)).Return(weekBusinessHours(), nil, nil)
	repo.On("ListStaffWorkingHours", mock.Anything, uint(7)).Return([]models.StaffWorkingHour{
		{StaffID: 7, DayOfWeek: 1, IsWorking: true, StartTime: "09:00", EndTime: "19:00"},
	}, nil)

	return repo, uc, ap
}

func TestRescheduleMoveUpdatesAppointment(t *testing.T) {
	repo, uc, ap := rescheduleFixture(t)

	repo.On("AssertNoTimeConflict", mock.Anything, uint(7), mondayUTC(14, 0), mondayUTC(15, 0), uint(10)).Return(nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	updated, _, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		SalonID:       1,
		StaffID:       7,
		AppointmentID: 10,
		Kind:          RescheduleMove,
		NewStart:      mondayUTC(14, 0),
	})

	assert.NoError(t, err)
	assert.Equal(t, mondayUTC(14, 0), updated.StartTime)
	assert.Equal(t, mondayUTC(15, 0), updated.EndTime, "move preserves duration")
	repo.AssertExpectations(t)
}

func TestRescheduleMoveOutsideHoursRejectsWithoutWriting(t *testing.T) {
	repo, uc, _ := rescheduleFixture(t)

	_, decision, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		SalonID:       1,
		StaffID:       7,
		AppointmentID: 10,
		Kind:          RescheduleMove,
		NewStart:      mondayUTC(8, 0),
	})

	assert.True(t, httperr.IsBusiness(err, schedule.ReasonOutsideBusinessHours))
	assert.Equal(t, schedule.ClassNonWorkingHour, decision.Class)
	assert.Equal(t, schedule.TimeOfDay("09:00"), decision.WindowStart)
	assert.Equal(t, schedule.TimeOfDay("19:00"), decision.WindowEnd)
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "AssertNoTimeConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRescheduleResizeMovesEndOnly(t *testing.T) {
	repo, uc, ap := rescheduleFixture(t)

	repo.On("AssertNoTimeConflict", mock.Anything, uint(7), mondayUTC(10, 0), mondayUTC(12, 30), uint(10)).Return(nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	updated, _, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		SalonID:       1,
		StaffID:       7,
		AppointmentID: 10,
		Kind:          RescheduleResize,
		NewEnd:        mondayUTC(12, 30),
	})

	assert.NoError(t, err)
	assert.Equal(t, mondayUTC(10, 0), updated.StartTime)
	assert.Equal(t, mondayUTC(12, 30), updated.EndTime)
}

func TestRescheduleResizePastClosingRejected(t *testing.T) {
	repo, uc, _ := rescheduleFixture(t)

	// start stays bookable but the dragged end runs past closing
	_, _, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		SalonID:       1,
		StaffID:       7,
		AppointmentID: 10,
		Kind:          RescheduleResize,
		NewEnd:        mondayUTC(20, 0),
	})

	assert.Error(t, err)
	assert.NotEmpty(t, httperr.BusinessCode(err))
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestRescheduleCrossColumnDrop(t *testing.T) {
	repo, uc, ap := rescheduleFixture(t)

	repo.On("ListStaffWorkingHours", mock.Anything, uint(8)).Return([]models.StaffWorkingHour{
		{StaffID: 8, DayOfWeek: 1, IsWorking: true, StartTime: "13:00", EndTime: "19:00"},
	}, nil)
	repo.On("AssertNoTimeConflict", mock.Anything, uint(8), mondayUTC(14, 0), mondayUTC(15, 0), uint(10)).Return(nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	updated, _, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		SalonID:       1,
		StaffID:       7,
		AppointmentID: 10,
		Kind:          RescheduleMove,
		NewStart:      mondayUTC(14, 0),
		NewStaffID:    8,
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(8), updated.StaffID, "appointment moved to the target column")
}

func TestRescheduleCancelledAppointmentRejected(t *testing.T) {
	repo := new(mockRepo)
	uc := NewRescheduleAppointment(repo, testDispatcher())

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(&models.Salon{ID: 1, Timezone: "UTC"}, nil)
	repo.On("GetAppointmentForStaff", mock.Anything, uint(10), uint(7)).Return(&models.Appointment{
		ID:      10,
		StaffID: 7,
		Status:  "cancelled",
	}, nil)

	_, _, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		SalonID:       1,
		StaffID:       7,
		AppointmentID: 10,
		Kind:          RescheduleMove,
		NewStart:      mondayUTC(14, 0),
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
