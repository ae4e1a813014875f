package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/salonworks/salon-scheduler/internal/models"
)

func TestCalendarGridClassifiesWholeDay(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCalendarGrid(repo)

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(&models.Salon{ID: 1, Timezone: "UTC"}, nil)
	repo.On("GetCalendarData", mock.Anything, uint(1)).Return(weekBusinessHours(), nil, nil)
	repo.On("ListStaffWorkingHours", mock.Anything, uint(7)).Return([]models.StaffWorkingHour{
		{StaffID: 7, DayOfWeek: 1, IsWorking: true, StartTime: "10:00", EndTime: "16:00"},
	}, nil)

	grid, err := uc.Execute(context.Background(), 1, 7, mondayUTC(0, 0), 60)

	assert.NoError(t, err)
	assert.Len(t, grid, 24)

	byTime := make(map[string]SlotClass, len(grid))
	for _, s := range grid {
		byTime[s.Time] = s
	}

	assert.Equal(t, "non_working_hour", byTime["08:00"].Class)
	assert.Equal(t, "staff_non_working", byTime["09:00"].Class)
	assert.Equal(t, "working_hour", byTime["10:00"].Class)
	assert.True(t, byTime["10:00"].Bookable)
	assert.Equal(t, "staff_non_working", byTime["16:00"].Class)
	assert.Equal(t, "non_working_hour", byTime["20:00"].Class)
	assert.False(t, byTime["20:00"].Bookable)
}

func TestCalendarGridWeekend(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCalendarGrid(repo)

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(&models.Salon{ID: 1, Timezone: "UTC"}, nil)
	repo.On("GetCalendarData", mock.Anything, uint(1)).Return(weekBusinessHours(), nil, nil)

	// 2026-02-07 is a Saturday, closed in the weekly rules
	saturday := mondayUTC(0, 0).AddDate(0, 0, 5)

	grid, err := uc.Execute(context.Background(), 1, 0, saturday, 60)

	assert.NoError(t, err)
	for _, s := range grid {
		assert.Equal(t, "weekend", s.Class)
		assert.False(t, s.Bookable)
	}
}

func TestValidateSlotCarriesWindow(t *testing.T) {
	repo := new(mockRepo)
	uc := NewValidateSlot(repo)

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(&models.Salon{ID: 1, Timezone: "UTC"}, nil)
	repo.On("GetCalendarData", mock.Anything, uint(1)).Return(weekBusinessHours(), nil, nil)
	repo.On("ListStaffWorkingHours", mock.Anything, uint(7)).Return([]models.StaffWorkingHour{
		{StaffID: 7, DayOfWeek: 1, IsWorking: true, StartTime: "10:00", EndTime: "16:00"},
	}, nil)

	decision, err := uc.Execute(context.Background(), 1, 7, mondayUTC(9, 0))

	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "outside_staff_hours", decision.Code)
	assert.Equal(t, "10:00", string(decision.WindowStart))
	assert.Equal(t, "16:00", string(decision.WindowEnd))
}

func TestValidateSlotAccepts(t *testing.T) {
	repo := new(mockRepo)
	uc := NewValidateSlot(repo)

	repo.On("GetSalonByID", mock.Anything, uint(1)).Return(&models.Salon{ID: 1, Timezone: "UTC"}, nil)
	repo.On("GetCalendarData", mock.Anything, uint(1)).Return(weekBusinessHours(), nil, nil)
	repo.On("ListStaffWorkingHours", mock.Anything, uint(7)).Return([]models.StaffWorkingHour{
		{StaffID: 7, DayOfWeek: 1, IsWorking: true, StartTime: "10:00", EndTime: "16:00"},
	}, nil)

	decision, err := uc.Execute(context.Background(), 1, 7, mondayUTC(11, 30))

	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Code)
}
