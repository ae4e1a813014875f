package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salonworks/salon-scheduler/internal/models"
)

// weekdayHours configures Monday..Friday 09:00-19:00 open, weekend rows
// present but closed.
func weekdayHours() []models.BusinessHour {
	var hours []models.BusinessHour
	for d := 0; d <= 6; d++ {
		open := d >= 1 && d <= 5
		hours = append(hours, models.BusinessHour{
			DayOfWeek: d,
			IsOpen:    open,
			StartTime: "09:00",
			EndTime:   "19:00",
		})
	}
	return hours
}

// 2026-02-02 is a Monday, 2026-02-01 a Sunday, 2026-02-07 a Saturday.
func localDate(t *testing.T, day int) time.Time {
	t.Helper()
	return time.Date(2026, 2, day, 0, 0, 0, 0, time.UTC)
}

func TestEffectiveOpenStateWeekday(t *testing.T) {
	cal := NewBusinessCalendar(weekdayHours(), nil)

	state := cal.EffectiveOpenState(localDate(t, 2))
	assert.True(t, state.Open)
	assert.Equal(t, TimeOfDay("09:00"), state.Start)
	assert.Equal(t, TimeOfDay("19:00"), state.End)

	assert.False(t, cal.EffectiveOpenState(localDate(t, 1)).Open, "Sunday rule is closed")
}

func TestEffectiveOpenStateUnconfiguredWeekdayIsClosed(t *testing.T) {
	// only Monday configured; every other weekday must read closed, not
	// unrestricted
	cal := NewBusinessCalendar([]models.BusinessHour{
		{DayOfWeek: 1, IsOpen: true, StartTime: "09:00", EndTime: "19:00"},
	}, nil)

	for day := 3; day <= 8; day++ { // Tue..Sun
		assert.False(t, cal.EffectiveOpenState(localDate(t, day)).Open,
			"unconfigured weekday %s must be closed", localDate(t, day).Weekday())
	}
	assert.True(t, cal.EffectiveOpenState(localDate(t, 2)).Open)
}

func TestHolidayExceptionClosesOpenDay(t *testing.T) {
	cal := NewBusinessCalendar(weekdayHours(), []models.HolidayException{
		{Date: "2026-02-02", IsWorkingDay: false, Description: "inventory day"},
	})

	assert.False(t, cal.EffectiveOpenState(localDate(t, 2)).Open)
	// only that date; the following Monday is untouched
	assert.True(t, cal.EffectiveOpenState(localDate(t, 9)).Open)
}

func TestHolidayExceptionOpensClosedDay(t *testing.T) {
	// Sunday rule exists with hours but is normally closed; the exception
	// flips the verdict and the rule's own hours apply
	cal := NewBusinessCalendar(weekdayHours(), []models.HolidayException{
		{Date: "2026-02-01", IsWorkingDay: true, Description: "bridal event"},
	})

	state := cal.EffectiveOpenState(localDate(t, 1))
	assert.True(t, state.Open)
	assert.Equal(t, TimeOfDay("09:00"), state.Start)
	assert.Equal(t, TimeOfDay("19:00"), state.End)
}

func TestHolidayExceptionCannotOpenDayWithoutHours(t *testing.T) {
	// Sunday has no configured rule at all: an exception marking it a
	// working day has no window to fall back to, so it stays closed
	cal := NewBusinessCalendar([]models.BusinessHour{
		{DayOfWeek: 1, IsOpen: true, StartTime: "09:00", EndTime: "19:00"},
	}, []models.HolidayException{
		{Date: "2026-02-01", IsWorkingDay: true},
	})

	assert.False(t, cal.EffectiveOpenState(localDate(t, 1)).Open)
}

func TestOpenDayWithMalformedWindowIsClosed(t *testing.T) {
	cal := NewBusinessCalendar([]models.BusinessHour{
		{DayOfWeek: 1, IsOpen: true, StartTime: "19:00", EndTime: "09:00"},
		{DayOfWeek: 2, IsOpen: true, StartTime: "", EndTime: ""},
	}, nil)

	assert.False(t, cal.EffectiveOpenState(localDate(t, 2)).Open)
	assert.False(t, cal.EffectiveOpenState(localDate(t, 3)).Open)
}

func TestStaffScheduleWorkingWindow(t *testing.T) {
	sched := NewStaffSchedule([]models.StaffWorkingHour{
		{StaffID: 7, DayOfWeek: 1, IsWorking: true, StartTime: "10:00", EndTime: "16:00"},
		{StaffID: 7, DayOfWeek: 2, IsWorking: false, StartTime: "10:00", EndTime: "16:00"},
	})

	start, end, ok := sched.WorkingWindow(7, 1)
	assert.True(t, ok)
	assert.Equal(t, TimeOfDay("10:00"), start)
	assert.Equal(t, TimeOfDay("16:00"), end)

	_, _, ok = sched.WorkingWindow(7, 2)
	assert.False(t, ok, "inactive day")

	_, _, ok = sched.WorkingWindow(7, 3)
	assert.False(t, ok, "missing row means not working")

	_, _, ok = sched.WorkingWindow(99, 1)
	assert.False(t, ok, "unknown staff means not working")
}
