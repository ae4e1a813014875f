package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salonworks/salon-scheduler/internal/models"
)

func mondayAt(hour, min int, loc *time.Location) time.Time {
	// 2026-02-02 is a Monday
	return time.Date(2026, 2, 2, hour, min, 0, 0, loc)
}

func testClassifier(staff *StaffSchedule, loc *time.Location) *Classifier {
	return NewClassifier(NewBusinessCalendar(weekdayHours(), nil), staff, loc)
}

func TestClassifyBusinessHours(t *testing.T) {
	cl := testClassifier(nil, time.UTC)

	// Monday 09:00-19:00: inside, before opening, and the exclusive end
	// boundary
	assert.Equal(t, ClassWorkingHour, cl.Classify(mondayAt(10, 0, time.UTC), 0))
	assert.Equal(t, ClassWorkingHour, cl.Classify(mondayAt(9, 0, time.UTC), 0))
	assert.Equal(t, ClassNonWorkingHour, cl.Classify(mondayAt(8, 0, time.UTC), 0))
	assert.Equal(t, ClassNonWorkingHour, cl.Classify(mondayAt(19, 0, time.UTC), 0))
	assert.Equal(t, ClassWorkingHour, cl.Classify(mondayAt(18, 59, time.UTC), 0))
}

func TestClassifyWeekend(t *testing.T) {
	cl := testClassifier(nil, time.UTC)

	saturday := time.Date(2026, 2, 7, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, ClassWeekend, cl.Classify(saturday, 0))
	assert.Equal(t, ClassWeekend, cl.Classify(sunday, 0))
}

func TestClassifyClosedWeekdayIsNonWorking(t *testing.T) {
	cal := NewBusinessCalendar(weekdayHours(), []models.HolidayException{
		{Date: "2026-02-02", IsWorkingDay: false},
	})
	cl := NewClassifier(cal, nil, time.UTC)

	// a closed Monday is styled as a non-working day, not a weekend
	assert.Equal(t, ClassNonWorkingHour, cl.Classify(mondayAt(10, 0, time.UTC), 0))
}

func TestClassifyStaffFilter(t *testing.T) {
	sched := NewStaffSchedule([]models.StaffWorkingHour{
		{StaffID: 7, DayOfWeek: 1, IsWorking: true, StartTime: "10:00", EndTime: "16:00"},
		{StaffID: 8, DayOfWeek: 1, IsWorking: false, StartTime: "09:00", EndTime: "19:00"},
	})
	cl := testClassifier(sched, time.UTC)

	assert.Equal(t, ClassWorkingHour, cl.Classify(mondayAt(10, 0, time.UTC), 7))
	assert.Equal(t, ClassStaffNonWorking, cl.Classify(mondayAt(9, 30, time.UTC), 7), "before staff window")
	assert.Equal(t, ClassStaffNonWorking, cl.Classify(mondayAt(16, 0, time.UTC), 7), "staff end boundary is exclusive")
	assert.Equal(t, ClassStaffNonWorking, cl.Classify(mondayAt(10, 0, time.UTC), 8), "day marked not working")
	assert.Equal(t, ClassStaffNonWorking, cl.Classify(mondayAt(10, 0, time.UTC), 42), "no row for staff means not working")
}

func TestClassifyBusinessClosureBeatsStaffSchedule(t *testing.T) {
	// staff 7 claims to work Sundays; business closure must still win
	sched := NewStaffSchedule([]models.StaffWorkingHour{
		{StaffID: 7, DayOfWeek: 0, IsWorking: true, StartTime: "09:00", EndTime: "19:00"},
	})
	cl := testClassifier(sched, time.UTC)

	sunday := time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, ClassWeekend, cl.Classify(sunday, 7))
}

func TestClassifyZeroInstant(t *testing.T) {
	cl := testClassifier(nil, time.UTC)
	assert.Equal(t, ClassInvalid, cl.Classify(time.Time{}, 0))
}

func TestClassifyLocalizesBeforeExtracting(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	// 2026-02-03 02:30 UTC is still Monday 21:30 in New York (UTC-5).
	// A classifier that extracted weekday/time from the raw UTC value
	// would see Tuesday 02:30 and report NonWorkingHour.
	instant := time.Date(2026, 2, 3, 2, 30, 0, 0, time.UTC)

	cal := NewBusinessCalendar([]models.BusinessHour{
		{DayOfWeek: 1, IsOpen: true, StartTime: "09:00", EndTime: "22:00"},
	}, nil)

	assert.Equal(t, ClassWorkingHour, NewClassifier(cal, nil, ny).Classify(instant, 0))
	assert.Equal(t, ClassNonWorkingHour, NewClassifier(cal, nil, time.UTC).Classify(instant, 0))
}
