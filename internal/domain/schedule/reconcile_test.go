package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salonworks/salon-scheduler/internal/models"
)

func TestReconcileMovePreservesDuration(t *testing.T) {
	cl := testClassifier(nil, time.UTC)

	out := cl.Reconcile(Gesture{
		Kind:     GestureMove,
		Start:    mondayAt(10, 0, time.UTC),
		End:      mondayAt(10, 45, time.UTC),
		NewStart: mondayAt(14, 0, time.UTC),
	})

	assert.True(t, out.Applied)
	assert.Equal(t, mondayAt(14, 0, time.UTC), out.Update.Start)
	assert.Equal(t, mondayAt(14, 45, time.UTC), out.Update.End)
}

func TestReconcileMoveToClosedSlotReverts(t *testing.T) {
	cl := testClassifier(nil, time.UTC)

	// valid Monday 10:00 appointment dragged to 08:00, before opening
	out := cl.Reconcile(Gesture{
		Kind:     GestureMove,
		Start:    mondayAt(10, 0, time.UTC),
		End:      mondayAt(11, 0, time.UTC),
		NewStart: mondayAt(8, 0, time.UTC),
	})

	assert.False(t, out.Applied, "no update instruction may be emitted")
	assert.Equal(t, ClassNonWorkingHour, out.Decision.Class)
	assert.Equal(t, ReasonOutsideBusinessHours, out.Decision.Code)
	assert.Equal(t, Update{}, out.Update)
}

func TestReconcileResizeKeepsStart(t *testing.T) {
	cl := testClassifier(nil, time.UTC)

	out := cl.Reconcile(Gesture{
		Kind:   GestureResize,
		Start:  mondayAt(10, 0, time.UTC),
		End:    mondayAt(10, 30, time.UTC),
		NewEnd: mondayAt(11, 15, time.UTC),
	})

	assert.True(t, out.Applied)
	assert.Equal(t, mondayAt(10, 0, time.UTC), out.Update.Start)
	assert.Equal(t, mondayAt(11, 15, time.UTC), out.Update.End)
}

func TestReconcileResizeToNothingRejected(t *testing.T) {
	cl := testClassifier(nil, time.UTC)

	out := cl.Reconcile(Gesture{
		Kind:   GestureResize,
		Start:  mondayAt(10, 0, time.UTC),
		End:    mondayAt(10, 30, time.UTC),
		NewEnd: mondayAt(10, 0, time.UTC),
	})

	assert.False(t, out.Applied)
	assert.Equal(t, ClassInvalid, out.Decision.Class)
	assert.Equal(t, ReasonInvalidInstant, out.Decision.Code)
}

func TestReconcileCrossColumnDropRevalidatesTargetStaff(t *testing.T) {
	sched := NewStaffSchedule([]models.StaffWorkingHour{
		{StaffID: 7, DayOfWeek: 1, IsWorking: true, StartTime: "09:00", EndTime: "19:00"},
		{StaffID: 8, DayOfWeek: 1, IsWorking: true, StartTime: "13:00", EndTime: "19:00"},
	})
	cl := testClassifier(sched, time.UTC)

	gesture := Gesture{
		Kind:       GestureMove,
		Start:      mondayAt(10, 0, time.UTC),
		End:        mondayAt(11, 0, time.UTC),
		StaffID:    7,
		NewStart:   mondayAt(10, 0, time.UTC),
		NewStaffID: 8,
	}

	// 10:00 is fine for staff 7 but before staff 8's window
	out := cl.Reconcile(gesture)
	assert.False(t, out.Applied)
	assert.Equal(t, ClassStaffNonWorking, out.Decision.Class)

	// afternoon drop on the same column succeeds and carries the new staff
	gesture.NewStart = mondayAt(14, 0, time.UTC)
	out = cl.Reconcile(gesture)
	assert.True(t, out.Applied)
	assert.Equal(t, uint(8), out.Update.StaffID)
}
