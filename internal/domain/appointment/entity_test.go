package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
)

func TestCancelScheduled(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusScheduled)}

	assert.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, &now, ap.CancelledAt)
}

func TestCancelTwiceFails(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCancelled)}
	err := Cancel(ap, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCompleteScheduled(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusScheduled)}

	assert.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.Equal(t, &now, ap.CompletedAt)
}

func TestRescheduleKeepsStaffWhenZero(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled), StaffID: 7}
	start := time.Now()
	end := start.Add(30 * time.Minute)

	assert.NoError(t, Reschedule(ap, start, end, 0))
	assert.Equal(t, uint(7), ap.StaffID)
	assert.Equal(t, start, ap.StartTime)
	assert.Equal(t, end, ap.EndTime)
}

func TestRescheduleCompletedFails(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCompleted)}
	err := Reschedule(ap, time.Now(), time.Now().Add(time.Hour), 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
