package appointment

import (
	"time"

	"github.com/salonworks/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Reschedule applies new bounds (and possibly a new staff column) to a
// scheduled appointment. Last write wins; concurrent edits are the
// persistence layer's problem.
func Reschedule(ap *models.Appointment, start, end time.Time, staffID uint) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.StartTime = start
	ap.EndTime = end
	if staffID != 0 {
		ap.StaffID = staffID
	}
	return nil
}
