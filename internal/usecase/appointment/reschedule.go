package appointment

import (
	"context"
	"time"

	"github.com/salonworks/salon-scheduler/internal/audit"
	domain "github.com/salonworks/salon-scheduler/internal/domain/appointment"
	"github.com/salonworks/salon-scheduler/internal/domain/schedule"
	"github.com/salonworks/salon-scheduler/internal/httperr"
	"github.com/salonworks/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleKind string

const (
	RescheduleMove   RescheduleKind = "move"
	RescheduleResize RescheduleKind = "resize"
)

type RescheduleAppointmentInput struct {
	SalonID       uint
	StaffID       uint // staff who owns the appointment
	AppointmentID uint

	Kind RescheduleKind

	NewStart   time.Time // move target (Kind=move)
	NewEnd     time.Time // dragged edge (Kind=resize)
	NewStaffID uint      // target column on cross-column drops, 0 = unchanged
}

// ======================================================
// USE CASE
// ======================================================

// RescheduleAppointment turns a finished drag or resize gesture into a
// persisted update. The engine's reconciler decides; a rejection comes
// back as a business error plus the decision so the caller can tell the
// user which window was violated, and nothing is written.
type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, schedule.Decision, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, schedule.Decision{}, err
	}

	ap, err := uc.repo.GetAppointmentForStaff(ctx, in.AppointmentID, in.StaffID)
	if err != nil {
		return nil, schedule.Decision{}, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, schedule.Decision{}, err
	}

	cl, err := loadClassifier(ctx, uc.repo, salon, ap.StaffID, in.NewStaffID)
	if err != nil {
		return nil, schedule.Decision{}, err
	}

	kind := schedule.GestureMove
	if in.Kind == RescheduleResize {
		kind = schedule.GestureResize
	}

	outcome := cl.Reconcile(schedule.Gesture{
		Kind:       kind,
		Start:      ap.StartTime,
		End:        ap.EndTime,
		StaffID:    ap.StaffID,
		NewStart:   in.NewStart,
		NewEnd:     in.NewEnd,
		NewStaffID: in.NewStaffID,
	})

	if !outcome.Applied {
		return nil, outcome.Decision, httperr.ErrBusiness(outcome.Decision.Code)
	}

	// last minute of the new range must still be bookable
	lastMinute := outcome.Update.End.Add(-time.Minute)
	if !cl.Classify(lastMinute, outcome.Update.StaffID).Bookable() {
		rejected := cl.ValidateSelection(schedule.Candidate{
			Instant: lastMinute,
			StaffID: outcome.Update.StaffID,
		})
		return nil, rejected, httperr.ErrBusiness(rejected.Code)
	}

	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		outcome.Update.StaffID,
		outcome.Update.Start,
		outcome.Update.End,
		ap.ID,
	); err != nil {
		return nil, schedule.Decision{}, err
	}

	oldStart, oldEnd := ap.StartTime, ap.EndTime
	if err := domain.Reschedule(ap, outcome.Update.Start, outcome.Update.End, outcome.Update.StaffID); err != nil {
		return nil, schedule.Decision{}, err
	}

	// last write wins: a concurrent edit to the same appointment is the
	// persistence layer's race to lose, acceptable for a staffing tool
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, schedule.Decision{}, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.StaffID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"old_start": oldStart,
			"old_end":   oldEnd,
			"new_start": ap.StartTime,
			"new_end":   ap.EndTime,
			"staff_id":  ap.StaffID,
		},
	})

	return ap, outcome.Decision, nil
}
