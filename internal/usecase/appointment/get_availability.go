package appointment

import (
	"context"
	"time"

	domain "github.com/salonworks/salon-scheduler/internal/domain/appointment"
	"github.com/salonworks/salon-scheduler/internal/domain/schedule"
	"github.com/salonworks/salon-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute enumerates the free slots for one (staff, service, date). The
// day's window is the intersection of the salon's effective hours (with
// holiday exceptions applied) and the staff member's working hours;
// already-booked appointments are skipped.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	cl, err := loadClassifier(ctx, uc.repo, salon, in.StaffID)
	if err != nil {
		return nil, err
	}

	local := in.Date.In(cl.Location())

	state := cl.Calendar().EffectiveOpenState(local)
	if !state.Open {
		return []domain.TimeSlot{}, nil
	}

	staffStart, staffEnd, ok := cl.StaffSchedule().WorkingWindow(in.StaffID, int(local.Weekday()))
	if !ok {
		return []domain.TimeSlot{}, nil
	}

	// intersect the business and staff windows
	start, end := state.Start, state.End
	if staffStart.Minutes() > start.Minutes() {
		start = staffStart
	}
	if staffEnd.Minutes() < end.Minutes() {
		end = staffEnd
	}
	if !schedule.IsOrdered(start, end) {
		return []domain.TimeSlot{}, nil
	}

	dayStart := dayAnchor(local, start)
	dayEnd := dayAnchor(local, end)

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.StaffID,
		dayAnchor(local, "00:00"),
		dayAnchor(local, "00:00").Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(svc.DurationMin) * time.Minute
	slots := []domain.TimeSlot{}

	apIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		// skip appointments that ended before this slot
		for apIdx < len(appointments) && !appointments[apIdx].EndTime.After(slotStart) {
			apIdx++
		}

		conflict := false
		if apIdx < len(appointments) {
			ap := appointments[apIdx]
			if slotStart.Before(ap.EndTime) && slotEnd.After(ap.StartTime) {
				conflict = true
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots, nil
}
