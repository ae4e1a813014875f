package appointment

import (
	"context"
	"time"

	domain "github.com/salonworks/salon-scheduler/internal/domain/appointment"
	"github.com/salonworks/salon-scheduler/internal/domain/schedule"
	"github.com/salonworks/salon-scheduler/internal/models"
	"github.com/salonworks/salon-scheduler/internal/timezone"
)

// loadClassifier assembles the scheduling engine's snapshots for one
// salon: the business calendar plus working hours for every staff
// member the caller is about to classify against. Snapshots are built
// fresh per request; the engine never refreshes them itself.
func loadClassifier(
	ctx context.Context,
	repo domain.Repository,
	salon *models.Salon,
	staffIDs ...uint,
) (*schedule.Classifier, error) {

	hours, exceptions, err := repo.GetCalendarData(ctx, salon.ID)
	if err != nil {
		return nil, err
	}

	var staffRows []models.StaffWorkingHour
	seen := make(map[uint]bool, len(staffIDs))
	for _, id := range staffIDs {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true

		rows, err := repo.ListStaffWorkingHours(ctx, id)
		if err != nil {
			return nil, err
		}
		staffRows = append(staffRows, rows...)
	}

	return schedule.NewClassifier(
		schedule.NewBusinessCalendar(hours, exceptions),
		schedule.NewStaffSchedule(staffRows),
		timezone.Location(salon.Timezone),
	), nil
}

// dayAnchor converts an HH:MM bound into a concrete instant on the same
// local day as ref.
func dayAnchor(ref time.Time, t schedule.TimeOfDay) time.Time {
	m := t.Minutes()
	if m < 0 {
		m = 0
	}
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		m/60, m%60, 0, 0,
		ref.Location(),
	)
}
