package appointment

import (
	"context"
	"time"

	domain "github.com/salonworks/salon-scheduler/internal/domain/appointment"
	"github.com/salonworks/salon-scheduler/internal/domain/schedule"
)

// SlotClass is one cell of the calendar day grid: a local HH:MM label
// plus how the engine classified it for the requested staff column.
type SlotClass struct {
	Time     string `json:"time"`
	Class    string `json:"class"`
	Bookable bool   `json:"bookable"`
}

// CalendarGrid classifies every interval of a day so the frontend can
// paint the grid (and grey out what is not bookable) in one request.
type CalendarGrid struct {
	repo domain.Repository
}

func NewCalendarGrid(repo domain.Repository) *CalendarGrid {
	return &CalendarGrid{repo: repo}
}

func (uc *CalendarGrid) Execute(
	ctx context.Context,
	salonID uint,
	staffID uint,
	date time.Time,
	intervalMin int,
) ([]SlotClass, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	cl, err := loadClassifier(ctx, uc.repo, salon, staffID)
	if err != nil {
		return nil, err
	}

	local := date.In(cl.Location())
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, cl.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	step := time.Duration(intervalMin) * time.Minute

	grid := make([]SlotClass, 0, 24*60/intervalMin)
	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(step) {
		class := cl.Classify(cur, staffID)
		grid = append(grid, SlotClass{
			Time:     cur.Format("15:04"),
			Class:    class.String(),
			Bookable: class.Bookable(),
		})
	}

	return grid, nil
}

// ValidateSlot runs the selection validator for a single candidate
// instant, returning the engine's decision as a value.
type ValidateSlot struct {
	repo domain.Repository
}

func NewValidateSlot(repo domain.Repository) *ValidateSlot {
	return &ValidateSlot{repo: repo}
}

func (uc *ValidateSlot) Execute(
	ctx context.Context,
	salonID uint,
	staffID uint,
	instant time.Time,
) (schedule.Decision, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return schedule.Decision{}, err
	}

	cl, err := loadClassifier(ctx, uc.repo, salon, staffID)
	if err != nil {
		return schedule.Decision{}, err
	}

	return cl.ValidateSelection(schedule.Candidate{
		Instant: instant,
		StaffID: staffID,
	}), nil
}
