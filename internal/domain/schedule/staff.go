package schedule

import "github.com/salonworks/salon-scheduler/internal/models"

// StaffDayRule is one staff member's window for one weekday.
type StaffDayRule struct {
	StaffID   uint
	DayOfWeek int
	IsWorking bool
	Start     TimeOfDay
	End       TimeOfDay
}

type staffDay struct {
	staffID uint
	weekday int
}

// StaffSchedule is an immutable snapshot of per-staff weekly working
// hours. A missing (staff, weekday) row means not working that day,
// mirroring the calendar's closed-by-default policy.
type StaffSchedule struct {
	rules map[staffDay]StaffDayRule
}

func NewStaffSchedule(rows []models.StaffWorkingHour) *StaffSchedule {
	s := &StaffSchedule{rules: make(map[staffDay]StaffDayRule, len(rows))}

	for _, r := range rows {
		if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
			continue
		}
		s.rules[staffDay{r.StaffID, r.DayOfWeek}] = StaffDayRule{
			StaffID:   r.StaffID,
			DayOfWeek: r.DayOfWeek,
			IsWorking: r.IsWorking,
			Start:     TimeOfDay(r.StartTime),
			End:       TimeOfDay(r.EndTime),
		}
	}

	return s
}

func (s *StaffSchedule) RuleFor(staffID uint, weekday int) (StaffDayRule, bool) {
	rule, ok := s.rules[staffDay{staffID, weekday}]
	return rule, ok
}

// WorkingWindow returns the staff member's window for a weekday. ok is
// false when there is no row, the row is marked not working, or its
// bounds are not an ordered HH:MM range.
func (s *StaffSchedule) WorkingWindow(staffID uint, weekday int) (start, end TimeOfDay, ok bool) {
	rule, found := s.RuleFor(staffID, weekday)
	if !found || !rule.IsWorking || !IsOrdered(rule.Start, rule.End) {
		return "", "", false
	}
	return rule.Start, rule.End, true
}
