package schedule

import (
	"time"

	"github.com/salonworks/salon-scheduler/internal/models"
)

const dateKeyLayout = "2006-01-02"

// DayRule is the salon-wide operating window for one weekday.
type DayRule struct {
	DayOfWeek int
	IsOpen    bool
	Start     TimeOfDay
	End       TimeOfDay
}

// OpenState is the resolved verdict for a concrete date: the weekday
// rule with any holiday exception already applied.
type OpenState struct {
	Open  bool
	Start TimeOfDay
	End   TimeOfDay
}

// BusinessCalendar is an immutable snapshot of a salon's weekly
// operating hours plus its date-specific exception days. Build one from
// freshly fetched rows and throw it away with them; it never refreshes
// itself.
type BusinessCalendar struct {
	rules      map[int]DayRule
	exceptions map[string]bool // date key -> is working day
}

func NewBusinessCalendar(
	hours []models.BusinessHour,
	exceptions []models.HolidayException,
) *BusinessCalendar {

	cal := &BusinessCalendar{
		rules:      make(map[int]DayRule, len(hours)),
		exceptions: make(map[string]bool, len(exceptions)),
	}

	for _, h := range hours {
		if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
			continue
		}
		cal.rules[h.DayOfWeek] = DayRule{
			DayOfWeek: h.DayOfWeek,
			IsOpen:    h.IsOpen,
			Start:     TimeOfDay(h.StartTime),
			End:       TimeOfDay(h.EndTime),
		}
	}

	for _, ex := range exceptions {
		cal.exceptions[ex.Date] = ex.IsWorkingDay
	}

	return cal
}

// RuleFor returns the configured rule for a weekday. ok is false when
// the weekday was never configured; callers must treat that as closed.
func (cal *BusinessCalendar) RuleFor(weekday int) (DayRule, bool) {
	rule, ok := cal.rules[weekday]
	return rule, ok
}

// EffectiveOpenState resolves the open/closed verdict for a concrete
// date, already expressed in the viewer's location. Precedence:
//
//  1. no weekday rule -> closed (missing configuration never means
//     unrestricted booking)
//  2. holiday exception for the date overrides the rule's open flag
//  3. open days without an ordered start/end window are unusable and
//     report closed
//
// Exception days carry no hours of their own: a date forced open uses
// the weekday rule's window.
func (cal *BusinessCalendar) EffectiveOpenState(date time.Time) OpenState {
	rule, ok := cal.RuleFor(int(date.Weekday()))
	if !ok {
		return OpenState{}
	}

	open := rule.IsOpen
	if isWorking, found := cal.exceptions[date.Format(dateKeyLayout)]; found {
		open = isWorking
	}

	if !open || !IsOrdered(rule.Start, rule.End) {
		return OpenState{}
	}

	return OpenState{Open: true, Start: rule.Start, End: rule.End}
}
