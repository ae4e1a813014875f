package schedule

import "time"

// Classification is the categorical verdict for one calendar slot.
type Classification int

const (
	ClassInvalid Classification = iota
	ClassWorkingHour
	ClassNonWorkingHour
	ClassWeekend
	ClassStaffNonWorking
)

func (c Classification) String() string {
	switch c {
	case ClassWorkingHour:
		return "working_hour"
	case ClassNonWorkingHour:
		return "non_working_hour"
	case ClassWeekend:
		return "weekend"
	case ClassStaffNonWorking:
		return "staff_non_working"
	default:
		return "invalid"
	}
}

// Bookable reports whether a slot with this classification accepts an
// appointment.
func (c Classification) Bookable() bool {
	return c == ClassWorkingHour
}

// Classifier decides, per instant, how a calendar slot is classified
// against a business calendar and (optionally) a staff schedule. It is
// a pure computation over the snapshots it was built with: no I/O, no
// mutation, safe to call from any number of goroutines.
type Classifier struct {
	cal   *BusinessCalendar
	staff *StaffSchedule
	loc   *time.Location
}

// NewClassifier builds a classifier over the given snapshots. loc is
// the viewer's time zone; instants are localized into it before any
// weekday or wall-clock extraction (instants usually arrive in UTC, and
// extracting components without localizing shifts the whole grid by the
// zone offset). A nil loc falls back to time.Local.
func NewClassifier(cal *BusinessCalendar, staff *StaffSchedule, loc *time.Location) *Classifier {
	if loc == nil {
		loc = time.Local
	}
	if cal == nil {
		cal = NewBusinessCalendar(nil, nil)
	}
	if staff == nil {
		staff = NewStaffSchedule(nil)
	}
	return &Classifier{cal: cal, staff: staff, loc: loc}
}

// Location returns the viewer location instants are localized into.
func (cl *Classifier) Location() *time.Location { return cl.loc }

// Calendar returns the business-calendar snapshot.
func (cl *Classifier) Calendar() *BusinessCalendar { return cl.cal }

// StaffSchedule returns the staff-schedule snapshot.
func (cl *Classifier) StaffSchedule() *StaffSchedule { return cl.staff }

// Classify returns the verdict for an instant, optionally narrowed to
// one staff member's column (staffID 0 means no staff filter).
//
// Precedence is load-bearing and ordered: a closed business always wins
// over anything the staff schedule says, and staff constraints only
// narrow an already-open business window.
func (cl *Classifier) Classify(instant time.Time, staffID uint) Classification {
	if instant.IsZero() {
		return ClassInvalid
	}

	local := instant.In(cl.loc)
	weekday := int(local.Weekday())
	tod := TimeOfDay(local.Format("15:04"))

	state := cl.cal.EffectiveOpenState(local)
	if !state.Open {
		if local.Weekday() == time.Saturday || local.Weekday() == time.Sunday {
			return ClassWeekend
		}
		return ClassNonWorkingHour
	}

	if !within(state.Start, state.End, tod) {
		return ClassNonWorkingHour
	}

	if staffID != 0 {
		start, end, ok := cl.staff.WorkingWindow(staffID, weekday)
		if !ok || !within(start, end, tod) {
			return ClassStaffNonWorking
		}
	}

	return ClassWorkingHour
}
