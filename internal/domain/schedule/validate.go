package schedule

import "time"

// Reject reason codes surfaced through Decision.Code.
const (
	ReasonInvalidInstant       = "invalid_instant"
	ReasonBusinessClosed       = "business_closed"
	ReasonOutsideBusinessHours = "outside_business_hours"
	ReasonOutsideStaffHours    = "outside_staff_hours"
)

// Candidate is a user-proposed placement: an instant plus an optional
// staff column (0 = no staff targeted). Ephemeral, one per gesture.
type Candidate struct {
	Instant time.Time
	StaffID uint
}

// Decision is the validator's verdict. Rejections carry the
// classification, a stable reason code, and, when one applies, the
// window the candidate fell outside of so the UI can explain itself.
type Decision struct {
	Allowed     bool
	Class       Classification
	Code        string
	WindowStart TimeOfDay
	WindowEnd   TimeOfDay
}

// HasWindow reports whether the decision carries window bounds worth
// showing to the user.
func (d Decision) HasWindow() bool {
	return IsOrdered(d.WindowStart, d.WindowEnd)
}

// ValidateSelection gates a user-initiated slot selection. It is pure
// and idempotent over the classifier's snapshots: the same candidate
// always yields the same decision, and every outcome is a value. It
// runs inside click handlers where a panic would take the calendar
// down with it.
func (cl *Classifier) ValidateSelection(cand Candidate) Decision {
	class := cl.Classify(cand.Instant, cand.StaffID)
	if class == ClassWorkingHour {
		return Decision{Allowed: true, Class: class}
	}

	d := Decision{Class: class}

	switch class {
	case ClassInvalid:
		d.Code = ReasonInvalidInstant

	case ClassWeekend:
		d.Code = ReasonBusinessClosed

	case ClassNonWorkingHour:
		state := cl.cal.EffectiveOpenState(cand.Instant.In(cl.loc))
		if state.Open {
			// the day is open, the time just falls outside the window
			d.Code = ReasonOutsideBusinessHours
			d.WindowStart = state.Start
			d.WindowEnd = state.End
		} else {
			d.Code = ReasonBusinessClosed
		}

	case ClassStaffNonWorking:
		d.Code = ReasonOutsideStaffHours
		weekday := int(cand.Instant.In(cl.loc).Weekday())
		if start, end, ok := cl.staff.WorkingWindow(cand.StaffID, weekday); ok {
			d.WindowStart = start
			d.WindowEnd = end
		}
	}

	return d
}
