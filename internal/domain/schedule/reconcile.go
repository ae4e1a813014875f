package schedule

import "time"

// GestureKind distinguishes a drag (move, duration preserved) from a
// resize (start fixed, end moves).
type GestureKind int

const (
	GestureMove GestureKind = iota
	GestureResize
)

// Gesture describes a finished drag or resize over an existing
// appointment. For a move, NewStart is the drop target and the original
// duration is preserved; for a resize, NewEnd is the dragged edge and
// the original start stays put. NewStaffID is set when the appointment
// was dropped on a different staff column (0 = column unchanged).
type Gesture struct {
	Kind GestureKind

	Start   time.Time
	End     time.Time
	StaffID uint

	NewStart   time.Time
	NewEnd     time.Time
	NewStaffID uint
}

// Update is the instruction emitted for an accepted gesture. The
// reconciler persists nothing itself; the caller hands this to the
// appointment-update collaborator.
type Update struct {
	Start   time.Time
	End     time.Time
	StaffID uint
}

// Outcome is the result of reconciling one gesture. When Applied is
// false the caller reverts the visual position and surfaces Decision;
// no update may be sent.
type Outcome struct {
	Applied  bool
	Update   Update
	Decision Decision
}

// Reconcile recomputes an appointment's bounds from a gesture and
// re-validates the result. One gesture at a time by construction
// (gestures are user-paced), so there is nothing to lock.
func (cl *Classifier) Reconcile(g Gesture) Outcome {
	staffID := g.StaffID
	if g.NewStaffID != 0 {
		staffID = g.NewStaffID
	}

	var start, end time.Time
	switch g.Kind {
	case GestureResize:
		start = g.Start
		end = g.NewEnd
	default:
		duration := g.End.Sub(g.Start)
		start = g.NewStart
		end = start.Add(duration)
	}

	if start.IsZero() || !end.After(start) {
		return Outcome{Decision: Decision{Class: ClassInvalid, Code: ReasonInvalidInstant}}
	}

	decision := cl.ValidateSelection(Candidate{Instant: start, StaffID: staffID})
	if !decision.Allowed {
		return Outcome{Decision: decision}
	}

	return Outcome{
		Applied:  true,
		Update:   Update{Start: start, End: end, StaffID: staffID},
		Decision: decision,
	}
}
