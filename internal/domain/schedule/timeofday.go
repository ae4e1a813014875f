package schedule

// TimeOfDay is a wall-clock time in zero-padded 24h "HH:MM" form.
// Zero-padded HH:MM sorts lexicographically in chronological order, so
// comparisons work on minutes without ever parsing a full date.
type TimeOfDay string

// IsValid reports whether t is a well-formed HH:MM with 00<=HH<=23 and
// 00<=MM<=59.
func (t TimeOfDay) IsValid() bool {
	if len(t) != 5 || t[2] != ':' {
		return false
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return false
		}
	}

	hh := int(t[0]-'0')*10 + int(t[1]-'0')
	mm := int(t[3]-'0')*10 + int(t[4]-'0')
	return hh <= 23 && mm <= 59
}

// Minutes converts t to minutes since midnight. Callers must check
// IsValid first; an invalid value yields -1 so it never compares equal
// to a real time.
func (t TimeOfDay) Minutes() int {
	if !t.IsValid() {
		return -1
	}
	hh := int(t[0]-'0')*10 + int(t[1]-'0')
	mm := int(t[3]-'0')*10 + int(t[4]-'0')
	return hh*60 + mm
}

// IsOrdered reports whether start and end are both valid and form a
// non-empty range. Zero-length ranges are not ordered.
func IsOrdered(start, end TimeOfDay) bool {
	if !start.IsValid() || !end.IsValid() {
		return false
	}
	return start.Minutes() < end.Minutes()
}

// Overlaps reports whether the half-open ranges [aStart,aEnd) and
// [bStart,bEnd) intersect. False whenever any bound is invalid.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	if !IsOrdered(aStart, aEnd) || !IsOrdered(bStart, bEnd) {
		return false
	}
	return aStart.Minutes() < bEnd.Minutes() && bStart.Minutes() < aEnd.Minutes()
}

// within reports whether t falls inside the half-open window [start,end).
func within(start, end, t TimeOfDay) bool {
	if !IsOrdered(start, end) || !t.IsValid() {
		return false
	}
	m := t.Minutes()
	return m >= start.Minutes() && m < end.Minutes()
}
