package scheduling

import (
	"time"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
)

// ===============================
// Interval
// ===============================

// Interval is a booked time range. Instants are truncated to whole minutes
// on construction; sub-minute differences are not distinguishable.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	start = start.Truncate(time.Minute)
	end = end.Truncate(time.Minute)

	if !start.Before(end) {
		return Interval{}, httperr.ErrBusiness("invalid_interval")
	}

	return Interval{start: start, end: end}, nil
}

func (i Interval) Start() time.Time {
	return i.start
}

func (i Interval) End() time.Time {
	return i.end
}

func (i Interval) IsZero() bool {
	return i.start.IsZero() && i.end.IsZero()
}

// ===============================
// Overlap rules
// ===============================

// ConflictsWith reports whether the two intervals occupy common time.
//
// A candidate conflicts with an existing booking when it starts during it
// (including exactly at its start), ends during it (including exactly at its
// end), or fully contains it. Back-to-back intervals, where one ends at the
// exact minute the other starts, do not conflict.
func (i Interval) ConflictsWith(other Interval) bool {
	if !i.start.Before(other.start) && i.start.Before(other.end) {
		return true
	}

	if i.end.After(other.start) && !i.end.After(other.end) {
		return true
	}

	if i.start.Before(other.start) && i.end.After(other.end) {
		return true
	}

	return false
}
