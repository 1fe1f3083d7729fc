package scheduling

import "github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"

// BookedInterval is one already scheduled range, tagged with the appointment
// it came from so ranges appearing in both parties' calendars count once.
type BookedInterval struct {
	AppointmentID uint
	Interval      Interval
}

// CheckConflict decides whether the candidate may be booked against the
// union of both parties' calendars. Pure; returns on the first hit. The
// order of existing is not meaningful, so which conflicting interval trips
// the check is undefined.
func CheckConflict(candidate Interval, existing []BookedInterval) error {
	seen := make(map[uint]struct{}, len(existing))

	for _, booked := range existing {
		if _, dup := seen[booked.AppointmentID]; dup {
			continue
		}
		seen[booked.AppointmentID] = struct{}{}

		if candidate.ConflictsWith(booked.Interval) {
			return httperr.ErrBusiness("schedule_conflict")
		}
	}

	return nil
}
