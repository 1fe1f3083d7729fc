package scheduling

import (
	"time"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
)

// ===============================
// Business hours
// ===============================

const (
	DefaultOpeningHour = 8

	// DefaultClosingHour is compared against the hour component of the end
	// instant only: an appointment ending 18:45 still passes. The original
	// business rule works this way; StrictClose switches to the full instant.
	DefaultClosingHour = 18
)

type BusinessHours struct {
	OpeningHour int
	ClosingHour int
	StrictClose bool
}

func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		OpeningHour: DefaultOpeningHour,
		ClosingHour: DefaultClosingHour,
	}
}

// Validate checks the candidate against clinic opening hours. Too-early is
// reported before too-late.
func (b BusinessHours) Validate(candidate Interval) error {
	if candidate.Start().Hour() < b.OpeningHour {
		return httperr.ErrBusiness("too_early")
	}

	if b.StrictClose {
		end := candidate.End()
		closing := time.Date(
			end.Year(), end.Month(), end.Day(),
			b.ClosingHour, 0, 0, 0,
			end.Location(),
		)
		if end.After(closing) {
			return httperr.ErrBusiness("too_late")
		}
		return nil
	}

	if candidate.End().Hour() > b.ClosingHour {
		return httperr.ErrBusiness("too_late")
	}

	return nil
}
