package appointment

import (
	"time"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/domain/scheduling"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
)

// Instants arrive as ISO-8601 strings at the request boundary. A bare local
// datetime is interpreted in the clinic timezone.
func parseInstant(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}

	if t, err := time.ParseInLocation("2006-01-02T15:04", s, loc); err == nil {
		return t, nil
	}

	return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
}

func parseInterval(startStr, endStr string, loc *time.Location) (scheduling.Interval, error) {
	start, err := parseInstant(startStr, loc)
	if err != nil {
		return scheduling.Interval{}, err
	}

	end, err := parseInstant(endStr, loc)
	if err != nil {
		return scheduling.Interval{}, err
	}

	return scheduling.NewInterval(start, end)
}

func parseDay(dayStr string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", dayStr, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	return day, nil
}
