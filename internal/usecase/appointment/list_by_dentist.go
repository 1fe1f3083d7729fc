package appointment

import (
	"context"
	"time"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/authz"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/domain/scheduling"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/dto"
)

type ListByDentist struct {
	repo scheduling.Repository
	loc  *time.Location
}

func NewListByDentist(
	repo scheduling.Repository,
	loc *time.Location,
) *ListByDentist {
	return &ListByDentist{
		repo: repo,
		loc:  loc,
	}
}

// Execute lists a dentist's calendar. Finished appointments are excluded
// unless asked for; an optional date narrows the read to one clinic day.
func (uc *ListByDentist) Execute(
	ctx context.Context,
	actor authz.Actor,
	dentistID uint,
	dateStr string,
	includeFinished bool,
) ([]dto.AppointmentListDTO, error) {

	if err := authz.Gate(actor, authz.OpListDentistCalendar, 0); err != nil {
		return nil, err
	}

	now := time.Now().In(uc.loc)

	filter := scheduling.ListFilter{
		IncludeFinished: includeFinished,
		Now:             now,
	}

	if dateStr != "" {
		day, err := parseDay(dateStr, uc.loc)
		if err != nil {
			return nil, err
		}
		filter.Day = &day
	}

	aps, err := uc.repo.ListByDentist(ctx, dentistID, filter)
	if err != nil {
		return nil, err
	}

	return toListDTOs(aps, now), nil
}
