package appointment

import (
	"context"
	"time"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/authz"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/domain/scheduling"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/dto"
)

type ListByDay struct {
	repo scheduling.Repository
	loc  *time.Location
}

func NewListByDay(
	repo scheduling.Repository,
	loc *time.Location,
) *ListByDay {
	return &ListByDay{
		repo: repo,
		loc:  loc,
	}
}

// Execute lists every appointment of one clinic day across all dentists.
func (uc *ListByDay) Execute(
	ctx context.Context,
	actor authz.Actor,
	dateStr string,
	includeFinished bool,
) ([]dto.AppointmentListDTO, error) {

	if err := authz.Gate(actor, authz.OpListClinicDay, 0); err != nil {
		return nil, err
	}

	day, err := parseDay(dateStr, uc.loc)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, uc.loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	aps, err := uc.repo.ListByDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(uc.loc)

	if !includeFinished {
		kept := aps[:0]
		for i := range aps {
			if !aps[i].Finished(now) {
				kept = append(kept, aps[i])
			}
		}
		aps = kept
	}

	return toListDTOs(aps, now), nil
}
