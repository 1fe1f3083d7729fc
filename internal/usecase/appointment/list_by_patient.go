package appointment

import (
	"context"
	"time"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/authz"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/domain/scheduling"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/dto"
)

type ListByPatient struct {
	repo scheduling.Repository
	loc  *time.Location
}

func NewListByPatient(
	repo scheduling.Repository,
	loc *time.Location,
) *ListByPatient {
	return &ListByPatient{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListByPatient) Execute(
	ctx context.Context,
	actor authz.Actor,
	patientID uint,
	dateStr string,
	includeFinished bool,
) ([]dto.AppointmentListDTO, error) {

	if err := authz.Gate(actor, authz.OpListPatientCalendar, patientID); err != nil {
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

	aps, err := uc.repo.ListByPatient(ctx, patientID, filter)
	if err != nil {
		return nil, err
	}

	return toListDTOs(aps, now), nil
}
