package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/audit"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/domain/scheduling"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/models"
)

func newEditUC(repo scheduling.Repository, excludeOwn bool) *EditAppointment {
	dispatcher := audit.NewDispatcher(audit.New(nil))
	return NewEditAppointment(repo, scheduling.DefaultBusinessHours(), dispatcher, time.UTC, excludeOwn)
}

func seedAppointment(t *testing.T, repo *fakeRepository, startsAt, endsAt string) *models.Appointment {
	t.Helper()

	uc := newCreateUC(repo)
	ap, err := uc.Execute(context.Background(), staffActor(), bookingInput(startsAt, endsAt))
	require.NoError(t, err)
	return ap
}

func editInput(id uint, startsAt, endsAt string) EditAppointmentInput {
	return EditAppointmentInput{
		AppointmentID: id,
		DentistID:     1,
		PatientID:     10,
		ServiceID:     100,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
	}
}

// By default the edited appointment's own slot stays in its conflict set,
// so any move overlapping the current window is rejected.
func TestEditAppointment_SelfOverlapRejectedByDefault(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(t, repo, "2026-09-14T09:00", "2026-09-14T10:00")

	uc := newEditUC(repo, false)

	_, err := uc.Execute(context.Background(), staffActor(), editInput(ap.ID, "2026-09-14T09:30", "2026-09-14T10:30"))
	assert.True(t, httperr.IsBusiness(err, "schedule_conflict"))
}

func TestEditAppointment_MoveToFreeSlot(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(t, repo, "2026-09-14T09:00", "2026-09-14T10:00")

	uc := newEditUC(repo, false)

	updated, err := uc.Execute(context.Background(), staffActor(), editInput(ap.ID, "2026-09-14T14:00", "2026-09-14T15:00"))
	require.NoError(t, err)

	assert.Equal(t, ap.ID, updated.ID)
	assert.Equal(t, time.Date(2026, 9, 14, 14, 0, 0, 0, time.UTC), updated.StartsAt)

	stored, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.StartsAt, stored.StartsAt)
}

func TestEditAppointment_SelfOverlapAllowedWhenExcluded(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(t, repo, "2026-09-14T09:00", "2026-09-14T10:00")

	uc := newEditUC(repo, true)

	updated, err := uc.Execute(context.Background(), staffActor(), editInput(ap.ID, "2026-09-14T09:30", "2026-09-14T10:30"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC), updated.StartsAt)
}

func TestEditAppointment_ConflictWithOtherAppointment(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(t, repo, "2026-09-14T09:00", "2026-09-14T10:00")
	seedAppointment(t, repo, "2026-09-14T11:00", "2026-09-14T12:00")

	uc := newEditUC(repo, true)

	_, err := uc.Execute(context.Background(), staffActor(), editInput(ap.ID, "2026-09-14T11:30", "2026-09-14T12:30"))
	assert.True(t, httperr.IsBusiness(err, "schedule_conflict"))
}

func TestEditAppointment_NotFound(t *testing.T) {
	repo := newFakeRepository()
	uc := newEditUC(repo, false)

	_, err := uc.Execute(context.Background(), staffActor(), editInput(999, "2026-09-14T09:00", "2026-09-14T10:00"))
	assert.True(t, httperr.IsBusiness(err, "not_found"))
}

func TestEditAppointment_PatientCannotEditOthers(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(t, repo, "2026-09-14T09:00", "2026-09-14T10:00")

	uc := newEditUC(repo, false)

	_, err := uc.Execute(context.Background(), patientActor(11), editInput(ap.ID, "2026-09-14T14:00", "2026-09-14T15:00"))
	assert.True(t, httperr.IsBusiness(err, "unauthorized"))
}

func TestEditAppointment_PatientCannotReassignToOthers(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(t, repo, "2026-09-14T09:00", "2026-09-14T10:00")

	uc := newEditUC(repo, false)

	in := editInput(ap.ID, "2026-09-14T14:00", "2026-09-14T15:00")
	in.PatientID = 11
	_, err := uc.Execute(context.Background(), patientActor(10), in)
	assert.True(t, httperr.IsBusiness(err, "unauthorized"))
}

func TestEditAppointment_RevalidatesBusinessHours(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(t, repo, "2026-09-14T09:00", "2026-09-14T10:00")

	uc := newEditUC(repo, true)

	_, err := uc.Execute(context.Background(), staffActor(), editInput(ap.ID, "2026-09-14T07:00", "2026-09-14T08:00"))
	assert.True(t, httperr.IsBusiness(err, "too_early"))
}
