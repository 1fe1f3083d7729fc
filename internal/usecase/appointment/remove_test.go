package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/audit"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/domain/scheduling"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
)

func newRemoveUC(repo scheduling.Repository) *RemoveAppointment {
	dispatcher := audit.NewDispatcher(audit.New(nil))
	return NewRemoveAppointment(repo, dispatcher)
}

func TestRemoveAppointment_HardDelete(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(t, repo, "2026-09-14T09:00", "2026-09-14T10:00")

	uc := newRemoveUC(repo)

	removed, err := uc.Execute(context.Background(), staffActor(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, ap.ID, removed.ID)

	assert.Empty(t, repo.appointments)
}

// Deleting twice reports not_found the second time, never a silent success.
func TestRemoveAppointment_SecondDeleteNotFound(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(t, repo, "2026-09-14T09:00", "2026-09-14T10:00")

	uc := newRemoveUC(repo)

	_, err := uc.Execute(context.Background(), staffActor(), ap.ID)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), staffActor(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, "not_found"))
}

func TestRemoveAppointment_PatientRemovesOwn(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(t, repo, "2026-09-14T09:00", "2026-09-14T10:00")

	uc := newRemoveUC(repo)

	_, err := uc.Execute(context.Background(), patientActor(10), ap.ID)
	assert.NoError(t, err)
}

func TestRemoveAppointment_PatientCannotRemoveOthers(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(t, repo, "2026-09-14T09:00", "2026-09-14T10:00")

	uc := newRemoveUC(repo)

	_, err := uc.Execute(context.Background(), patientActor(11), ap.ID)
	assert.True(t, httperr.IsBusiness(err, "unauthorized"))

	assert.Len(t, repo.appointments, 1)
}

// Freeing a slot by removal makes it bookable again.
func TestRemoveAppointment_SlotReopens(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(t, repo, "2026-09-14T09:00", "2026-09-14T10:00")

	removeUC := newRemoveUC(repo)
	_, err := removeUC.Execute(context.Background(), staffActor(), ap.ID)
	require.NoError(t, err)

	createUC := newCreateUC(repo)
	_, err = createUC.Execute(context.Background(), staffActor(), bookingInput("2026-09-14T09:00", "2026-09-14T10:00"))
	assert.NoError(t, err)
}
