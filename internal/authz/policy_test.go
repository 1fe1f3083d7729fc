package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
)

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed(OpCreateAppointment, RolePatient))
	assert.True(t, Allowed(OpCreateAppointment, RoleReceptionist))

	assert.False(t, Allowed(OpListClinicDay, RolePatient))
	assert.False(t, Allowed(OpListAuditLogs, RoleDentist))
	assert.True(t, Allowed(OpListAuditLogs, RoleAdmin))

	assert.False(t, Allowed(Operation("unknown"), RoleAdmin))
}

func TestActor_CanActFor(t *testing.T) {
	patientID := uint(42)

	patient := Actor{UserID: 1, Role: RolePatient, PatientID: &patientID}
	assert.True(t, patient.CanActFor(42))
	assert.False(t, patient.CanActFor(43))

	orphan := Actor{UserID: 2, Role: RolePatient}
	assert.False(t, orphan.CanActFor(42))

	receptionist := Actor{UserID: 3, Role: RoleReceptionist}
	assert.True(t, receptionist.CanActFor(42))
	assert.True(t, receptionist.CanActFor(43))
}

func TestGate(t *testing.T) {
	patientID := uint(42)
	patient := Actor{UserID: 1, Role: RolePatient, PatientID: &patientID}

	assert.NoError(t, Gate(patient, OpCreateAppointment, 42))

	err := Gate(patient, OpCreateAppointment, 43)
	assert.True(t, httperr.IsBusiness(err, "unauthorized"))

	err = Gate(patient, OpListClinicDay, 0)
	assert.True(t, httperr.IsBusiness(err, "unauthorized"))
}
