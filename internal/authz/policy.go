package authz

import "github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"

// ===============================
// Roles
// ===============================

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleReceptionist Role = "receptionist"
	RoleDentist      Role = "dentist"
	RolePatient      Role = "patient"
)

func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleReceptionist || r == RoleDentist
}

// ===============================
// Operations
// ===============================

type Operation string

const (
	OpCreateAppointment   Operation = "appointment:create"
	OpEditAppointment     Operation = "appointment:edit"
	OpRemoveAppointment   Operation = "appointment:remove"
	OpListPatientCalendar Operation = "appointment:list_patient"
	OpListDentistCalendar Operation = "appointment:list_dentist"
	OpListClinicDay       Operation = "appointment:list_day"
	OpReadDirectory       Operation = "directory:read"
	OpListAuditLogs       Operation = "audit:list"
)

// policy is the single place operations are mapped to the roles allowed to
// perform them; handlers and use cases never re-derive role checks inline.
var policy = map[Operation][]Role{
	OpCreateAppointment:   {RoleAdmin, RoleReceptionist, RoleDentist, RolePatient},
	OpEditAppointment:     {RoleAdmin, RoleReceptionist, RoleDentist, RolePatient},
	OpRemoveAppointment:   {RoleAdmin, RoleReceptionist, RoleDentist, RolePatient},
	OpListPatientCalendar: {RoleAdmin, RoleReceptionist, RoleDentist, RolePatient},
	OpListDentistCalendar: {RoleAdmin, RoleReceptionist, RoleDentist},
	OpListClinicDay:       {RoleAdmin, RoleReceptionist, RoleDentist},
	OpReadDirectory:       {RoleAdmin, RoleReceptionist, RoleDentist},
	OpListAuditLogs:       {RoleAdmin, RoleReceptionist},
}

func Allowed(op Operation, role Role) bool {
	for _, r := range policy[op] {
		if r == role {
			return true
		}
	}
	return false
}

// ===============================
// Actor
// ===============================

// Actor is the authenticated caller, resolved once by the auth middleware
// and passed explicitly into every operation.
type Actor struct {
	UserID    uint
	Role      Role
	PatientID *uint
}

// CanActFor reports whether the actor may touch the given patient's
// appointments. Staff act for any patient; a patient only for themselves.
func (a Actor) CanActFor(patientID uint) bool {
	if a.Role.IsStaff() {
		return true
	}
	return a.PatientID != nil && *a.PatientID == patientID
}

// Gate combines the policy table with patient ownership. patientID is the
// patient whose calendar the operation touches; zero means none.
func Gate(a Actor, op Operation, patientID uint) error {
	if !Allowed(op, a.Role) {
		return httperr.ErrBusiness("unauthorized")
	}
	if patientID != 0 && !a.CanActFor(patientID) {
		return httperr.ErrBusiness("unauthorized")
	}
	return nil
}
