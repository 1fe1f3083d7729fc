package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/httpresp"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/NovaDentalSystems/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC        *ucAppointment.CreateAppointment
	editUC          *ucAppointment.EditAppointment
	removeUC        *ucAppointment.RemoveAppointment
	listByDentistUC *ucAppointment.ListByDentist
	listByPatientUC *ucAppointment.ListByPatient
	listByDayUC     *ucAppointment.ListByDay
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	editUC *ucAppointment.EditAppointment,
	removeUC *ucAppointment.RemoveAppointment,
	listByDentistUC *ucAppointment.ListByDentist,
	listByPatientUC *ucAppointment.ListByPatient,
	listByDayUC *ucAppointment.ListByDay,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:        createUC,
		editUC:          editUC,
		removeUC:        removeUC,
		listByDentistUC: listByDentistUC,
		listByPatientUC: listByPatientUC,
		listByDayUC:     listByDayUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	DentistID uint   `json:"dentist_id" binding:"required"`
	PatientID uint   `json:"patient_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	StartsAt  string `json:"starts_at" binding:"required"`
	EndsAt    string `json:"ends_at" binding:"required"`
	Notes     string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), actor, ucAppointment.CreateAppointmentInput{
		DentistID: req.DentistID,
		PatientID: req.PatientID,
		ServiceID: req.ServiceID,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Notes:     req.Notes,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_create_appointment", "Could not create the appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// EDIT
// ======================================================

func (h *AppointmentHandler) Edit(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.editUC.Execute(c.Request.Context(), actor, ucAppointment.EditAppointmentInput{
		AppointmentID: id,
		DentistID:     req.DentistID,
		PatientID:     req.PatientID,
		ServiceID:     req.ServiceID,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
		Notes:         req.Notes,
	})
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_edit_appointment", "Could not edit the appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// REMOVE
// ======================================================

func (h *AppointmentHandler) Remove(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.removeUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_remove_appointment", "Could not remove the appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) ListByDentist(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid dentist id.")
		return
	}

	out, err := h.listByDentistUC.Execute(
		c.Request.Context(),
		actor,
		id,
		c.Query("date"),
		c.Query("include_finished") == "true",
	)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		}
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByPatient(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid patient id.")
		return
	}

	out, err := h.listByPatientUC.Execute(
		c.Request.Context(),
		actor,
		id,
		c.Query("date"),
		c.Query("include_finished") == "true",
	)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		}
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByDay(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	out, err := h.listByDayUC.Execute(
		c.Request.Context(),
		actor,
		dateStr,
		c.Query("include_finished") == "true",
	)
	if err != nil {
		if !httperr.WriteBusiness(c, err) {
			httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		}
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// HELPERS
// ======================================================

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
