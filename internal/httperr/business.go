package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsExclusionConflict detects a Postgres exclusion-constraint violation
// (SQLSTATE 23P01), raised by the overlap constraints on appointments when
// the application-level check is bypassed.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

// ===============================
// Business code -> HTTP mapping
// ===============================

var businessStatus = map[string]int{
	"unauthorized":         http.StatusForbidden,
	"invalid_reference":    http.StatusUnprocessableEntity,
	"schedule_conflict":    http.StatusConflict,
	"too_early":            http.StatusUnprocessableEntity,
	"too_late":             http.StatusUnprocessableEntity,
	"not_found":            http.StatusNotFound,
	"invalid_interval":     http.StatusBadRequest,
	"invalid_date_or_time": http.StatusBadRequest,
}

var businessMessage = map[string]string{
	"unauthorized":         "You are not allowed to perform this operation.",
	"invalid_reference":    "Dentist, patient or service not found.",
	"schedule_conflict":    "The requested time conflicts with an existing appointment.",
	"too_early":            "The requested time is before clinic opening hours.",
	"too_late":             "The requested time is after clinic closing hours.",
	"not_found":            "Appointment not found.",
	"invalid_interval":     "The appointment must end after it starts.",
	"invalid_date_or_time": "Invalid date or time.",
}

// WriteBusiness maps a business error to its HTTP response. Returns false
// when err is not a business error, leaving it for the caller.
func WriteBusiness(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	status, ok := businessStatus[be.Code]
	if !ok {
		status = http.StatusBadRequest
	}

	msg := businessMessage[be.Code]
	if msg == "" {
		msg = "Request rejected."
	}

	Write(c, status, be.Code, msg)
	return true
}
