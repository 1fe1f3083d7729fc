package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaDentalSystems/clinic-scheduler/internal/authz"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/httperr"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/httpresp"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/middleware"
	"github.com/NovaDentalSystems/clinic-scheduler/internal/models"
)

// DirectoryHandler serves the read-only dentist / patient / service lists
// the scheduling screens need. Administration of these records is out of
// scope here.
type DirectoryHandler struct {
	db *gorm.DB
}

func NewDirectoryHandler(db *gorm.DB) *DirectoryHandler {
	return &DirectoryHandler{db: db}
}

func (h *DirectoryHandler) ListDentists(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if err := authz.Gate(actor, authz.OpReadDirectory, 0); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	var dentists []models.Dentist
	if err := h.db.Order("name ASC").Find(&dentists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_dentists", "Could not list dentists.")
		return
	}

	httpresp.List(c, dentists)
}

func (h *DirectoryHandler) ListPatients(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if err := authz.Gate(actor, authz.OpReadDirectory, 0); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	var patients []models.Patient
	if err := h.db.Order("name ASC").Find(&patients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Could not list patients.")
		return
	}

	httpresp.List(c, patients)
}

// Services are visible to every authenticated caller; patients pick one
// when booking.
func (h *DirectoryHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}
