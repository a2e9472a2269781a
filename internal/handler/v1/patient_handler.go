package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/service"
)

type PatientHandler struct {
	svc *service.PatientService
}

func NewPatientHandler(svc *service.PatientService) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func (h *PatientHandler) Create(c *gin.Context) {
	var f patient.Fields
	if !bindJSON(c, &f) {
		return
	}

	p, err := h.svc.CreatePatient(c.Request.Context(), f)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, p)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var f patient.Fields
	if !bindJSON(c, &f) {
		return
	}

	p, err := h.svc.UpdatePatient(c.Request.Context(), id, f)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p)
}

func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.svc.ListPatients(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, patients)
}

func (h *PatientHandler) Options(c *gin.Context) {
	opts, err := h.svc.ListPatientOptions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, opts)
}
