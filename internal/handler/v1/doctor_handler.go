package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/doctor"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/service"
)

type DoctorHandler struct {
	svc *service.DoctorService
}

func NewDoctorHandler(svc *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var f doctor.Fields
	if !bindJSON(c, &f) {
		return
	}

	d, err := h.svc.CreateDoctor(c.Request.Context(), f)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, d)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	d, err := h.svc.GetDoctor(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, d)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var f doctor.Fields
	if !bindJSON(c, &f) {
		return
	}

	d, err := h.svc.UpdateDoctor(c.Request.Context(), id, f)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, d)
}

// List serves GET /doctors?active=true.
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.svc.ListDoctors(c.Request.Context(), parseQueryBool(c, "active", false))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, doctors)
}

// Options lists only active doctors unless ?active=false is given.
func (h *DoctorHandler) Options(c *gin.Context) {
	opts, err := h.svc.ListDoctorOptions(c.Request.Context(), parseQueryBool(c, "active", true))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, opts)
}
