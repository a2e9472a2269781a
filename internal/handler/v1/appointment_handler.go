package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/service"
)

type AppointmentHandler struct {
	svc *service.AppointmentService
}

func NewAppointmentHandler(svc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *AppointmentHandler) Book(c *gin.Context) {
	var cmd appointment.BookCommand
	if !bindJSON(c, &cmd) {
		return
	}

	a, err := h.svc.BookAppointment(c.Request.Context(), cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, a)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := h.svc.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, a)
}

// List serves GET /appointments?date=YYYY-MM-DD. Without a date every
// appointment is returned.
func (h *AppointmentHandler) List(c *gin.Context) {
	listings, err := h.svc.ListAppointments(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, listings)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.svc.UpdateAppointmentStatus(c.Request.Context(), id, req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, "Status updated.")
}
