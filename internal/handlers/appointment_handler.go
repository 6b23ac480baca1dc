package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	cancel       *ucAppointment.CancelAppointment
	updateStatus *ucAppointment.UpdateAppointmentStatus
	list         *ucAppointment.ListAppointments
	listClient   *ucAppointment.ListClientAppointments
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	updateStatus *ucAppointment.UpdateAppointmentStatus,
	list *ucAppointment.ListAppointments,
	listClient *ucAppointment.ListClientAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		cancel:       cancel,
		updateStatus: updateStatus,
		list:         list,
		listClient:   listClient,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	WorkerID  string `json:"worker_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	StartAt   string `json:"start_at"`
	Date      string `json:"date" binding:"omitempty,ymd"`
	Time      string `json:"time" binding:"omitempty,hhmm"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CLIENT
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest[models.Appointment](c, "Datos de la cita inválidos")
		return
	}

	resp := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		WorkerID:  req.WorkerID,
		ServiceID: req.ServiceID,
		ClientID:  actorID(c),
		StartAt:   req.StartAt,
		Date:      req.Date,
		Time:      req.Time,
	})

	writeCreated(c, resp)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	httpresp.Write(c, h.listClient.Execute(c.Request.Context(), actorID(c)))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	httpresp.Write(c, h.cancel.Execute(c.Request.Context(), actorID(c), c.Param("id")))
}

// ======================================================
// ADMIN
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	httpresp.Write(c, h.list.Execute(c.Request.Context(), strings.TrimSpace(c.Query("date"))))
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest[models.Appointment](c, "Estado inválido")
		return
	}

	resp := h.updateStatus.Execute(
		c.Request.Context(),
		actorID(c),
		c.Param("id"),
		strings.ToUpper(strings.TrimSpace(req.Status)),
	)
	httpresp.Write(c, resp)
}
