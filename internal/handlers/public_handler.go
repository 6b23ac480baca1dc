package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db              *gorm.DB
	availability    *ucAppointment.GetAvailability
	unavailableDays *ucAppointment.GetUnavailableDates
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucAppointment.GetAvailability,
	unavailableDays *ucAppointment.GetUnavailableDates,
) *PublicHandler {
	return &PublicHandler{
		db:              db,
		availability:    availability,
		unavailableDays: unavailableDays,
	}
}

// ======================================================
// CATALOG
// ======================================================

func (h *PublicHandler) ListWorkers(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Preload("Services").
		Where("active = ?", true)

	if serviceID := strings.TrimSpace(c.Query("service_id")); serviceID != "" {
		q = q.Where(
			"id IN (SELECT worker_id FROM worker_services WHERE service_id = ?)",
			serviceID,
		)
	}

	var workers []models.Worker
	if err := q.Order("name ASC").Find(&workers).Error; err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("list workers failed")
		httpresp.Write(c, httpresp.Failure[[]models.Worker](httperr.CodePersistence, "Error al obtener los trabajadores"))
		return
	}

	httpresp.Write(c, httpresp.Success("Trabajadores obtenidos correctamente", workers))
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&services).Error; err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("list services failed")
		httpresp.Write(c, httpresp.Failure[[]models.Service](httperr.CodePersistence, "Error al obtener los servicios"))
		return
	}

	httpresp.Write(c, httpresp.Success("Servicios obtenidos correctamente", services))
}

func (h *PublicHandler) GetService(c *gin.Context) {
	var service models.Service
	err := h.db.WithContext(c.Request.Context()).
		Preload("Workers", "active = ?", true).
		Where("id = ?", c.Param("id")).
		First(&service).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.Write(c, httpresp.Failure[models.Service](httperr.CodeNotFound, "Servicio no encontrado"))
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("service_id", c.Param("id")).Msg("get service failed")
		httpresp.Write(c, httpresp.Failure[models.Service](httperr.CodePersistence, "Error al obtener el servicio"))
		return
	}

	httpresp.Write(c, httpresp.Success("Servicio obtenido correctamente", service))
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	duration := 0
	if raw := strings.TrimSpace(c.Query("duration")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			badRequest[domain.AvailableDates](c, "Duración inválida")
			return
		}
		duration = n
	}

	resp := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:        strings.TrimSpace(c.Query("date")),
		WorkerID:    c.Param("id"),
		DurationMin: duration,
	})

	httpresp.Write(c, resp)
}

func (h *PublicHandler) UnavailableDates(c *gin.Context) {
	httpresp.Write(c, h.unavailableDays.Execute(c.Request.Context(), c.Param("id")))
}
