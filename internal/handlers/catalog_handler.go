package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// CatalogHandler administers workers and the services they offer.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// --------- Requests ---------

type CreateWorkerRequest struct {
	Name       string   `json:"name" binding:"required"`
	Specialty  *string  `json:"specialty"`
	ServiceIDs []string `json:"service_ids"`
}

type UpdateWorkerRequest struct {
	Name       *string   `json:"name,omitempty"`
	Specialty  *string   `json:"specialty,omitempty"`
	Active     *bool     `json:"active,omitempty"`
	ServiceIDs *[]string `json:"service_ids,omitempty"`
}

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	DurationMin int      `json:"duration_min" binding:"required,min=1"`
	Price       float64  `json:"price" binding:"min=0"`
	WorkerIDs   []string `json:"worker_ids"`
}

type UpdateServiceRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	DurationMin *int      `json:"duration_min,omitempty" binding:"omitempty,min=1"`
	Price       *float64  `json:"price,omitempty" binding:"omitempty,min=0"`
	WorkerIDs   *[]string `json:"worker_ids,omitempty"`
}

const (
	msgCatalogInvalid   = "Datos inválidos"
	msgWorkerMissing    = "Trabajador no encontrado"
	msgServiceMissing   = "Servicio no encontrado"
	msgUnknownServices  = "Uno o más servicios no existen"
	msgUnknownWorkers   = "Uno o más trabajadores no existen"
	msgWorkerSaveFailed = "Error al guardar el trabajador"
	msgServiceSaveFail  = "Error al guardar el servicio"
)

// --------- Workers ---------

func (h *CatalogHandler) CreateWorker(c *gin.Context) {
	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest[models.Worker](c, msgCatalogInvalid)
		return
	}

	db := h.db.WithContext(c.Request.Context())

	services, ok := resolveByIDs[models.Service, models.Worker](c, db, req.ServiceIDs, msgUnknownServices, msgWorkerSaveFailed)
	if !ok {
		return
	}

	worker := models.Worker{
		Name:      strings.TrimSpace(req.Name),
		Specialty: req.Specialty,
		Active:    true,
		Services:  services,
	}

	if err := db.Create(&worker).Error; err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("create worker failed")
		httpresp.Write(c, httpresp.Failure[models.Worker](httperr.CodePersistence, msgWorkerSaveFailed))
		return
	}

	writeCreated(c, httpresp.Success("Trabajador creado correctamente", worker))
}

func (h *CatalogHandler) UpdateWorker(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())

	var worker models.Worker
	if err := db.Where("id = ?", c.Param("id")).First(&worker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.Write(c, httpresp.Failure[models.Worker](httperr.CodeNotFound, msgWorkerMissing))
			return
		}
		httpresp.Write(c, httpresp.Failure[models.Worker](httperr.CodePersistence, msgWorkerSaveFailed))
		return
	}

	var req UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest[models.Worker](c, msgCatalogInvalid)
		return
	}

	if req.Name != nil {
		worker.Name = strings.TrimSpace(*req.Name)
	}
	if req.Specialty != nil {
		worker.Specialty = req.Specialty
	}
	if req.Active != nil {
		worker.Active = *req.Active
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Services").Save(&worker).Error; err != nil {
			return err
		}
		if req.ServiceIDs == nil {
			return nil
		}
		services, ok := resolveByIDs[models.Service, models.Worker](c, tx, *req.ServiceIDs, msgUnknownServices, msgWorkerSaveFailed)
		if !ok {
			return errAborted
		}
		return tx.Model(&worker).Association("Services").Replace(services)
	})
	if errors.Is(err, errAborted) {
		return
	}
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("worker_id", worker.ID).Msg("update worker failed")
		httpresp.Write(c, httpresp.Failure[models.Worker](httperr.CodePersistence, msgWorkerSaveFailed))
		return
	}

	if err := db.Preload("Services").Where("id = ?", worker.ID).First(&worker).Error; err != nil {
		httpresp.Write(c, httpresp.Failure[models.Worker](httperr.CodePersistence, msgWorkerSaveFailed))
		return
	}

	httpresp.Write(c, httpresp.Success("Trabajador actualizado correctamente", worker))
}

// --------- Services ---------

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest[models.Service](c, msgCatalogInvalid)
		return
	}

	db := h.db.WithContext(c.Request.Context())

	workers, ok := resolveByIDs[models.Worker, models.Service](c, db, req.WorkerIDs, msgUnknownWorkers, msgServiceSaveFail)
	if !ok {
		return
	}

	service := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Workers:     workers,
	}

	if err := db.Create(&service).Error; err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("create service failed")
		httpresp.Write(c, httpresp.Failure[models.Service](httperr.CodePersistence, msgServiceSaveFail))
		return
	}

	writeCreated(c, httpresp.Success("Servicio creado correctamente", service))
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())

	var service models.Service
	if err := db.Where("id = ?", c.Param("id")).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.Write(c, httpresp.Failure[models.Service](httperr.CodeNotFound, msgServiceMissing))
			return
		}
		httpresp.Write(c, httpresp.Failure[models.Service](httperr.CodePersistence, msgServiceSaveFail))
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest[models.Service](c, msgCatalogInvalid)
		return
	}

	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		service.Description = req.Description
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		service.Price = *req.Price
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Workers").Save(&service).Error; err != nil {
			return err
		}
		if req.WorkerIDs == nil {
			return nil
		}
		workers, ok := resolveByIDs[models.Worker, models.Service](c, tx, *req.WorkerIDs, msgUnknownWorkers, msgServiceSaveFail)
		if !ok {
			return errAborted
		}
		return tx.Model(&service).Association("Workers").Replace(workers)
	})
	if errors.Is(err, errAborted) {
		return
	}
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("service_id", service.ID).Msg("update service failed")
		httpresp.Write(c, httpresp.Failure[models.Service](httperr.CodePersistence, msgServiceSaveFail))
		return
	}

	httpresp.Write(c, httpresp.Success("Servicio actualizado correctamente", service))
}

// --------- Helpers ---------

var errAborted = errors.New("response already written")

// resolveByIDs loads every id or writes a failure envelope of type E and
// reports false.
func resolveByIDs[T any, E any](
	c *gin.Context,
	db *gorm.DB,
	ids []string,
	unknownMsg string,
	failMsg string,
) ([]T, bool) {

	if len(ids) == 0 {
		return []T{}, true
	}

	var rows []T
	if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		httpresp.Write(c, httpresp.Failure[E](httperr.CodePersistence, failMsg))
		return nil, false
	}
	if len(rows) != len(ids) {
		httpresp.Write(c, httpresp.Failure[E](httperr.CodeValidation, unknownMsg))
		return nil, false
	}
	return rows, true
}
