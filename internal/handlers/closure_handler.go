package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucClosure "github.com/BruksfildServices01/salon-scheduler/internal/usecase/closure"
)

type ClosureHandler struct {
	global  *ucClosure.GlobalClosedDays
	worker  *ucClosure.WorkerClosedDays
	special *ucClosure.SpecialDays
}

func NewClosureHandler(
	global *ucClosure.GlobalClosedDays,
	worker *ucClosure.WorkerClosedDays,
	special *ucClosure.SpecialDays,
) *ClosureHandler {
	return &ClosureHandler{global: global, worker: worker, special: special}
}

// --------- Requests ---------

type ClosedDayRequest struct {
	Date   string  `json:"date" binding:"required,ymd"`
	Reason *string `json:"reason"`
}

type SpecialDayRequest struct {
	Date      string  `json:"date" binding:"required,ymd"`
	OpenTime  *string `json:"open_time" binding:"omitempty,hhmm"`
	CloseTime *string `json:"close_time" binding:"omitempty,hhmm"`
}

const msgInvalidClosure = "Datos del bloqueo inválidos"

// --------- Global ---------

func (h *ClosureHandler) ListGlobal(c *gin.Context) {
	httpresp.Write(c, h.global.List(c.Request.Context()))
}

func (h *ClosureHandler) CreateGlobal(c *gin.Context) {
	var req ClosedDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest[models.GlobalClosedDay](c, msgInvalidClosure)
		return
	}

	writeCreated(c, h.global.Create(c.Request.Context(), actorID(c), ucClosure.ClosedDayInput{
		Date:   req.Date,
		Reason: req.Reason,
	}))
}

func (h *ClosureHandler) DeleteGlobal(c *gin.Context) {
	httpresp.Write(c, h.global.Delete(c.Request.Context(), actorID(c), c.Param("id")))
}

// --------- Worker ---------

func (h *ClosureHandler) ListWorker(c *gin.Context) {
	httpresp.Write(c, h.worker.List(c.Request.Context(), c.Param("id")))
}

func (h *ClosureHandler) CreateWorker(c *gin.Context) {
	var req ClosedDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest[models.WorkerClosedDay](c, msgInvalidClosure)
		return
	}

	writeCreated(c, h.worker.Create(c.Request.Context(), actorID(c), c.Param("id"), ucClosure.ClosedDayInput{
		Date:   req.Date,
		Reason: req.Reason,
	}))
}

func (h *ClosureHandler) DeleteWorker(c *gin.Context) {
	httpresp.Write(c, h.worker.Delete(c.Request.Context(), actorID(c), c.Param("id")))
}

// --------- Special days ---------

func (h *ClosureHandler) ListSpecial(c *gin.Context) {
	httpresp.Write(c, h.special.List(c.Request.Context(), c.Param("id")))
}

func (h *ClosureHandler) SaveSpecial(c *gin.Context) {
	var req SpecialDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest[models.SpecialDay](c, "Horario especial inválido")
		return
	}

	httpresp.Write(c, h.special.Save(c.Request.Context(), actorID(c), c.Param("id"), ucClosure.SpecialDayInput{
		Date:      req.Date,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	}))
}

func (h *ClosureHandler) DeleteSpecial(c *gin.Context) {
	httpresp.Write(c, h.special.Delete(c.Request.Context(), actorID(c), c.Param("id")))
}
