package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
)

func actorID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

// writeCreated answers 201 for a successful envelope and falls back to the
// error-code mapping otherwise.
func writeCreated[T any](c *gin.Context, resp httpresp.Response[T]) {
	if resp.Success {
		c.JSON(http.StatusCreated, resp)
		return
	}
	httpresp.Write(c, resp)
}

func badRequest[T any](c *gin.Context, msg string) {
	httpresp.Write(c, httpresp.Failure[T](httperr.CodeValidation, msg))
}
