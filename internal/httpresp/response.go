package httpresp

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// Response is the envelope every core operation returns instead of an error.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"error_code,omitempty"`
	Data    *T     `json:"data,omitempty"`
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func Success[T any](message string, data T) Response[T] {
	return Response[T]{Success: true, Message: message, Data: &data}
}

func Failure[T any](code, message string) Response[T] {
	return Response[T]{Success: false, Message: message, Code: code}
}

// FailureWith is a failed envelope that still carries structured data, as
// closed days do.
func FailureWith[T any](code, message string, data T) Response[T] {
	return Response[T]{Success: false, Message: message, Code: code, Data: &data}
}

func Write[T any](c *gin.Context, resp Response[T]) {
	c.JSON(httperr.Status(resp.Code), resp)
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
