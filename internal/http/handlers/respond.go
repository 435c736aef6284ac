package handlers

import (
	"advocates/internal/domain/apperr"

	"github.com/gin-gonic/gin"
)

// errorEnvelope is the failure shape of every endpoint. data is an empty
// list for listing endpoints and null for single-record lookups, so
// clients can keep a uniform decode path.
type errorEnvelope struct {
	Data      any    `json:"data"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Code      string `json:"code"`
	Parameter string `json:"parameter,omitempty"`
	Field     string `json:"field,omitempty"`
}

func writeError(c *gin.Context, err error, data any) {
	e := apperr.FromUnknown(err)
	resp := apperr.ToResponse(e, c.Request.URL.Path)
	c.JSON(e.StatusCode(), errorEnvelope{
		Data:      data,
		Error:     resp.Error,
		Message:   resp.Message,
		Code:      resp.Code,
		Parameter: resp.Parameter,
		Field:     resp.Field,
	})
}

// RespondListError fails a listing endpoint with an empty data array.
func RespondListError(c *gin.Context, err error) {
	writeError(c, err, []any{})
}

// RespondItemError fails a single-record endpoint with null data.
func RespondItemError(c *gin.Context, err error) {
	writeError(c, err, nil)
}
