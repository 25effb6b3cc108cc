package handlers

import (
	"net/http"

	"keshwala/services/result"
	"keshwala/utils"

	"github.com/gin-gonic/gin"
)

// StatusFor maps a failure kind to the HTTP status reported to clients.
func StatusFor(kind result.Kind) int {
	switch kind {
	case result.KindValidation:
		return http.StatusUnprocessableEntity
	case result.KindBusy:
		return http.StatusConflict
	case result.KindUnavailable:
		return http.StatusServiceUnavailable
	case result.KindBackend:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// failureJSON writes e as an ErrorResponse whose details name the failure kind.
func failureJSON(c *gin.Context, e *result.Error) {
	utils.WriteError(c, StatusFor(e.Kind), utils.ErrorResponse{
		Message: e.Message,
		Details: e.Kind.String(),
		Fields:  e.Fields,
	})
}

// respond writes the payload of res with status, or its failure.
func respond[T any](c *gin.Context, status int, res result.Result[T]) {
	result.Match(res,
		func(v T) struct{} {
			c.JSON(status, v)
			return struct{}{}
		},
		func(e *result.Error) struct{} {
			failureJSON(c, e)
			return struct{}{}
		},
	)
}

// wantsJSON reports whether the client asked for JSON rather than a page.
// A JSON request body without an Accept header counts as asking for JSON.
func wantsJSON(c *gin.Context) bool {
	if c.GetHeader("Accept") == "" {
		return c.ContentType() == gin.MIMEJSON
	}
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}
