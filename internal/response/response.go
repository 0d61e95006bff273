package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ocn-community/volunteer-portal/internal/apperr"
)

// Response is the standard API response envelope
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the envelope for failed requests. Recovery tells the
// client which affordance to offer ("retry" or "login"), SignOut tells it to
// drop the local session first.
type ErrorResponse struct {
	Success  bool              `json:"success"`
	Error    string            `json:"error"`
	Kind     string            `json:"kind"`
	Code     int               `json:"code"`
	Recovery string            `json:"recovery,omitempty"`
	SignOut  bool              `json:"signOut,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// OK sends a successful response
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail sends an error response with a custom message and no classification
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   message,
		Kind:    apperr.FetchFailed.String(),
		Code:    status,
	})
}

// FromError maps a classified error to its HTTP status and recovery
// affordance
func FromError(c *gin.Context, err error) {
	e, ok := err.(*apperr.Error)
	if !ok {
		e = apperr.Wrap(apperr.FetchFailed, apperr.FetchFailed.DefaultMessage(), err)
	}

	resp := ErrorResponse{
		Success: false,
		Error:   e.Message,
		Kind:    e.Kind.String(),
		Fields:  e.Fields,
	}

	switch e.Kind {
	case apperr.AuthRequired:
		resp.Code = http.StatusUnauthorized
		resp.Recovery = "login"
	case apperr.TokenExpired:
		resp.Code = http.StatusUnauthorized
		resp.Recovery = "login"
		resp.SignOut = true
	case apperr.NotAuthorized:
		resp.Code = http.StatusForbidden
	case apperr.ValidationFailed:
		resp.Code = http.StatusUnprocessableEntity
	default:
		resp.Code = http.StatusBadGateway
		resp.Recovery = "retry"
	}

	c.JSON(resp.Code, resp)
}

// BadRequest sends a 400 error
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 error
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}
