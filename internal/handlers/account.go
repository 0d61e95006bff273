package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/ocn-community/volunteer-portal/internal/auth"
	"github.com/ocn-community/volunteer-portal/internal/forms"
	"github.com/ocn-community/volunteer-portal/internal/logger"
	"github.com/ocn-community/volunteer-portal/internal/response"
)

// AccountHandler serves account operations forwarded to the backend
type AccountHandler struct {
	deps *Deps
	log  *log.Logger
}

// NewAccountHandler creates the account handler
func NewAccountHandler(deps *Deps) *AccountHandler {
	return &AccountHandler{
		deps: deps,
		log:  logger.Handler("account"),
	}
}

// SetPassword sets the signed-in volunteer's password
func (h *AccountHandler) SetPassword(c *gin.Context) {
	session := auth.FromContext(c)

	var form forms.PasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.deps.Validate.Validate(form); err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.deps.Client.SetPassword(c.Request.Context(), session.Token, form.Password); err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	h.log.Info("Password set", "user_id", session.UserID)
	response.OK(c, http.StatusOK, "password set", nil)
}
