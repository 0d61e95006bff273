package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/ocn-community/volunteer-portal/internal/actions"
	"github.com/ocn-community/volunteer-portal/internal/auth"
	"github.com/ocn-community/volunteer-portal/internal/dates"
	"github.com/ocn-community/volunteer-portal/internal/domain/application"
	"github.com/ocn-community/volunteer-portal/internal/logger"
	"github.com/ocn-community/volunteer-portal/internal/response"
	"github.com/ocn-community/volunteer-portal/internal/table"
)

// MyApplicationsHandler serves the signed-in volunteer's own applications
// table. Rows are per user, so every request fetches fresh instead of going
// through a shared loader.
type MyApplicationsHandler struct {
	deps   *Deps
	schema *table.Schema[application.UserApplication]
	log    *log.Logger
}

// NewMyApplicationsHandler creates the my-applications handler
func NewMyApplicationsHandler(deps *Deps) *MyApplicationsHandler {
	return &MyApplicationsHandler{
		deps:   deps,
		schema: table.MyApplications(),
		log:    logger.Handler("my-applications"),
	}
}

// userApplicationRow is one rendered my-applications-table row
type userApplicationRow struct {
	application.UserApplication
	StartDateDisplay string           `json:"startDateDisplay"`
	Actions          []actions.Action `json:"actions"`
}

// View serves one page of the volunteer's own applications
func (h *MyApplicationsHandler) View(c *gin.Context) {
	session := auth.FromContext(c)
	st := h.deps.parseState(c, "startDate")

	rows, err := h.deps.Client.ListUserApplications(c.Request.Context(), session.Token)
	if err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	page := h.schema.Apply(rows, st)

	rendered := make([]userApplicationRow, 0, len(page.Rows))
	for _, a := range page.Rows {
		rendered = append(rendered, userApplicationRow{
			UserApplication:  a,
			StartDateDisplay: dates.FormatDate(a.StartDate, h.deps.UTCOffsetHours),
			Actions:          h.deps.translateActions(c, actions.ForUserApplication(a, session)),
		})
	}

	result := tableView{
		Columns:   h.deps.translateColumns(c, h.schema.VisibleColumns(st.VisibleColumns, true)),
		Rows:      rendered,
		Page:      page.Page,
		PageCount: page.PageCount,
		Total:     page.Total,
	}
	if page.Total == 0 {
		result.EmptyMessage = h.deps.Labels.Label(h.deps.lang(c), "noApplications")
	}

	response.OK(c, http.StatusOK, "", result)
}

// ApplyCertificate applies for a certificate for one of the volunteer's
// verified event applications
func (h *MyApplicationsHandler) ApplyCertificate(c *gin.Context) {
	session := auth.FromContext(c)
	eventID := c.Param("eventId")

	if err := h.deps.Client.SubmitCertificate(c.Request.Context(), session.Token, eventID); err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	h.log.Info("Certificate application submitted", "event_id", eventID)
	response.OK(c, http.StatusOK, "certificate application submitted", nil)
}

// EventEntries lists the volunteer's own working-hours entries for one event
func (h *MyApplicationsHandler) EventEntries(c *gin.Context) {
	session := auth.FromContext(c)
	eventID := c.Param("eventId")

	entries, err := h.deps.Client.ListEventEntries(c.Request.Context(), session.Token, eventID)
	if err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	response.OK(c, http.StatusOK, "", entries)
}
