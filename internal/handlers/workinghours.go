package handlers

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/ocn-community/volunteer-portal/internal/actions"
	"github.com/ocn-community/volunteer-portal/internal/auth"
	"github.com/ocn-community/volunteer-portal/internal/dates"
	"github.com/ocn-community/volunteer-portal/internal/domain/common"
	"github.com/ocn-community/volunteer-portal/internal/domain/workinghours"
	"github.com/ocn-community/volunteer-portal/internal/forms"
	"github.com/ocn-community/volunteer-portal/internal/logger"
	"github.com/ocn-community/volunteer-portal/internal/response"
	"github.com/ocn-community/volunteer-portal/internal/table"
	"github.com/ocn-community/volunteer-portal/internal/upstream"
	"github.com/ocn-community/volunteer-portal/internal/view"
)

const workingHoursResource = "working-hours"

// WorkingHoursHandler serves the admin working-hours table and the
// volunteer's entry submission
type WorkingHoursHandler struct {
	deps   *Deps
	schema *table.Schema[workinghours.Entry]
	loader *view.Loader[workinghours.Entry]
	log    *log.Logger
}

// NewWorkingHoursHandler creates the working-hours handler
func NewWorkingHoursHandler(deps *Deps) *WorkingHoursHandler {
	schema := table.WorkingHours()
	return &WorkingHoursHandler{
		deps:   deps,
		schema: schema,
		loader: view.NewLoader(schema.Key),
		log:    logger.Handler("working-hours"),
	}
}

// entryRow is one rendered working-hours-table row
type entryRow struct {
	workinghours.Entry
	StartTimeDisplay string           `json:"startTimeDisplay"`
	EndTimeDisplay   string           `json:"endTimeDisplay"`
	Actions          []actions.Action `json:"actions"`
}

// View serves one page of the working-hours table, admin only
func (h *WorkingHoursHandler) View(c *gin.Context) {
	session := auth.FromContext(c)
	st := h.deps.parseState(c, "startTime")

	rows, err := h.loader.Load(c.Request.Context(), func(ctx context.Context) ([]workinghours.Entry, error) {
		return h.deps.Client.ListWorkingHours(ctx, session.Token)
	})
	if err != nil {
		if !h.loader.Loaded() {
			h.deps.upstreamError(c, err)
			return
		}
		h.log.Warn("Serving installed rows after failed refresh", "error", err)
	}

	page := h.schema.Apply(rows, st)

	rendered := make([]entryRow, 0, len(page.Rows))
	for _, e := range page.Rows {
		rendered = append(rendered, entryRow{
			Entry:            e,
			StartTimeDisplay: dates.FormatDateTime(e.StartTime, h.deps.UTCOffsetHours),
			EndTimeDisplay:   dates.FormatDateTime(e.EndTime, h.deps.UTCOffsetHours),
			Actions:          h.deps.translateActions(c, actions.ForWorkingEntry(e, session)),
		})
	}

	result := tableView{
		Columns:   h.deps.translateColumns(c, h.schema.VisibleColumns(st.VisibleColumns, session.IsAdmin())),
		Rows:      rendered,
		Page:      page.Page,
		PageCount: page.PageCount,
		Total:     page.Total,
	}
	if page.Total == 0 {
		result.EmptyMessage = h.deps.Labels.Label(h.deps.lang(c), "noWorkingHours")
	}

	response.OK(c, http.StatusOK, "", result)
}

// GetEntry serves one working-hours entry, the edit form prefills from it
func (h *WorkingHoursHandler) GetEntry(c *gin.Context) {
	session := auth.FromContext(c)

	entry, err := h.deps.Client.GetEntry(c.Request.Context(), session.Token, c.Param("id"))
	if err != nil {
		h.deps.upstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", entry)
}

// SubmitEntry records a volunteer's hours for one event
func (h *WorkingHoursHandler) SubmitEntry(c *gin.Context) {
	session := auth.FromContext(c)
	eventID := c.Param("eventId")

	var form forms.EntryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.deps.Validate.ValidateEntry(form); err != nil {
		response.FromError(c, err)
		return
	}

	payload := upstream.EntryForm{
		StartTime: form.StartTime,
		EndTime:   form.EndTime,
		Hours:     form.Hours,
	}
	if err := h.deps.Client.SubmitEntry(c.Request.Context(), session.Token, eventID, payload); err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	h.loader.Invalidate()
	h.log.Info("Entry submitted", "event_id", eventID)
	response.OK(c, http.StatusCreated, "entry submitted", nil)
}

// UpdateEntry edits an entry's times or status, admin only
func (h *WorkingHoursHandler) UpdateEntry(c *gin.Context) {
	session := auth.FromContext(c)
	entryID := c.Param("id")

	var form forms.EntryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.deps.Validate.ValidateEntry(form); err != nil {
		response.FromError(c, err)
		return
	}

	payload := upstream.EntryForm{
		StartTime: form.StartTime,
		EndTime:   form.EndTime,
		Hours:     form.Hours,
		Status:    form.Status,
	}
	if err := h.deps.Client.UpdateEntry(c.Request.Context(), session.Token, entryID, payload); err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	h.loader.Patch(entryID, func(e *workinghours.Entry) {
		e.StartTime = form.StartTime
		e.EndTime = form.EndTime
		if form.Hours > 0 {
			e.Hours = form.Hours
		}
		if status, ok := common.ReviewStatusFromString(form.Status); ok {
			e.Status = status
		}
	})

	h.log.Info("Entry updated", "entry_id", entryID)
	response.OK(c, http.StatusOK, "entry updated", nil)
}

// RequestDelete records the intent to delete an entry and returns the
// confirmation token
func (h *WorkingHoursHandler) RequestDelete(c *gin.Context) {
	entryID := c.Param("id")
	token := h.deps.Confirm.Request(workingHoursResource, entryID, "")

	response.OK(c, http.StatusOK, "confirmation required", gin.H{
		"confirmToken": token,
	})
}

// ConfirmDelete consumes a confirmation token and deletes the entry
func (h *WorkingHoursHandler) ConfirmDelete(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "confirmation token required")
		return
	}

	entryID, _, ok := h.deps.Confirm.Confirm(workingHoursResource, req.Token)
	if !ok {
		response.BadRequest(c, "unknown or expired confirmation")
		return
	}

	session := auth.FromContext(c)
	if err := h.deps.Client.DeleteEntry(c.Request.Context(), session.Token, entryID); err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	h.loader.Remove(entryID)
	h.log.Info("Entry deleted", "entry_id", entryID)
	response.OK(c, http.StatusOK, "entry deleted", nil)
}

// CancelDelete discards a pending delete confirmation
func (h *WorkingHoursHandler) CancelDelete(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "confirmation token required")
		return
	}

	h.deps.Confirm.Cancel(req.Token)
	response.OK(c, http.StatusOK, "deletion cancelled", nil)
}
