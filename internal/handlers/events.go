package handlers

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/ocn-community/volunteer-portal/internal/actions"
	"github.com/ocn-community/volunteer-portal/internal/auth"
	"github.com/ocn-community/volunteer-portal/internal/dates"
	"github.com/ocn-community/volunteer-portal/internal/domain/event"
	"github.com/ocn-community/volunteer-portal/internal/forms"
	"github.com/ocn-community/volunteer-portal/internal/logger"
	"github.com/ocn-community/volunteer-portal/internal/response"
	"github.com/ocn-community/volunteer-portal/internal/table"
	"github.com/ocn-community/volunteer-portal/internal/upstream"
	"github.com/ocn-community/volunteer-portal/internal/view"
)

const eventsResource = "events"

// EventsHandler serves the public events table and its admin mutations
type EventsHandler struct {
	deps   *Deps
	schema *table.Schema[event.Event]
	loader *view.Loader[event.Event]
	log    *log.Logger
}

// NewEventsHandler creates the events handler
func NewEventsHandler(deps *Deps) *EventsHandler {
	schema := table.Events()
	return &EventsHandler{
		deps:   deps,
		schema: schema,
		loader: view.NewLoader(schema.Key),
		log:    logger.Handler("events"),
	}
}

// eventRow is one rendered events-table row
type eventRow struct {
	event.Event
	ReleaseDateDisplay string           `json:"releaseDateDisplay"`
	StartDateDisplay   string           `json:"startDateDisplay"`
	DeadlineDisplay    string           `json:"deadlineDisplay"`
	Actions            []actions.Action `json:"actions"`
}

// View serves one page of the events table
func (h *EventsHandler) View(c *gin.Context) {
	session := auth.FromContext(c)
	st := h.deps.parseState(c, "releaseDate")

	rows, err := h.loader.Load(c.Request.Context(), func(ctx context.Context) ([]event.Event, error) {
		return h.deps.Client.ListEvents(ctx)
	})
	if err != nil {
		if !h.loader.Loaded() {
			h.deps.upstreamError(c, err)
			return
		}
		h.log.Warn("Serving installed rows after failed refresh", "error", err)
	}

	page := h.schema.Apply(rows, st)

	rendered := make([]eventRow, 0, len(page.Rows))
	for _, e := range page.Rows {
		rendered = append(rendered, eventRow{
			Event:              e,
			ReleaseDateDisplay: dates.FormatDate(e.ReleaseDate, h.deps.UTCOffsetHours),
			StartDateDisplay:   dates.FormatDate(e.StartDate, h.deps.UTCOffsetHours),
			DeadlineDisplay:    dates.FormatDate(e.Deadline, h.deps.UTCOffsetHours),
			Actions:            h.deps.translateActions(c, actions.ForEvent(e, session)),
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
		result.EmptyMessage = h.deps.Labels.Label(h.deps.lang(c), "noEvents")
	}

	response.OK(c, http.StatusOK, "", result)
}

// Get serves one event
func (h *EventsHandler) Get(c *gin.Context) {
	ev, err := h.deps.Client.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.deps.upstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", ev)
}

// Create creates an event, admin only
func (h *EventsHandler) Create(c *gin.Context) {
	session := auth.FromContext(c)

	var form forms.EventForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.deps.Validate.Validate(form); err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.deps.Client.CreateEvent(c.Request.Context(), session.Token, eventPayload(form)); err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	h.loader.Invalidate()
	h.log.Info("Event created", "title", form.Title)
	response.OK(c, http.StatusCreated, "event created", nil)
}

// Update edits an event, admin only
func (h *EventsHandler) Update(c *gin.Context) {
	session := auth.FromContext(c)
	eventID := c.Param("id")

	var form forms.EventForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.deps.Validate.Validate(form); err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.deps.Client.UpdateEvent(c.Request.Context(), session.Token, eventID, eventPayload(form)); err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	h.loader.Patch(eventID, func(e *event.Event) {
		e.Title = form.Title
		e.Description = form.Description
		e.Location = form.Location
		e.ReleaseDate = form.ReleaseDate
		e.StartDate = form.StartDate
		e.Deadline = form.Deadline
		e.ImageURL = form.ImageURL
		if status, ok := event.StatusFromString(form.Status); ok {
			e.Status = status
		}
	})

	h.log.Info("Event updated", "event_id", eventID)
	response.OK(c, http.StatusOK, "event updated", nil)
}

// RequestDelete records the intent to delete an event and returns the
// confirmation token. Nothing is deleted until the token comes back.
func (h *EventsHandler) RequestDelete(c *gin.Context) {
	eventID := c.Param("id")
	token := h.deps.Confirm.Request(eventsResource, eventID, "")

	response.OK(c, http.StatusOK, "confirmation required", gin.H{
		"confirmToken": token,
	})
}

// ConfirmDelete consumes a confirmation token and deletes the event
func (h *EventsHandler) ConfirmDelete(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "confirmation token required")
		return
	}

	eventID, _, ok := h.deps.Confirm.Confirm(eventsResource, req.Token)
	if !ok {
		response.BadRequest(c, "unknown or expired confirmation")
		return
	}

	session := auth.FromContext(c)
	if err := h.deps.Client.DeleteEvent(c.Request.Context(), session.Token, eventID); err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	h.loader.Remove(eventID)
	h.log.Info("Event deleted", "event_id", eventID)
	response.OK(c, http.StatusOK, "event deleted", nil)
}

// CancelDelete discards a pending delete confirmation
func (h *EventsHandler) CancelDelete(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "confirmation token required")
		return
	}

	h.deps.Confirm.Cancel(req.Token)
	response.OK(c, http.StatusOK, "deletion cancelled", nil)
}

func eventPayload(form forms.EventForm) upstream.EventForm {
	return upstream.EventForm{
		Title:       form.Title,
		Description: form.Description,
		Location:    form.Location,
		ReleaseDate: form.ReleaseDate,
		StartDate:   form.StartDate,
		Deadline:    form.Deadline,
		ImageURL:    form.ImageURL,
		Status:      form.Status,
	}
}
