package handlers

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/ocn-community/volunteer-portal/internal/actions"
	"github.com/ocn-community/volunteer-portal/internal/auth"
	"github.com/ocn-community/volunteer-portal/internal/dates"
	"github.com/ocn-community/volunteer-portal/internal/domain/application"
	"github.com/ocn-community/volunteer-portal/internal/domain/common"
	"github.com/ocn-community/volunteer-portal/internal/forms"
	"github.com/ocn-community/volunteer-portal/internal/logger"
	"github.com/ocn-community/volunteer-portal/internal/response"
	"github.com/ocn-community/volunteer-portal/internal/table"
	"github.com/ocn-community/volunteer-portal/internal/upstream"
	"github.com/ocn-community/volunteer-portal/internal/view"
)

const applicationsResource = "applications"

// ApplicationsHandler serves the admin applications table, fed by flattened
// rows, plus the public application submission
type ApplicationsHandler struct {
	deps   *Deps
	schema *table.Schema[application.Row]
	loader *view.Loader[application.Row]
	log    *log.Logger
}

// NewApplicationsHandler creates the applications handler
func NewApplicationsHandler(deps *Deps) *ApplicationsHandler {
	schema := table.Applications()
	return &ApplicationsHandler{
		deps:   deps,
		schema: schema,
		loader: view.NewLoader(schema.Key),
		log:    logger.Handler("applications"),
	}
}

// applicationRow is one rendered applications-table row
type applicationRow struct {
	application.Row
	CreatedAtDisplay string           `json:"createdAtDisplay"`
	Actions          []actions.Action `json:"actions"`
}

// fetch loads the nested records and flattens them into table rows
func (h *ApplicationsHandler) fetch(ctx context.Context) ([]application.Row, error) {
	records, err := h.deps.Client.ListApplications(ctx)
	if err != nil {
		return nil, err
	}

	rows := application.Flatten(records)
	if err := application.VerifyRowIDs(rows); err != nil {
		// the table still renders, but row actions may hit the wrong target
		h.log.Warn("Backend served colliding participation ids", "error", err)
	}
	return rows, nil
}

// View serves one page of the applications table, admin only
func (h *ApplicationsHandler) View(c *gin.Context) {
	session := auth.FromContext(c)
	st := h.deps.parseState(c, "createdAt")

	rows, err := h.loader.Load(c.Request.Context(), h.fetch)
	if err != nil {
		if !h.loader.Loaded() {
			h.deps.upstreamError(c, err)
			return
		}
		h.log.Warn("Serving installed rows after failed refresh", "error", err)
	}

	page := h.schema.Apply(rows, st)

	rendered := make([]applicationRow, 0, len(page.Rows))
	for _, r := range page.Rows {
		rendered = append(rendered, applicationRow{
			Row:              r,
			CreatedAtDisplay: dates.FormatDate(r.CreatedAt, h.deps.UTCOffsetHours),
			Actions:          h.deps.translateActions(c, actions.ForApplication(r, session)),
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
		result.EmptyMessage = h.deps.Labels.Label(h.deps.lang(c), "noApplications")
	}

	response.OK(c, http.StatusOK, "", result)
}

// EventApplications serves the flattened applications for one event,
// admin only
func (h *ApplicationsHandler) EventApplications(c *gin.Context) {
	records, err := h.deps.Client.ListEventApplications(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	rows := application.Flatten(records)
	if err := application.VerifyRowIDs(rows); err != nil {
		h.log.Warn("Backend served colliding participation ids", "error", err)
	}
	response.OK(c, http.StatusOK, "", rows)
}

// GetParticipation serves one participation sub-record, the edit form
// prefills from it
func (h *ApplicationsHandler) GetParticipation(c *gin.Context) {
	session := auth.FromContext(c)

	row, err := h.deps.Client.GetParticipation(c.Request.Context(), session.Token, c.Param("uniqueId"))
	if err != nil {
		h.deps.upstreamError(c, err)
		return
	}
	response.OK(c, http.StatusOK, "", row)
}

// Submit accepts a volunteer application. Submission is public.
func (h *ApplicationsHandler) Submit(c *gin.Context) {
	var form forms.ApplicationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.deps.Validate.Validate(form); err != nil {
		response.FromError(c, err)
		return
	}

	payload := upstream.ApplicationForm{
		EventID:                    form.EventID,
		FirstName:                  form.FirstName,
		LastName:                   form.LastName,
		Email:                      form.Email,
		Address:                    form.Address,
		PhoneNumber:                form.PhoneNumber,
		SpokenLanguage:             form.SpokenLanguage,
		WrittenLanguage:            form.WrittenLanguage,
		VolunteerExperience:        form.VolunteerExperience,
		ReferralSource:             form.ReferralSource,
		ReferralContactPhoneNumber: form.ReferralContactPhoneNumber,
		SkillsAndExpertise:         form.SkillsAndExpertise,
		MotivationToVolunteer:      form.MotivationToVolunteer,
	}
	if err := h.deps.Client.SubmitApplication(c.Request.Context(), payload); err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	h.loader.Invalidate()
	h.log.Info("Application submitted", "event_id", form.EventID)
	response.OK(c, http.StatusCreated, "application submitted", nil)
}

// statusRequest changes one participation's review status
type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus edits one participation's review status, admin only
func (h *ApplicationsHandler) UpdateStatus(c *gin.Context) {
	session := auth.FromContext(c)
	uniqueID := c.Param("uniqueId")

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status required")
		return
	}
	status, ok := common.ReviewStatusFromString(req.Status)
	if !ok {
		response.BadRequest(c, "unknown status: "+req.Status)
		return
	}

	if err := h.deps.Client.UpdateParticipation(c.Request.Context(), session.Token, uniqueID, req.Status); err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	h.loader.Patch(uniqueID, func(row *application.Row) {
		row.Status = status
	})
	h.log.Info("Application status updated", "unique_id", uniqueID, "status", req.Status)
	response.OK(c, http.StatusOK, "status updated", nil)
}

// certificateRequest targets one (event, applicant) participation
type certificateRequest struct {
	EventID string `json:"eventId" binding:"required"`
	UserID  string `json:"userId" binding:"required"`
}

// IssueCertificate approves a participation's certificate, admin only
func (h *ApplicationsHandler) IssueCertificate(c *gin.Context) {
	h.setCertificate(c, common.CertificateApproved)
}

// RejectCertificate rejects a participation's certificate, admin only
func (h *ApplicationsHandler) RejectCertificate(c *gin.Context) {
	h.setCertificate(c, common.CertificateRejected)
}

func (h *ApplicationsHandler) setCertificate(c *gin.Context, status common.CertificateStatus) {
	session := auth.FromContext(c)

	var req certificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "eventId and userId required")
		return
	}

	err := h.deps.Client.UpdateCertificateStatus(
		c.Request.Context(), session.Token, req.EventID, req.UserID, status.String())
	if err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	for _, r := range h.loader.Rows() {
		if r.EventID == req.EventID && r.ApplicantID == req.UserID {
			h.loader.Patch(r.EventUniqueID, func(row *application.Row) {
				row.CertificateStatus = status
			})
			break
		}
	}

	h.log.Info("Certificate status updated",
		"event_id", req.EventID, "user_id", req.UserID, "status", status.String())
	response.OK(c, http.StatusOK, "certificate status updated", nil)
}

// RequestDelete records the intent to delete one (event, participation) pair
// and returns the confirmation token
func (h *ApplicationsHandler) RequestDelete(c *gin.Context) {
	eventID := c.Param("eventId")
	uniqueID := c.Param("uniqueId")
	token := h.deps.Confirm.Request(applicationsResource, eventID, uniqueID)

	response.OK(c, http.StatusOK, "confirmation required", gin.H{
		"confirmToken": token,
	})
}

// ConfirmDelete consumes a confirmation token and deletes the participation
func (h *ApplicationsHandler) ConfirmDelete(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "confirmation token required")
		return
	}

	eventID, uniqueID, ok := h.deps.Confirm.Confirm(applicationsResource, req.Token)
	if !ok {
		response.BadRequest(c, "unknown or expired confirmation")
		return
	}

	session := auth.FromContext(c)
	if err := h.deps.Client.DeleteApplication(c.Request.Context(), session.Token, eventID, uniqueID); err != nil {
		h.deps.upstreamError(c, err)
		return
	}

	h.loader.Remove(uniqueID)
	h.log.Info("Application deleted", "event_id", eventID, "unique_id", uniqueID)
	response.OK(c, http.StatusOK, "application deleted", nil)
}

// CancelDelete discards a pending delete confirmation
func (h *ApplicationsHandler) CancelDelete(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "confirmation token required")
		return
	}

	h.deps.Confirm.Cancel(req.Token)
	response.OK(c, http.StatusOK, "deletion cancelled", nil)
}
