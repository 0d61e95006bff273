package upstream

import (
	"context"

	"github.com/ocn-community/volunteer-portal/internal/domain/workinghours"
)

// EntryForm is the working-hours submission or edit payload
type EntryForm struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Hours     float64 `json:"hours,omitempty"`
	Status    string  `json:"status,omitempty"`
}

// ListWorkingHours fetches every user's entries, admin only
func (c *Client) ListWorkingHours(ctx context.Context, token string) ([]workinghours.Entry, error) {
	var entries []workinghours.Entry
	if err := c.get(ctx, "/working-hours/", token, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListEventEntries fetches the signed-in volunteer's entries for one event
func (c *Client) ListEventEntries(ctx context.Context, token, eventID string) ([]workinghours.Entry, error) {
	var entries []workinghours.Entry
	if err := c.get(ctx, "/working-hours/working-entries/"+eventID, token, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntry fetches one working-hours entry
func (c *Client) GetEntry(ctx context.Context, token, entryID string) (*workinghours.Entry, error) {
	var entry workinghours.Entry
	if err := c.get(ctx, "/working-hours/working-entry/"+entryID, token, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// SubmitEntry submits a new working-hours entry for an event
func (c *Client) SubmitEntry(ctx context.Context, token, eventID string, form EntryForm) error {
	return c.do(ctx, "POST", "/working-hours/submit-entry/"+eventID, token, form, nil)
}

// UpdateEntry edits an entry's times or status, admin only
func (c *Client) UpdateEntry(ctx context.Context, token, entryID string, form EntryForm) error {
	return c.do(ctx, "PUT", "/working-hours/working-entry/"+entryID, token, form, nil)
}

// DeleteEntry removes an entry, admin only
func (c *Client) DeleteEntry(ctx context.Context, token, entryID string) error {
	return c.do(ctx, "DELETE", "/working-hours/working-entry/"+entryID, token, nil, nil)
}

// SubmitCertificate applies for a certificate for one of the volunteer's
// verified event applications
func (c *Client) SubmitCertificate(ctx context.Context, token, eventID string) error {
	return c.do(ctx, "POST", "/working-hours/submit-certificate/"+eventID, token, nil, nil)
}

// UpdateCertificateStatus issues or rejects a certificate, admin only
func (c *Client) UpdateCertificateStatus(ctx context.Context, token, eventID, userID, status string) error {
	body := map[string]string{
		"eventId":           eventID,
		"userId":            userID,
		"certificateStatus": status,
	}
	return c.do(ctx, "POST", "/working-hours/updateCertificateStatus", token, body, nil)
}

// SetPassword sets the signed-in volunteer's password via the backend
func (c *Client) SetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"password": password}
	return c.do(ctx, "POST", "/users/set-password", token, body, nil)
}
