package upstream

import (
	"context"

	"github.com/ocn-community/volunteer-portal/internal/domain/application"
)

// ApplicationForm is the volunteer application submission payload
type ApplicationForm struct {
	EventID                    string `json:"eventId"`
	FirstName                  string `json:"firstName"`
	LastName                   string `json:"lastName"`
	Email                      string `json:"email"`
	Address                    string `json:"address"`
	PhoneNumber                string `json:"phoneNumber"`
	SpokenLanguage             string `json:"spokenLanguage"`
	WrittenLanguage            string `json:"writtenLanguage"`
	VolunteerExperience        string `json:"volunteerExperience"`
	ReferralSource             string `json:"referralSource,omitempty"`
	ReferralContactPhoneNumber string `json:"referralContactPhoneNumber,omitempty"`
	SkillsAndExpertise         string `json:"skillsAndExpertise,omitempty"`
	MotivationToVolunteer      string `json:"motivationToVolunteer,omitempty"`
}

// ListApplications fetches every application in the nested shape
func (c *Client) ListApplications(ctx context.Context) ([]application.Record, error) {
	var records []application.Record
	if err := c.get(ctx, "/application/", "", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListEventApplications fetches the applications for one event
func (c *Client) ListEventApplications(ctx context.Context, eventID string) ([]application.Record, error) {
	var records []application.Record
	if err := c.get(ctx, "/application/"+eventID, "", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetParticipation fetches one event participation sub-record by its
// composite key
func (c *Client) GetParticipation(ctx context.Context, token, uniqueID string) (*application.Row, error) {
	var row application.Row
	if err := c.get(ctx, "/application/event-sub/"+uniqueID, token, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateParticipation edits one event participation sub-record, admin only
func (c *Client) UpdateParticipation(ctx context.Context, token, uniqueID string, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, "PUT", "/application/event-sub/"+uniqueID, token, body, nil)
}

// SubmitApplication submits a volunteer application. Submission is public.
func (c *Client) SubmitApplication(ctx context.Context, form ApplicationForm) error {
	return c.do(ctx, "POST", "/application/submit", "", form, nil)
}

// DeleteApplication removes one (event, participation) pair, admin only
func (c *Client) DeleteApplication(ctx context.Context, token, eventID, uniqueID string) error {
	return c.do(ctx, "DELETE", "/application/delete/"+eventID+"/"+uniqueID, token, nil, nil)
}

// ListUserApplications fetches the signed-in volunteer's own applications
func (c *Client) ListUserApplications(ctx context.Context, token string) ([]application.UserApplication, error) {
	var apps []application.UserApplication
	if err := c.get(ctx, "/working-hours/my-applications", token, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
