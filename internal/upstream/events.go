package upstream

import (
	"context"

	"github.com/ocn-community/volunteer-portal/internal/domain/event"
)

// EventForm is the payload for creating or editing an event
type EventForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ReleaseDate string `json:"releaseDate"`
	StartDate   string `json:"startDate"`
	Deadline    string `json:"deadline"`
	ImageURL    string `json:"imageUrl"`
	Status      string `json:"status"`
}

// ListEvents fetches every event. The listing is public.
func (c *Client) ListEvents(ctx context.Context) ([]event.Event, error) {
	var events []event.Event
	if err := c.get(ctx, "/events", "", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches one event by id
func (c *Client) GetEvent(ctx context.Context, eventID string) (*event.Event, error) {
	var ev event.Event
	if err := c.get(ctx, "/events/"+eventID, "", &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// CreateEvent creates an event, admin only
func (c *Client) CreateEvent(ctx context.Context, token string, form EventForm) error {
	return c.do(ctx, "POST", "/events/create", token, form, nil)
}

// UpdateEvent edits an event, admin only
func (c *Client) UpdateEvent(ctx context.Context, token, eventID string, form EventForm) error {
	return c.do(ctx, "PUT", "/events/edit/"+eventID, token, form, nil)
}

// DeleteEvent removes an event, admin only
func (c *Client) DeleteEvent(ctx context.Context, token, eventID string) error {
	return c.do(ctx, "DELETE", "/events/delete/"+eventID, token, nil, nil)
}
