package event

import "fmt"

// Event represents a volunteer event as served by the backend API.
// Date fields stay as the backend's ISO strings, display formatting is the
// portal's job. ApplicationCount is a string on the wire.
type Event struct {
	ID                string  `json:"_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Location          string  `json:"location"`
	ReleaseDate       string  `json:"releaseDate"`
	StartDate         string  `json:"startDate"`
	Deadline          string  `json:"deadline"`
	ImageURL          string  `json:"imageUrl"`
	Status            Status  `json:"status"`
	ApplicationCount  string  `json:"applicationCount"`
	TotalWorkingHours float64 `json:"totalWorkingHours"`
}

// Status represents the lifecycle state of an event
type Status byte

const (
	StatusActive Status = iota
	StatusPaused
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// MarshalJSON implements the json.Marshaler interface
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *Status) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	status, valid := StatusFromString(str)
	if !valid {
		return fmt.Errorf("invalid event status: %s", str)
	}
	*s = status
	return nil
}

// StatusFromString converts a string to a Status
func StatusFromString(s string) (Status, bool) {
	switch s {
	case "active":
		return StatusActive, true
	case "paused":
		return StatusPaused, true
	case "closed":
		return StatusClosed, true
	default:
		return StatusActive, false
	}
}

// StatusNames lists every known event status in wire form
func StatusNames() []string {
	return []string{"active", "paused", "closed"}
}
