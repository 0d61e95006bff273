package workinghours

import (
	"github.com/ocn-community/volunteer-portal/internal/domain/common"
)

// Entry is one submitted working-hours record. Times stay as the backend's
// ISO strings, Hours is the backend-computed duration.
type Entry struct {
	ID         string              `json:"_id"`
	UserName   string              `json:"userName"`
	EventTitle string              `json:"eventTitle"`
	StartTime  string              `json:"startTime"`
	EndTime    string              `json:"endTime"`
	Hours      float64             `json:"hours"`
	Status     common.ReviewStatus `json:"status"`
}
