package application

import (
	"github.com/ocn-community/volunteer-portal/internal/domain/common"
)

// Participation is one event sub-record inside a nested application record
type Participation struct {
	UniqueID          string                   `json:"_id"`
	EventID           string                   `json:"eventId"`
	EventTitle        string                   `json:"eventTitle"`
	Status            common.ReviewStatus      `json:"status"`
	CertificateStatus common.CertificateStatus `json:"certificateStatus"`
}

// Record is the nested shape the backend serves: one applicant holding zero
// or more event participations
type Record struct {
	ApplicantID     string          `json:"_id"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	Address         string          `json:"address"`
	PhoneNumber     string          `json:"phoneNumber"`
	SpokenLanguage  string          `json:"spokenLanguage"`
	WrittenLanguage string          `json:"writtenLanguage"`
	CreatedAt       string          `json:"createdAt"`
	Events          []Participation `json:"events"`
}

// Row is one flattened (applicant, participation) pair. The nested events
// slice is consumed by flattening and never appears here.
type Row struct {
	ApplicantID       string                   `json:"_id"`
	FirstName         string                   `json:"firstName"`
	LastName          string                   `json:"lastName"`
	Email             string                   `json:"email"`
	Address           string                   `json:"address"`
	PhoneNumber       string                   `json:"phoneNumber"`
	SpokenLanguage    string                   `json:"spokenLanguage"`
	WrittenLanguage   string                   `json:"writtenLanguage"`
	CreatedAt         string                   `json:"createdAt"`
	EventID           string                   `json:"eventId"`
	EventTitle        string                   `json:"eventTitle"`
	Status            common.ReviewStatus      `json:"status"`
	CertificateStatus common.CertificateStatus `json:"certificateStatus"`
	EventUniqueID     string                   `json:"eventUniqueId"`
}

// UserApplication is one of the signed-in volunteer's own event applications,
// as listed on the my-applications table
type UserApplication struct {
	EventID           string                   `json:"_id"`
	EventTitle        string                   `json:"title"`
	StartDate         string                   `json:"startDate"`
	Status            common.ReviewStatus      `json:"status"`
	CertificateStatus common.CertificateStatus `json:"certificateStatus"`
	TotalHours        float64                  `json:"totalWorkingHours"`
}
