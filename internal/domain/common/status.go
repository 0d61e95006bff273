package common

import "fmt"

// ReviewStatus represents the review state shared by volunteer applications
// and working-hours entries
type ReviewStatus byte

const (
	StatusPending ReviewStatus = iota
	StatusVerified
	StatusRejected
)

func (s ReviewStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusVerified:
		return "verified"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MarshalJSON implements the json.Marshaler interface
func (s ReviewStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *ReviewStatus) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	status, valid := ReviewStatusFromString(str)
	if !valid {
		return fmt.Errorf("invalid review status: %s", str)
	}
	*s = status
	return nil
}

// ReviewStatusFromString converts a string to a ReviewStatus
func ReviewStatusFromString(s string) (ReviewStatus, bool) {
	switch s {
	case "pending":
		return StatusPending, true
	case "verified":
		return StatusVerified, true
	case "rejected":
		return StatusRejected, true
	default:
		return StatusPending, false
	}
}

// ReviewStatusNames lists every known review status in wire form
func ReviewStatusNames() []string {
	return []string{"pending", "verified", "rejected"}
}

// CertificateStatus tracks the volunteer-certificate workflow per event
// participation, separate from the application's own review status
type CertificateStatus byte

const (
	CertificateNotSubmitted CertificateStatus = iota
	CertificateSubmitted
	CertificateApproved
	CertificateRejected
)

func (s CertificateStatus) String() string {
	switch s {
	case CertificateNotSubmitted:
		return "notSubmitted"
	case CertificateSubmitted:
		return "submitted"
	case CertificateApproved:
		return "approved"
	case CertificateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MarshalJSON implements the json.Marshaler interface
func (s CertificateStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *CertificateStatus) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	status, valid := CertificateStatusFromString(str)
	if !valid {
		return fmt.Errorf("invalid certificate status: %s", str)
	}
	*s = status
	return nil
}

// CertificateStatusFromString converts a string to a CertificateStatus
func CertificateStatusFromString(s string) (CertificateStatus, bool) {
	switch s {
	case "notSubmitted":
		return CertificateNotSubmitted, true
	case "submitted":
		return CertificateSubmitted, true
	case "approved":
		return CertificateApproved, true
	case "rejected":
		return CertificateRejected, true
	default:
		return CertificateNotSubmitted, false
	}
}
