package application

import "fmt"

// Flatten expands nested application records into one row per
// (applicant, participation) pair.
//
// Applicant order and, within one applicant, participation order are
// preserved. An applicant with zero participations contributes zero rows.
// The returned row count always equals the sum of participation counts.
func Flatten(records []Record) []Row {
	rows := make([]Row, 0, len(records))

	for _, rec := range records {
		for _, p := range rec.Events {
			rows = append(rows, Row{
				ApplicantID:       rec.ApplicantID,
				FirstName:         rec.FirstName,
				LastName:          rec.LastName,
				Email:             rec.Email,
				Address:           rec.Address,
				PhoneNumber:       rec.PhoneNumber,
				SpokenLanguage:    rec.SpokenLanguage,
				WrittenLanguage:   rec.WrittenLanguage,
				CreatedAt:         rec.CreatedAt,
				EventID:           p.EventID,
				EventTitle:        p.EventTitle,
				Status:            p.Status,
				CertificateStatus: p.CertificateStatus,
				EventUniqueID:     p.UniqueID,
			})
		}
	}

	return rows
}

// VerifyRowIDs checks that every flattened row carries a distinct composite
// key. The table keys rows by EventUniqueID, so a duplicate would make two
// rows indistinguishable.
func VerifyRowIDs(rows []Row) error {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if _, dup := seen[row.EventUniqueID]; dup {
			return fmt.Errorf("duplicate event unique id: %s", row.EventUniqueID)
		}
		seen[row.EventUniqueID] = struct{}{}
	}
	return nil
}
