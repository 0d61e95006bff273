// Package i18n resolves user-facing labels. Labels come from the translation
// collaborator and are opaque display text, the portal never interprets them.
package i18n

// Bundle maps language -> label key -> display string
type Bundle map[string]map[string]string

// DefaultLanguage is the fallback language
const DefaultLanguage = "en"

// Label resolves a key for a language, falling back to the default language
// and finally to the key itself so a missing translation never breaks a view.
func (b Bundle) Label(lang, key string) string {
	if strings, ok := b[lang]; ok {
		if label, ok := strings[key]; ok {
			return label
		}
	}
	if strings, ok := b[DefaultLanguage]; ok {
		if label, ok := strings[key]; ok {
			return label
		}
	}
	return key
}

// Default returns the built-in label bundle
func Default() Bundle {
	return Bundle{
		"en": {
			"event":               "Event",
			"location":            "Location",
			"releaseDate":         "Release Date",
			"startDate":           "Start Date",
			"deadline":            "Deadline",
			"applications":        "Applications",
			"totalWorkingHours":   "Total Hours",
			"status":              "Status",
			"actions":             "Actions",
			"firstName":           "First Name",
			"lastName":            "Last Name",
			"phoneNumber":         "Phone Number",
			"email":               "Email",
			"appCreatedAt":        "Applied At",
			"spokenLanguage":      "Spoken Language",
			"writtenLanguage":     "Written Language",
			"certificateStatus":   "Certificate Status",
			"userName":            "Name",
			"startTime":           "Start Time",
			"endTime":             "End Time",
			"hours":               "Hours",
			"view":                "View",
			"edit":                "Edit",
			"delete":              "Delete",
			"issueCertificate":    "Issue Certificate",
			"rejectCertificate":   "Reject Certificate",
			"submitHours":         "Submit Hours",
			"applyForCertificate": "Apply for Certificate",
			"underConsideration":  "Under Consideration",
			"noEvents":            "No events found",
			"noApplications":      "No applications found",
			"noWorkingHours":      "No working hours found",
		},
	}
}
