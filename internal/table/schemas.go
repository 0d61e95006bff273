package table

import (
	"github.com/ocn-community/volunteer-portal/internal/dates"
	"github.com/ocn-community/volunteer-portal/internal/domain/application"
	"github.com/ocn-community/volunteer-portal/internal/domain/common"
	"github.com/ocn-community/volunteer-portal/internal/domain/event"
	"github.com/ocn-community/volunteer-portal/internal/domain/workinghours"
)

// The four tables of the portal are instantiations of the same engine.
// Column labels are i18n keys, resolved at render time.

// Events returns the schema for the public events table
func Events() *Schema[event.Event] {
	return &Schema[event.Event]{
		Name: "events",
		Columns: []Column{
			{ID: "title", Label: "event", Sortable: true},
			{ID: "location", Label: "location", Sortable: true},
			{ID: "releaseDate", Label: "releaseDate", Sortable: true},
			{ID: "startDate", Label: "startDate", Sortable: true},
			{ID: "deadline", Label: "deadline", Sortable: true},
			{ID: "applicationCount", Label: "applications", Sortable: true},
			{ID: "totalWorkingHours", Label: "totalWorkingHours", Sortable: true},
			{ID: "status", Label: "status", Sortable: true},
			{ID: ActionsColumn, Label: "actions", Sortable: false},
		},
		Statuses:   event.StatusNames(),
		Key:        func(e event.Event) string { return e.ID },
		SearchText: func(e event.Event) string { return e.Title },
		Status:     func(e event.Event) string { return e.Status.String() },
		SortValue: map[string]func(event.Event) any{
			"title":            func(e event.Event) any { return e.Title },
			"location":         func(e event.Event) any { return e.Location },
			"releaseDate":      func(e event.Event) any { return dates.ParseTimestamp(e.ReleaseDate) },
			"startDate":        func(e event.Event) any { return dates.ParseTimestamp(e.StartDate) },
			"deadline":         func(e event.Event) any { return dates.ParseTimestamp(e.Deadline) },
			"applicationCount": func(e event.Event) any { return e.ApplicationCount },
			"totalWorkingHours": func(e event.Event) any {
				return e.TotalWorkingHours
			},
			"status": func(e event.Event) any { return e.Status.String() },
		},
	}
}

// Applications returns the schema for the admin applications table, fed by
// flattened rows
func Applications() *Schema[application.Row] {
	return &Schema[application.Row]{
		Name: "applications",
		Columns: []Column{
			{ID: "eventTitle", Label: "event", Sortable: true},
			{ID: "firstName", Label: "firstName", Sortable: true},
			{ID: "lastName", Label: "lastName", Sortable: true},
			{ID: "address", Label: "location", Sortable: true},
			{ID: "phoneNumber", Label: "phoneNumber", Sortable: true},
			{ID: "email", Label: "email", Sortable: true},
			{ID: "createdAt", Label: "appCreatedAt", Sortable: true},
			{ID: "spokenLanguage", Label: "spokenLanguage", Sortable: true},
			{ID: "writtenLanguage", Label: "writtenLanguage", Sortable: true},
			{ID: "status", Label: "status", Sortable: true},
			{ID: "certificateStatus", Label: "certificateStatus", Sortable: true},
			{ID: ActionsColumn, Label: "actions", Sortable: false},
		},
		Statuses:   common.ReviewStatusNames(),
		Key:        func(r application.Row) string { return r.EventUniqueID },
		SearchText: func(r application.Row) string { return r.FirstName },
		Status:     func(r application.Row) string { return r.Status.String() },
		SortValue: map[string]func(application.Row) any{
			"eventTitle":        func(r application.Row) any { return r.EventTitle },
			"firstName":         func(r application.Row) any { return r.FirstName },
			"lastName":          func(r application.Row) any { return r.LastName },
			"address":           func(r application.Row) any { return r.Address },
			"phoneNumber":       func(r application.Row) any { return r.PhoneNumber },
			"email":             func(r application.Row) any { return r.Email },
			"createdAt":         func(r application.Row) any { return dates.ParseTimestamp(r.CreatedAt) },
			"spokenLanguage":    func(r application.Row) any { return r.SpokenLanguage },
			"writtenLanguage":   func(r application.Row) any { return r.WrittenLanguage },
			"status":            func(r application.Row) any { return r.Status.String() },
			"certificateStatus": func(r application.Row) any { return r.CertificateStatus.String() },
		},
	}
}

// WorkingHours returns the schema for the admin working-hours table
func WorkingHours() *Schema[workinghours.Entry] {
	return &Schema[workinghours.Entry]{
		Name: "working-hours",
		Columns: []Column{
			{ID: "userName", Label: "userName", Sortable: true},
			{ID: "title", Label: "event", Sortable: true},
			{ID: "startTime", Label: "startTime", Sortable: true},
			{ID: "endTime", Label: "endTime", Sortable: true},
			{ID: "hours", Label: "hours", Sortable: true},
			{ID: "status", Label: "status", Sortable: true},
			{ID: ActionsColumn, Label: "actions", Sortable: false},
		},
		Statuses:   common.ReviewStatusNames(),
		Key:        func(e workinghours.Entry) string { return e.ID },
		SearchText: func(e workinghours.Entry) string { return e.EventTitle },
		Status:     func(e workinghours.Entry) string { return e.Status.String() },
		SortValue: map[string]func(workinghours.Entry) any{
			"userName":  func(e workinghours.Entry) any { return e.UserName },
			"title":     func(e workinghours.Entry) any { return e.EventTitle },
			"startTime": func(e workinghours.Entry) any { return dates.ParseTimestamp(e.StartTime) },
			"endTime":   func(e workinghours.Entry) any { return dates.ParseTimestamp(e.EndTime) },
			"hours":     func(e workinghours.Entry) any { return e.Hours },
			"status":    func(e workinghours.Entry) any { return e.Status.String() },
		},
	}
}

// MyApplications returns the schema for the signed-in volunteer's own
// applications table
func MyApplications() *Schema[application.UserApplication] {
	return &Schema[application.UserApplication]{
		Name: "my-applications",
		Columns: []Column{
			{ID: "eventTitle", Label: "event", Sortable: true},
			{ID: "totalHours", Label: "totalWorkingHours", Sortable: true},
			{ID: "startDate", Label: "startDate", Sortable: true},
			{ID: "status", Label: "status", Sortable: true},
			{ID: "certificateStatus", Label: "certificateStatus", Sortable: true},
			{ID: ActionsColumn, Label: "actions", Sortable: false},
		},
		Statuses:   common.ReviewStatusNames(),
		Key:        func(a application.UserApplication) string { return a.EventID },
		SearchText: func(a application.UserApplication) string { return a.EventTitle },
		Status:     func(a application.UserApplication) string { return a.Status.String() },
		SortValue: map[string]func(application.UserApplication) any{
			"eventTitle": func(a application.UserApplication) any { return a.EventTitle },
			"totalHours": func(a application.UserApplication) any { return a.TotalHours },
			"startDate":  func(a application.UserApplication) any { return dates.ParseTimestamp(a.StartDate) },
			"status":     func(a application.UserApplication) any { return a.Status.String() },
			"certificateStatus": func(a application.UserApplication) any {
				return a.CertificateStatus.String()
			},
		},
	}
}
