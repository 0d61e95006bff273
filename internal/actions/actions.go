// Package actions decides which contextual actions a row offers to the
// current session. Builders return ordered action lists, the labels are i18n
// keys resolved at render time.
package actions

import (
	"github.com/ocn-community/volunteer-portal/internal/auth"
	"github.com/ocn-community/volunteer-portal/internal/domain/application"
	"github.com/ocn-community/volunteer-portal/internal/domain/common"
	"github.com/ocn-community/volunteer-portal/internal/domain/event"
	"github.com/ocn-community/volunteer-portal/internal/domain/workinghours"
)

// Action is one entry of a row's contextual menu. Navigation actions carry
// Href, mutating actions are posted back by key. Destructive actions must
// pass the confirmation step before the mutation fires.
type Action struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Href        string `json:"href,omitempty"`
	Destructive bool   `json:"destructive,omitempty"`
	Confirm     bool   `json:"confirm,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// ForEvent builds the events-table actions: everyone can view, admins can
// also edit and delete.
func ForEvent(e event.Event, session *auth.Session) []Action {
	items := []Action{
		{Key: "view", Label: "view", Href: "/events/" + e.ID},
	}

	if session.IsAdmin() {
		items = append(items,
			Action{Key: "edit", Label: "edit", Href: "/events/" + e.ID + "/edit"},
			Action{Key: "delete", Label: "delete", Destructive: true, Confirm: true},
		)
	}

	return items
}

// ForApplication builds the applications-table actions. The whole menu is
// admin only, a non-admin session gets nothing.
func ForApplication(r application.Row, session *auth.Session) []Action {
	if !session.IsAdmin() {
		return []Action{}
	}

	return []Action{
		{Key: "edit", Label: "edit", Href: "/applications/" + r.EventID + "/" + r.EventUniqueID + "/edit"},
		{Key: "issueCertificate", Label: "issueCertificate"},
		{Key: "rejectCertificate", Label: "rejectCertificate"},
		{Key: "delete", Label: "delete", Destructive: true, Confirm: true},
	}
}

// ForWorkingEntry builds the working-hours-table actions, admin only
func ForWorkingEntry(e workinghours.Entry, session *auth.Session) []Action {
	if !session.IsAdmin() {
		return []Action{}
	}

	return []Action{
		{Key: "edit", Label: "edit", Href: "/working-hours/" + e.ID + "/edit"},
		{Key: "delete", Label: "delete", Destructive: true, Confirm: true},
	}
}

// ForUserApplication builds the my-applications actions. Hours submission
// and certificate application open up once the application is verified,
// until then the row shows an informational placeholder.
func ForUserApplication(a application.UserApplication, session *auth.Session) []Action {
	if a.Status != common.StatusVerified {
		return []Action{
			{Key: "pending", Label: "underConsideration", Disabled: true},
		}
	}

	return []Action{
		{Key: "submitHours", Label: "submitHours", Href: "/my-applications/" + a.EventID},
		{Key: "applyCertificate", Label: "applyForCertificate"},
	}
}
