// Package handlers exposes the portal's HTTP surface: one view endpoint per
// table running the shared pipeline, plus the row actions and form
// submissions each table offers.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ocn-community/volunteer-portal/internal/actions"
	"github.com/ocn-community/volunteer-portal/internal/apperr"
	"github.com/ocn-community/volunteer-portal/internal/forms"
	"github.com/ocn-community/volunteer-portal/internal/i18n"
	"github.com/ocn-community/volunteer-portal/internal/metrics"
	"github.com/ocn-community/volunteer-portal/internal/response"
	"github.com/ocn-community/volunteer-portal/internal/table"
	"github.com/ocn-community/volunteer-portal/internal/upstream"
)

// Deps bundles the collaborators every handler shares
type Deps struct {
	Client   *upstream.Client
	Confirm  *actions.Confirmer
	Validate *forms.Validator
	Labels   i18n.Bundle
	Metrics  *metrics.Metrics

	// UTCOffsetHours shifts displayed dates, see config.Display
	UTCOffsetHours  int
	RowsPerPage     int
	DefaultLanguage string
}

// upstreamError reports a failed backend call and writes the mapped response
func (d *Deps) upstreamError(c *gin.Context, err error) {
	if d.Metrics != nil {
		d.Metrics.UpstreamError(apperr.KindOf(err).String())
	}
	response.FromError(c, err)
}

// lang picks the label language for a request
func (d *Deps) lang(c *gin.Context) string {
	if v := c.Query("lang"); v != "" {
		return v
	}
	return d.DefaultLanguage
}

// translateColumns resolves column label keys for a request's language
func (d *Deps) translateColumns(c *gin.Context, cols []table.Column) []table.Column {
	lang := d.lang(c)
	out := make([]table.Column, len(cols))
	for i, col := range cols {
		out[i] = col
		out[i].Label = d.Labels.Label(lang, col.Label)
	}
	return out
}

// translateActions resolves action label keys for a request's language
func (d *Deps) translateActions(c *gin.Context, items []actions.Action) []actions.Action {
	lang := d.lang(c)
	out := make([]actions.Action, len(items))
	for i, a := range items {
		out[i] = a
		out[i].Label = d.Labels.Label(lang, a.Label)
	}
	return out
}

// parseState reads a table's view state from query parameters, falling back
// to the mount defaults
func (d *Deps) parseState(c *gin.Context, defaultSort string) table.State {
	st := table.DefaultState(defaultSort, d.RowsPerPage)

	st.SearchText = c.Query("searchText")
	if v, ok := c.GetQuery("status"); ok {
		st.StatusFilter = table.ParseSelection(v)
	}
	if v, ok := c.GetQuery("columns"); ok {
		st.VisibleColumns = table.ParseSelection(v)
	}
	if v := c.Query("sortColumn"); v != "" {
		st.SortColumn = v
	}
	if v := c.Query("sortDirection"); v != "" {
		st.SortDirection = table.DirectionFromString(v)
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		st.Page = v
	}
	if v, err := strconv.Atoi(c.Query("rowsPerPage")); err == nil && v > 0 {
		st.RowsPerPage = v
	}

	return st
}

// tableView is the rendered form of one table page
type tableView struct {
	Columns      []table.Column `json:"columns"`
	Rows         any            `json:"rows"`
	Page         int            `json:"page"`
	PageCount    int            `json:"pageCount"`
	Total        int            `json:"total"`
	EmptyMessage string         `json:"emptyMessage,omitempty"`
}

// confirmRequest carries a delete-confirmation token
type confirmRequest struct {
	Token string `json:"token" binding:"required"`
}
