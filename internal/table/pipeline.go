package table

import (
	"sort"
	"strings"
)

// Page is the result of running the pipeline over a row collection
type Page[R any] struct {
	Rows      []R `json:"rows"`
	Page      int `json:"page"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// Apply runs the fixed pipeline: text filter, status filter, pagination
// window, then a stable sort of the current page's slice.
//
// Sorting after windowing mirrors the behavior this engine replaces: sort
// orders rows within a page, not across the whole filtered set.
func (s *Schema[R]) Apply(rows []R, st State) Page[R] {
	filtered := s.FilterSearch(rows, st.SearchText)
	filtered = s.FilterStatus(filtered, st.StatusFilter)

	window, page, pageCount := Window(filtered, st.Page, st.RowsPerPage)
	sorted := s.SortPage(window, st.SortColumn, st.SortDirection)

	return Page[R]{
		Rows:      sorted,
		Page:      page,
		PageCount: pageCount,
		Total:     len(filtered),
	}
}

// FilterSearch keeps rows whose designated name field contains the query,
// case-insensitively. An empty query is the identity.
func (s *Schema[R]) FilterSearch(rows []R, query string) []R {
	if query == "" {
		return rows
	}

	needle := strings.ToLower(query)
	filtered := make([]R, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(s.SearchText(row)), needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// FilterStatus keeps rows whose status is in the selection. The "all"
// sentinel and a selection covering every known status are both the
// identity, selecting every status is deliberately equivalent to "all".
func (s *Schema[R]) FilterStatus(rows []R, sel Selection) []R {
	if sel.IsAll() || sel.Size() == len(s.Statuses) {
		return rows
	}

	filtered := make([]R, 0, len(rows))
	for _, row := range rows {
		if sel.Contains(s.Status(row)) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Window slices out the requested page. The page number is clamped to
// [1, pageCount] so a shrinking row set or rowsPerPage change can never
// strand the view past the last page.
func Window[R any](rows []R, page, rowsPerPage int) ([]R, int, int) {
	if rowsPerPage < 1 {
		rowsPerPage = 1
	}

	pageCount := (len(rows) + rowsPerPage - 1) / rowsPerPage

	if page < 1 {
		page = 1
	}
	if pageCount > 0 && page > pageCount {
		page = pageCount
	}

	start := (page - 1) * rowsPerPage
	if start >= len(rows) {
		return []R{}, page, pageCount
	}
	end := start + rowsPerPage
	if end > len(rows) {
		end = len(rows)
	}

	return rows[start:end], page, pageCount
}

// SortPage stably sorts a page slice by the given column. Columns without a
// sort accessor leave the slice order untouched. Descending negates the
// comparison, equal keys keep their prior relative order.
func (s *Schema[R]) SortPage(rows []R, column string, dir Direction) []R {
	value, ok := s.SortValue[column]
	if !ok {
		return rows
	}

	sorted := make([]R, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareValues(value(sorted[i]), value(sorted[j]))
		if dir == Descending {
			cmp = -cmp
		}
		return cmp < 0
	})

	return sorted
}

// compareValues orders two sort keys of the same dynamic type
func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		return strings.Compare(av, b.(string))
	case int64:
		bv := b.(int64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	case float64:
		bv := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	return 0
}
