// Package table implements the generic filter, status-filter, paginate and
// sort pipeline shared by every data table in the portal. One Schema value
// per table parameterizes the engine, the pipeline itself is written once.
package table

import "strings"

// ActionsColumn is the reserved identifier of the per-row actions column
const ActionsColumn = "actions"

// Direction is a sort direction
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// DirectionFromString converts a string to a Direction, defaulting to
// ascending for anything unknown
func DirectionFromString(s string) Direction {
	if s == string(Descending) {
		return Descending
	}
	return Ascending
}

// Column describes one column of a table's fixed column list
type Column struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
}

// Selection is a multi-select of identifiers that may be the "all" sentinel.
// The zero value selects nothing, use All for the sentinel.
type Selection struct {
	all  bool
	keys map[string]struct{}
}

// All returns the sentinel selection matching everything
func All() Selection {
	return Selection{all: true}
}

// Pick returns a selection containing exactly the given keys
func Pick(keys ...string) Selection {
	sel := Selection{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		sel.keys[k] = struct{}{}
	}
	return sel
}

// ParseSelection parses a query-parameter selection: the literal "all" (or an
// absent value) is the sentinel, anything else is a comma-separated key list.
func ParseSelection(raw string) Selection {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "all" {
		return All()
	}

	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return Pick(keys...)
}

// IsAll reports whether the selection is the sentinel
func (s Selection) IsAll() bool {
	return s.all
}

// Contains reports whether the selection includes the key
func (s Selection) Contains(key string) bool {
	if s.all {
		return true
	}
	_, ok := s.keys[key]
	return ok
}

// Size returns the number of explicitly selected keys
func (s Selection) Size() int {
	return len(s.keys)
}

// State is the ephemeral per-table-instance view state. It is owned by one
// view instance, never persisted, and reset to defaults on mount.
type State struct {
	SearchText     string
	StatusFilter   Selection
	VisibleColumns Selection
	SortColumn     string
	SortDirection  Direction
	Page           int
	RowsPerPage    int
}

// DefaultState returns the mount-time state for a table
func DefaultState(sortColumn string, rowsPerPage int) State {
	return State{
		StatusFilter:   All(),
		VisibleColumns: All(),
		SortColumn:     sortColumn,
		SortDirection:  Ascending,
		Page:           1,
		RowsPerPage:    rowsPerPage,
	}
}

// Schema parameterizes the pipeline for one table type
type Schema[R any] struct {
	// Name identifies the table in logs and empty-state messages
	Name string
	// Columns is the fixed column list, in display order
	Columns []Column
	// Statuses is the full set of known statuses for this table
	Statuses []string
	// Key returns the row's unique key
	Key func(R) string
	// SearchText returns the designated name field the text filter matches
	SearchText func(R) string
	// Status returns the row's status in wire form
	Status func(R) string
	// SortValue holds one accessor per sortable column. Accessors return
	// string, int64 or float64, date columns return parsed timestamps.
	SortValue map[string]func(R) any
}

// VisibleColumns resolves the column headers to render: the selected subset
// of the fixed list, in the fixed list's order. Selection never reorders
// columns. The actions column is dropped for viewers that get no actions.
func (s *Schema[R]) VisibleColumns(sel Selection, includeActions bool) []Column {
	visible := make([]Column, 0, len(s.Columns))
	for _, col := range s.Columns {
		if !sel.Contains(col.ID) {
			continue
		}
		if col.ID == ActionsColumn && !includeActions {
			continue
		}
		visible = append(visible, col)
	}
	return visible
}
