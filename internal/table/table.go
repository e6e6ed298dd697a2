// Package table implements the client-side search and sort behavior
// shared by the dashboard's collection screens.
package table

import (
	"sort"
	"strings"
)

// Direction is the sort direction of a column. Repeated activation of the
// same column header cycles None -> Ascending -> Descending -> None.
type Direction int

const (
	None Direction = iota
	Ascending
	Descending
)

// SortState identifies the single sorted column, if any.
type SortState struct {
	Column    string
	Direction Direction
}

// Toggle returns the sort state after activating the given column header.
// Activating a different column always starts a fresh ascending sort.
func (s SortState) Toggle(column string) SortState {
	if s.Column != column {
		return SortState{Column: column, Direction: Ascending}
	}
	switch s.Direction {
	case Ascending:
		return SortState{Column: column, Direction: Descending}
	case Descending:
		return SortState{}
	default:
		return SortState{Column: column, Direction: Ascending}
	}
}

// ParseDirection maps the query-parameter form ("asc"/"desc") to a
// Direction. Anything else means unsorted.
func ParseDirection(s string) Direction {
	switch strings.ToLower(s) {
	case "asc":
		return Ascending
	case "desc":
		return Descending
	default:
		return None
	}
}

// Column describes one searchable, sortable field of a row. String is
// used both as the global-search haystack and as the default sort key;
// Less, when set, overrides the sort order (numeric columns).
type Column[T any] struct {
	Name   string
	String func(T) string
	Less   func(a, b T) bool
}

// Query is the table state supplied by the user: a global search string
// and at most one sorted column.
type Query struct {
	Search string
	Sort   SortState
}

// Result is the rows to render plus the unfiltered collection size, so a
// caller can tell "no search results" apart from "collection empty".
type Result[T any] struct {
	Rows  []T
	Total int
}

// EmptyCollection reports that there was nothing to show at all.
func (r Result[T]) EmptyCollection() bool { return r.Total == 0 }

// NoMatches reports that the collection has rows but the search excluded
// every one of them.
func (r Result[T]) NoMatches() bool { return r.Total > 0 && len(r.Rows) == 0 }

// Table applies queries against a fixed column set.
type Table[T any] struct {
	columns []Column[T]
}

func New[T any](columns ...Column[T]) *Table[T] {
	return &Table[T]{columns: columns}
}

// Apply filters items by case-insensitive substring match across every
// column, then sorts by the queried column. The input slice is not
// modified; equal keys keep their relative order.
func (t *Table[T]) Apply(items []T, q Query) Result[T] {
	rows := make([]T, 0, len(items))
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, item := range items {
		if needle == "" || t.matches(item, needle) {
			rows = append(rows, item)
		}
	}

	if col := t.column(q.Sort.Column); col != nil && q.Sort.Direction != None {
		less := col.Less
		if less == nil {
			less = func(a, b T) bool {
				return strings.ToLower(col.String(a)) < strings.ToLower(col.String(b))
			}
		}
		sort.SliceStable(rows, func(i, j int) bool {
			if q.Sort.Direction == Descending {
				return less(rows[j], rows[i])
			}
			return less(rows[i], rows[j])
		})
	}

	return Result[T]{Rows: rows, Total: len(items)}
}

func (t *Table[T]) matches(item T, needle string) bool {
	for _, col := range t.columns {
		if col.String == nil {
			continue
		}
		if strings.Contains(strings.ToLower(col.String(item)), needle) {
			return true
		}
	}
	return false
}

func (t *Table[T]) column(name string) *Column[T] {
	for i := range t.columns {
		if t.columns[i].Name == name {
			return &t.columns[i]
		}
	}
	return nil
}
