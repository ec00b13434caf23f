// Package mode holds the interactive pick-list modes and the capability set
// they share.
package mode

import (
	"fmt"
	"iter"
)

// MaxSearchSelectResults caps how many matches a search-select mode keeps per
// search. Shared by every mode so the rendered list height stays bounded.
const MaxSearchSelectResults = 5

// SearchSelect is the capability set implemented by "type to filter, arrow to
// pick" modes. Each concrete mode owns its candidate set, query buffer, and
// results; there is no shared base state.
//
// Mutating the query does not re-filter on its own; callers follow each
// mutation with a Search call.
type SearchSelect[T any] interface {
	fmt.Stringer

	// Search re-filters the candidate set against the current query,
	// replacing the results and resetting the selection to the first match.
	Search()

	Query() string
	SetQuery(query string)

	// InsertMode reports whether the query buffer accepts character input,
	// as opposed to navigation focus. It is a bare flag with no derived
	// effects.
	InsertMode() bool
	SetInsertMode(insert bool)

	// Results iterates over the current filtered set in ranked order.
	Results() iter.Seq[T]
	ResultCount() int

	Selection() (T, bool)
	SelectedIndex() int
	SelectPrevious()
	SelectNext()
}
