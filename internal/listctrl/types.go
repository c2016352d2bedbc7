package listctrl

import (
	"time"

	"opsdeck/internal/domain"
)

// DefaultDebounce is the search quiescence window: the debounced search
// value trails the raw keystrokes by this much.
const DefaultDebounce = 300 * time.Millisecond

// SortDirection is the requested ordering for the sort field
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState is the visual state of a column header
type SortState int

const (
	SortUnsorted SortState = iota
	SortAscending
	SortDescending
)

// Phase describes where the controller is in its fetch lifecycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

// Query is the state behind one list view: the current page, the raw and
// debounced search text, and the sort order. It is owned exclusively by
// one controller and mutated only on the UI loop.
type Query struct {
	Page      int
	RawSearch string
	Search    string // trails RawSearch by the debounce window
	SortField string // empty means server default order
	SortDir   SortDirection
}

// Filters is the snapshot handed to the fetch function. An empty Search
// means "no search param"; SortBy/SortDirection are only set together.
type Filters struct {
	Page          int
	Search        string
	SortBy        string
	SortDirection string
}

// Result is the outcome of one fetch. Construct it only through Success
// or Failure so items and error text stay mutually exclusive.
type Result[T any] struct {
	ok    bool
	items []T
	meta  *domain.PageMeta
	err   string
}

// Success builds a result carrying one page of items
func Success[T any](items []T, meta *domain.PageMeta) Result[T] {
	return Result[T]{ok: true, items: items, meta: meta}
}

// Failure builds a result carrying only an error message
func Failure[T any](msg string) Result[T] {
	return Result[T]{err: msg}
}

// OK reports whether the fetch succeeded
func (r Result[T]) OK() bool { return r.ok }

// Items returns the fetched page (nil on failure)
func (r Result[T]) Items() []T { return r.items }

// Meta returns the pagination metadata (nil on failure)
func (r Result[T]) Meta() *domain.PageMeta { return r.meta }

// Err returns the error message (empty on success)
func (r Result[T]) Err() string { return r.err }
