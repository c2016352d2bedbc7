package listctrl

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"opsdeck/internal/domain"
)

// FetchFunc loads one page of items for the given filter snapshot.
// It runs off the UI loop (inside a tea.Cmd) and must not mutate the
// controller; its outcome comes back as a message.
type FetchFunc[T any] func(ctx context.Context, f Filters) Result[T]

// searchSettledMsg fires when the debounce window elapses with no
// further keystrokes. gen identifies the keystroke that scheduled it.
type searchSettledMsg struct {
	ctrl uint64
	gen  uint64
}

// fetchDoneMsg carries a fetch result tagged with the sequence number
// of the request that produced it.
type fetchDoneMsg[T any] struct {
	ctrl   uint64
	seq    uint64
	result Result[T]
}

var nextControllerID atomic.Uint64

// Controller coordinates pagination, debounced search and sort toggling
// for one list view, and guarantees that only the newest in-flight fetch
// ever becomes visible state. All methods must be called from the UI
// loop; the only concurrency is the fetch command itself.
type Controller[T any] struct {
	id       uint64
	fetch    FetchFunc[T]
	debounce time.Duration

	query Query
	phase Phase
	items []T
	meta  *domain.PageMeta
	err   string

	searchGen uint64 // generation of the newest pending debounce timer
	fetchSeq  uint64 // sequence of the newest dispatched fetch
}

// Option configures a Controller
type Option[T any] func(*Controller[T])

// WithDebounce overrides the search quiescence window
func WithDebounce[T any](d time.Duration) Option[T] {
	return func(c *Controller[T]) { c.debounce = d }
}

// New creates a controller around the given fetch function
func New[T any](fetch FetchFunc[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		id:       nextControllerID.Add(1),
		fetch:    fetch,
		debounce: DefaultDebounce,
		query:    Query{Page: 1, SortDir: SortAsc},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load issues the initial fetch. It is a no-op once the controller has
// left the idle phase, so activating a view twice does not double-fetch.
func (c *Controller[T]) Load() tea.Cmd {
	if c.phase != PhaseIdle {
		return nil
	}
	return c.dispatch()
}

// SetSearch records a keystroke and restarts the debounce timer. The
// search only takes effect (and resets the page) once the window
// elapses with no further calls; rapid sequences collapse into a
// single fetch using the last value.
func (c *Controller[T]) SetSearch(text string) tea.Cmd {
	c.query.RawSearch = text
	c.searchGen++
	gen := c.searchGen
	id := c.id
	return tea.Tick(c.debounce, func(time.Time) tea.Msg {
		return searchSettledMsg{ctrl: id, gen: gen}
	})
}

// SortBy toggles the direction when field is already the sort field and
// otherwise starts ascending on the new field. Either way the page
// resets to 1: the old page number is meaningless under a new order.
func (c *Controller[T]) SortBy(field string) tea.Cmd {
	if field == c.query.SortField {
		if c.query.SortDir == SortAsc {
			c.query.SortDir = SortDesc
		} else {
			c.query.SortDir = SortAsc
		}
	} else {
		c.query.SortField = field
		c.query.SortDir = SortAsc
	}
	c.query.Page = 1
	return c.dispatch()
}

// SetPage moves to the given page without touching other filters.
// Pages below 1 and the current page are rejected as no-ops.
func (c *Controller[T]) SetPage(page int) tea.Cmd {
	if page < 1 || page == c.query.Page {
		return nil
	}
	if c.meta != nil && c.meta.LastPage > 0 && page > c.meta.LastPage {
		return nil
	}
	c.query.Page = page
	return c.dispatch()
}

// NextPage moves one page forward
func (c *Controller[T]) NextPage() tea.Cmd {
	return c.SetPage(c.query.Page + 1)
}

// PrevPage moves one page back
func (c *Controller[T]) PrevPage() tea.Cmd {
	return c.SetPage(c.query.Page - 1)
}

// Refresh re-issues a fetch with the current query unchanged. Used
// after create/update/delete to resynchronize with server state.
func (c *Controller[T]) Refresh() tea.Cmd {
	return c.dispatch()
}

// ClearSearch drops both the raw and debounced search and refetches
// from page 1. Bound to the "reset filter" key on the empty state.
func (c *Controller[T]) ClearSearch() tea.Cmd {
	if c.query.RawSearch == "" && c.query.Search == "" {
		return nil
	}
	c.query.RawSearch = ""
	c.query.Search = ""
	c.query.Page = 1
	c.searchGen++ // invalidate any pending debounce timer
	return c.dispatch()
}

// Update consumes controller messages. The second return value reports
// whether the message belonged to this controller.
func (c *Controller[T]) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case searchSettledMsg:
		if msg.ctrl != c.id {
			return nil, false
		}
		if msg.gen != c.searchGen {
			// A newer keystroke restarted the window
			return nil, true
		}
		if c.query.Search == c.query.RawSearch {
			return nil, true
		}
		c.query.Search = c.query.RawSearch
		c.query.Page = 1
		return c.dispatch(), true

	case fetchDoneMsg[T]:
		if msg.ctrl != c.id {
			return nil, false
		}
		if msg.seq != c.fetchSeq {
			// A newer fetch superseded this one while it was in flight
			log.Printf("listctrl: discarding stale fetch result (seq %d, latest %d)", msg.seq, c.fetchSeq)
			return nil, true
		}
		c.apply(msg.result)
		return nil, true
	}
	return nil, false
}

// dispatch snapshots the current filters and returns the fetch command
func (c *Controller[T]) dispatch() tea.Cmd {
	c.fetchSeq++
	seq := c.fetchSeq
	id := c.id
	c.phase = PhaseLoading
	c.err = ""
	f := c.Filters()
	fetch := c.fetch
	return func() tea.Msg {
		return fetchDoneMsg[T]{ctrl: id, seq: seq, result: fetch(context.Background(), f)}
	}
}

// apply replaces the visible state with a fetch outcome. Items and
// error are never populated at the same time.
func (c *Controller[T]) apply(r Result[T]) {
	if r.ok {
		c.phase = PhaseReady
		c.items = r.items
		c.meta = r.meta
		c.err = ""
		return
	}
	c.phase = PhaseFailed
	c.items = nil
	c.meta = nil
	c.err = r.err
}

// Filters returns the snapshot that would be sent for the current query
func (c *Controller[T]) Filters() Filters {
	f := Filters{Page: c.query.Page, Search: c.query.Search}
	if c.query.SortField != "" {
		f.SortBy = c.query.SortField
		f.SortDirection = string(c.query.SortDir)
	}
	return f
}

// SortState reports the header state for a column. Pure; no side effects.
func (c *Controller[T]) SortState(field string) SortState {
	if field == "" || field != c.query.SortField {
		return SortUnsorted
	}
	if c.query.SortDir == SortDesc {
		return SortDescending
	}
	return SortAscending
}

// Query returns a copy of the current query state
func (c *Controller[T]) Query() Query { return c.query }

// Items returns the current page of items
func (c *Controller[T]) Items() []T { return c.items }

// Meta returns the pagination metadata of the last successful fetch
func (c *Controller[T]) Meta() *domain.PageMeta { return c.meta }

// Err returns the error message of the last failed fetch
func (c *Controller[T]) Err() string { return c.err }

// Phase returns the current lifecycle phase
func (c *Controller[T]) Phase() Phase { return c.phase }

// Loading reports whether a fetch is in flight
func (c *Controller[T]) Loading() bool { return c.phase == PhaseLoading }
