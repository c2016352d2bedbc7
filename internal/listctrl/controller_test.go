package listctrl

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"opsdeck/internal/domain"
)

// recordingFetch counts calls and remembers every filter snapshot it was
// given. Each call returns a single item naming the page it served so
// tests can tell which fetch produced the visible state.
type recordingFetch struct {
	calls   []Filters
	failMsg string
}

func (rf *recordingFetch) fn(_ context.Context, f Filters) Result[string] {
	rf.calls = append(rf.calls, f)
	if rf.failMsg != "" {
		return Failure[string](rf.failMsg)
	}
	meta := &domain.PageMeta{CurrentPage: f.Page, LastPage: 5, PerPage: 10, Total: 42}
	return Success([]string{fmt.Sprintf("item-page-%d", f.Page)}, meta)
}

// drive executes a command and feeds the resulting message back into the
// controller, returning any follow-up command. nil commands are fine.
func drive[T any](t *testing.T, c *Controller[T], cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		return nil
	}
	next, _ := c.Update(cmd())
	return next
}

func newTestController(rf *recordingFetch) *Controller[string] {
	return New(rf.fn, WithDebounce[string](time.Millisecond))
}

func TestLoadFetchesOnce(t *testing.T) {
	t.Parallel()
	rf := &recordingFetch{}
	c := newTestController(rf)

	drive(t, c, c.Load())
	require.Len(t, rf.calls, 1, "initial load should fetch exactly once")
	require.Equal(t, 1, rf.calls[0].Page, "initial fetch should ask for page 1")
	require.Equal(t, PhaseReady, c.Phase())

	require.Nil(t, c.Load(), "a second load must not re-fetch")
}

func TestSearchDebounceCoalesces(t *testing.T) {
	t.Parallel()
	rf := &recordingFetch{}
	c := newTestController(rf)
	drive(t, c, c.Load())

	// Type "wrench" character by character, faster than the window
	var ticks []tea.Cmd
	for _, text := range []string{"w", "wr", "wre", "wren", "wrenc", "wrench"} {
		ticks = append(ticks, c.SetSearch(text))
	}

	// Deliver every timer message; only the last generation may fire
	for _, tick := range ticks {
		drive(t, c, drive(t, c, tick))
	}

	require.Len(t, rf.calls, 2, "six keystrokes inside the window must produce one fetch")
	require.Equal(t, "wrench", rf.calls[1].Search, "the fetch must use the last typed value")
	require.Equal(t, 1, rf.calls[1].Page, "a settled search must reset to page 1")
	require.Equal(t, "wrench", c.Query().Search)
}

func TestSearchSettleResetsPage(t *testing.T) {
	t.Parallel()
	rf := &recordingFetch{}
	c := newTestController(rf)
	drive(t, c, c.Load())
	drive(t, c, c.SetPage(3))
	require.Equal(t, 3, c.Query().Page)

	drive(t, c, c.SetSearch("mop"))
	require.Equal(t, 1, c.Query().Page, "page must reset when the search settles")
}

func TestUnchangedSearchDoesNotRefetch(t *testing.T) {
	t.Parallel()
	rf := &recordingFetch{}
	c := newTestController(rf)
	drive(t, c, c.Load())

	// Type a character and delete it again before the window elapses
	first := c.SetSearch("a")
	second := c.SetSearch("")
	drive(t, c, first)
	drive(t, c, second)

	require.Len(t, rf.calls, 1, "settling on the already-debounced value must not fetch")
}

func TestSortToggle(t *testing.T) {
	t.Parallel()
	rf := &recordingFetch{}
	c := newTestController(rf)
	drive(t, c, c.Load())
	drive(t, c, c.SetPage(4))

	drive(t, c, c.SortBy("name"))
	require.Equal(t, SortAscending, c.SortState("name"), "a new sort field starts ascending")
	require.Equal(t, 1, c.Query().Page, "sorting must reset the page")

	drive(t, c, c.SortBy("name"))
	require.Equal(t, SortDescending, c.SortState("name"), "same field flips to descending")

	drive(t, c, c.SortBy("name"))
	require.Equal(t, SortAscending, c.SortState("name"), "and back to ascending")

	drive(t, c, c.SortBy("code"))
	require.Equal(t, SortAscending, c.SortState("code"), "a different field always starts ascending")
	require.Equal(t, SortUnsorted, c.SortState("name"))
}

func TestSortFilterSnapshot(t *testing.T) {
	t.Parallel()
	rf := &recordingFetch{}
	c := newTestController(rf)
	drive(t, c, c.Load())
	require.Empty(t, rf.calls[0].SortBy, "no sort params before a field is chosen")
	require.Empty(t, rf.calls[0].SortDirection)

	// List sorted name asc, header clicked again
	drive(t, c, c.SortBy("name"))
	drive(t, c, c.SortBy("name"))

	last := rf.calls[len(rf.calls)-1]
	require.Equal(t, "name", last.SortBy)
	require.Equal(t, "desc", last.SortDirection)
	require.Equal(t, 1, last.Page)
}

func TestSetPageBounds(t *testing.T) {
	t.Parallel()
	rf := &recordingFetch{}
	c := newTestController(rf)
	drive(t, c, c.Load())

	require.Nil(t, c.SetPage(0), "page 0 must be rejected")
	require.Nil(t, c.SetPage(-3), "negative pages must be rejected")
	require.Nil(t, c.SetPage(1), "the current page is a no-op")
	require.Nil(t, c.SetPage(6), "pages past the last page are rejected once meta is known")
	require.Equal(t, 1, c.Query().Page)
	require.Len(t, rf.calls, 1)

	drive(t, c, c.NextPage())
	require.Equal(t, 2, c.Query().Page)
	drive(t, c, c.PrevPage())
	require.Equal(t, 1, c.Query().Page)
}

func TestFailureClearsItems(t *testing.T) {
	t.Parallel()
	rf := &recordingFetch{}
	c := newTestController(rf)
	drive(t, c, c.Load())
	require.NotEmpty(t, c.Items())

	rf.failMsg = "server returned 500 Internal Server Error"
	drive(t, c, c.Refresh())

	require.Equal(t, PhaseFailed, c.Phase())
	require.Equal(t, "server returned 500 Internal Server Error", c.Err())
	require.Empty(t, c.Items(), "a failed fetch must clear the items")
	require.Nil(t, c.Meta(), "a failed fetch must clear the meta")

	rf.failMsg = ""
	drive(t, c, c.Refresh())
	require.Equal(t, PhaseReady, c.Phase())
	require.Empty(t, c.Err(), "a successful fetch must clear the error")
	require.NotEmpty(t, c.Items())
}

func TestStaleFetchDiscarded(t *testing.T) {
	t.Parallel()
	rf := &recordingFetch{}
	c := newTestController(rf)

	// Fetch A (page 1) is issued first, fetch B (page 2) second,
	// but A's response arrives after B's.
	cmdA := c.Load()
	cmdB := c.SetPage(2)

	msgB := cmdB()
	msgA := cmdA()

	_, handled := c.Update(msgB)
	require.True(t, handled)
	require.Equal(t, []string{"item-page-2"}, c.Items())

	_, handled = c.Update(msgA)
	require.True(t, handled)
	require.Equal(t, []string{"item-page-2"}, c.Items(), "the older fetch must not overwrite newer data")
	require.Equal(t, 2, c.Meta().CurrentPage)
	require.Equal(t, PhaseReady, c.Phase())
}

func TestRefreshKeepsSnapshot(t *testing.T) {
	t.Parallel()
	rf := &recordingFetch{}
	c := newTestController(rf)
	drive(t, c, c.Load())
	drive(t, c, c.SetSearch("wrench"))
	drive(t, c, c.SortBy("name"))

	before := c.Filters()
	drive(t, c, c.Refresh())

	require.Equal(t, before, rf.calls[len(rf.calls)-1], "refresh must re-issue the identical snapshot")
	require.Equal(t, before, c.Filters(), "refresh must not mutate the query")
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()
	empty := func(_ context.Context, _ Filters) Result[string] {
		return Success([]string{}, &domain.PageMeta{CurrentPage: 1, LastPage: 1})
	}
	c := New(empty, WithDebounce[string](time.Millisecond))
	drive(t, c, c.Load())

	require.Equal(t, PhaseReady, c.Phase())
	require.Empty(t, c.Items())
	require.Empty(t, c.Err())
	require.Empty(t, c.Query().Search, "the view distinguishes no-records from no-results via the query")
}

func TestClearSearchResetsAndRefetches(t *testing.T) {
	t.Parallel()
	rf := &recordingFetch{}
	c := newTestController(rf)
	drive(t, c, c.Load())
	drive(t, c, c.SetSearch("wrench"))

	drive(t, c, c.ClearSearch())
	last := rf.calls[len(rf.calls)-1]
	require.Empty(t, last.Search)
	require.Equal(t, 1, last.Page)

	require.Nil(t, c.ClearSearch(), "clearing an empty search is a no-op")
}

func TestMessagesForOtherControllersAreIgnored(t *testing.T) {
	t.Parallel()
	rf1 := &recordingFetch{}
	rf2 := &recordingFetch{}
	c1 := newTestController(rf1)
	c2 := newTestController(rf2)

	cmd := c1.Load()
	msg := cmd()

	_, handled := c2.Update(msg)
	require.False(t, handled, "a controller must not consume another controller's messages")
	require.Equal(t, PhaseIdle, c2.Phase())

	_, handled = c1.Update(msg)
	require.True(t, handled)
	require.Equal(t, PhaseReady, c1.Phase())
}
