// Package listctrl implements the state machine behind every paged list
// view: debounced search, page windowing, the upcoming/past time filter, and
// suppression of stale fetch results.
package listctrl

import (
	"strings"
	"time"

	"tripdeck/internal/client/models"
)

// Phase is the lifecycle of one list view.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

// When is the client-side time-window filter.
type When string

const (
	WhenAll      When = "all"
	WhenUpcoming When = "upcoming"
	WhenPast     When = "past"
)

// ParseWhen normalizes user input to a When, defaulting to all.
func ParseWhen(s string) (When, bool) {
	switch When(s) {
	case WhenAll, "":
		return WhenAll, true
	case WhenUpcoming:
		return WhenUpcoming, true
	case WhenPast:
		return WhenPast, true
	}
	return WhenAll, false
}

// BigPageSize is the single large page fetched when the time-window filter
// must be applied client-side; the backend has no such filter.
const BigPageSize = 1000

// DefaultDebounce is how long search input must rest before it commits.
const DefaultDebounce = 400 * time.Millisecond

// Query is the committed input set that drives a fetch. Any change of it
// re-enters Loading.
type Query struct {
	Search   string
	Page     int
	PageSize int
	When     When
}

// Controller holds one view's list state. It is not safe for concurrent use;
// like the views it serves, it lives on a single event loop. Time is always
// passed in, never read ambiently.
type Controller[T any] struct {
	debounce time.Duration

	query Query
	phase Phase
	items []T
	meta  models.PageMeta
	err   error

	pending    string
	pendingDue time.Time
	hasPending bool

	// seq identifies the most recently initiated fetch; only its resolution
	// may update the view.
	seq uint64
}

func New[T any](pageSize int, debounce time.Duration) *Controller[T] {
	if pageSize <= 0 {
		pageSize = 10
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Controller[T]{
		debounce: debounce,
		query:    Query{Page: 1, PageSize: pageSize, When: WhenAll},
		phase:    PhaseIdle,
	}
}

func (c *Controller[T]) Query() Query          { return c.query }
func (c *Controller[T]) Phase() Phase          { return c.phase }
func (c *Controller[T]) Items() []T            { return c.items }
func (c *Controller[T]) Meta() models.PageMeta { return c.meta }
func (c *Controller[T]) Err() error            { return c.err }

// SetSearchInput records raw search input without fetching; the input
// commits once it has rested for the debounce interval.
func (c *Controller[T]) SetSearchInput(s string, now time.Time) {
	c.pending = s
	c.pendingDue = now.Add(c.debounce)
	c.hasPending = true
}

// CommitDue commits pending search input whose debounce interval has
// elapsed. Committing always resets to page 1. Returns true when the
// committed query differs and a fetch is due.
func (c *Controller[T]) CommitDue(now time.Time) bool {
	if !c.hasPending || now.Before(c.pendingDue) {
		return false
	}
	return c.CommitNow()
}

// CommitNow commits pending search input immediately.
func (c *Controller[T]) CommitNow() bool {
	if !c.hasPending {
		return false
	}
	c.hasPending = false
	search := strings.TrimSpace(c.pending)
	if search == c.query.Search {
		return false
	}
	c.query.Search = search
	c.query.Page = 1
	c.phase = PhaseLoading
	return true
}

// SetWhen switches the time-window filter, resetting to page 1.
func (c *Controller[T]) SetWhen(w When) bool {
	if w == c.query.When {
		return false
	}
	c.query.When = w
	c.query.Page = 1
	c.phase = PhaseLoading
	return true
}

// SetPage jumps to a page within [1, TotalPages].
func (c *Controller[T]) SetPage(page int) bool {
	if page < 1 || page == c.query.Page || page > c.TotalPages() {
		return false
	}
	c.query.Page = page
	c.phase = PhaseLoading
	return true
}

func (c *Controller[T]) NextPage() bool {
	if !c.CanNext() {
		return false
	}
	return c.SetPage(c.query.Page + 1)
}

func (c *Controller[T]) PrevPage() bool {
	if !c.CanPrev() {
		return false
	}
	return c.SetPage(c.query.Page - 1)
}

// Begin marks a new fetch in flight and returns its token. Starting a new
// fetch implicitly stales every earlier one.
func (c *Controller[T]) Begin() uint64 {
	c.seq++
	c.phase = PhaseLoading
	c.err = nil
	return c.seq
}

// Resolve applies a fetch outcome. Only the most recently begun fetch may
// update the view; a stale token's outcome is discarded, so out-of-order
// resolutions never overwrite newer state. Returns whether the outcome was
// applied.
func (c *Controller[T]) Resolve(token uint64, page models.Page[T], err error) bool {
	if token != c.seq {
		return false
	}
	if err != nil {
		c.phase = PhaseFailure
		c.err = err
		c.items = nil
		c.meta = models.PageMeta{Page: c.query.Page, PageSize: c.query.PageSize}
		return true
	}
	c.phase = PhaseSuccess
	c.err = nil
	c.items = page.Data
	c.meta = page.Meta
	return true
}

// TotalPages is never 0; before the first successful fetch it is computed
// from the query's page size.
func (c *Controller[T]) TotalPages() int {
	m := c.meta
	if m.PageSize == 0 {
		m = models.PageMeta{Page: c.query.Page, PageSize: c.query.PageSize}
	}
	return m.TotalPages()
}

// CanPrev is false on page 1.
func (c *Controller[T]) CanPrev() bool { return c.query.Page > 1 }

// CanNext is false on the last page.
func (c *Controller[T]) CanNext() bool { return c.query.Page < c.TotalPages() }

// ApplyWhen filters items by their calendar date against today
// (YYYY-MM-DD). WhenAll passes everything through; otherwise items with
// malformed dates are dropped.
func ApplyWhen[T any](items []T, dateOf func(T) string, w When, today string) []T {
	if w == WhenAll {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		d := dateOf(it)
		if len(d) > 10 {
			d = d[:10]
		}
		if !models.IsYMD(d) {
			continue
		}
		if (w == WhenPast && d < today) || (w == WhenUpcoming && d >= today) {
			out = append(out, it)
		}
	}
	return out
}

// Window slices one page out of a locally filtered collection.
func Window[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
