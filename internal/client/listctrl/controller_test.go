package listctrl

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdeck/internal/client/models"
)

type item struct {
	ID   int64
	Date string
}

func page(ids []int64, meta models.PageMeta) models.Page[item] {
	items := make([]item, 0, len(ids))
	for _, id := range ids {
		items = append(items, item{ID: id})
	}
	return models.Page[item]{Data: items, Meta: meta}
}

func TestController_DebouncedSearchCommit(t *testing.T) {
	c := New[item](10, 400*time.Millisecond)
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	c.SetSearchInput("h", t0)
	c.SetSearchInput("hi", t0.Add(100*time.Millisecond))
	c.SetSearchInput("hik", t0.Add(200*time.Millisecond))

	// not enough rest yet: latest input at t0+200ms, due at t0+600ms
	assert.False(t, c.CommitDue(t0.Add(500*time.Millisecond)))
	assert.Equal(t, "", c.Query().Search)

	require.True(t, c.CommitDue(t0.Add(600*time.Millisecond)))
	assert.Equal(t, "hik", c.Query().Search)
	assert.Equal(t, 1, c.Query().Page)
	assert.Equal(t, PhaseLoading, c.Phase())
}

func TestController_CommitResetsPage(t *testing.T) {
	c := New[item](10, time.Millisecond)
	now := time.Now()

	// land on page 3 first
	c.Resolve(c.Begin(), page(nil, models.PageMeta{Page: 1, PageSize: 10, Total: 50}), nil)
	require.True(t, c.SetPage(3))

	c.SetSearchInput("rome", now)
	require.True(t, c.CommitDue(now.Add(time.Second)))
	assert.Equal(t, 1, c.Query().Page)
}

func TestController_CommitUnchangedSearchIsNoop(t *testing.T) {
	c := New[item](10, time.Millisecond)
	now := time.Now()

	c.SetSearchInput("  ", now)
	assert.False(t, c.CommitDue(now.Add(time.Second)), "whitespace trims to the current empty search")
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestController_StaleResolutionDiscarded(t *testing.T) {
	c := New[item](10, time.Millisecond)

	tokenA := c.Begin() // fetch A (say, search "x")
	tokenB := c.Begin() // fetch B begins before A resolves

	require.True(t, c.Resolve(tokenB, page([]int64{2}, models.PageMeta{Page: 1, PageSize: 10, Total: 1}), nil))
	require.False(t, c.Resolve(tokenA, page([]int64{1}, models.PageMeta{Page: 1, PageSize: 10, Total: 1}), nil),
		"A resolving after B must be discarded")

	require.Len(t, c.Items(), 1)
	assert.Equal(t, int64(2), c.Items()[0].ID, "displayed state reflects B, not A")
	assert.Equal(t, PhaseSuccess, c.Phase())
}

func TestController_StaleFailureDiscarded(t *testing.T) {
	c := New[item](10, time.Millisecond)

	tokenA := c.Begin()
	tokenB := c.Begin()

	require.True(t, c.Resolve(tokenB, page([]int64{2}, models.PageMeta{Page: 1, PageSize: 10, Total: 1}), nil))
	require.False(t, c.Resolve(tokenA, models.Page[item]{}, errors.New("boom")))
	assert.Equal(t, PhaseSuccess, c.Phase())
	assert.NoError(t, c.Err())
}

func TestController_FailureState(t *testing.T) {
	c := New[item](10, time.Millisecond)
	boom := errors.New("boom")

	require.True(t, c.Resolve(c.Begin(), models.Page[item]{}, boom))
	assert.Equal(t, PhaseFailure, c.Phase())
	assert.ErrorIs(t, c.Err(), boom)
	assert.Empty(t, c.Items())
}

func TestController_PaginationBounds(t *testing.T) {
	c := New[item](10, time.Millisecond)

	// empty collection: one page, both buttons disabled
	c.Resolve(c.Begin(), page(nil, models.PageMeta{Page: 1, PageSize: 10, Total: 0}), nil)
	assert.Equal(t, 1, c.TotalPages())
	assert.False(t, c.CanPrev())
	assert.False(t, c.CanNext())

	// 31 items: four pages
	c.Resolve(c.Begin(), page([]int64{1}, models.PageMeta{Page: 1, PageSize: 10, Total: 31}), nil)
	assert.Equal(t, 4, c.TotalPages())
	assert.False(t, c.CanPrev())
	assert.True(t, c.CanNext())

	require.True(t, c.NextPage())
	assert.Equal(t, 2, c.Query().Page)
	assert.True(t, c.CanPrev())

	assert.False(t, c.SetPage(5), "beyond the last page")
	assert.False(t, c.SetPage(0))

	require.True(t, c.SetPage(4))
	c.Resolve(c.Begin(), page([]int64{31}, models.PageMeta{Page: 4, PageSize: 10, Total: 31}), nil)
	assert.False(t, c.CanNext())
	assert.False(t, c.NextPage())
}

func TestController_SetWhenResetsPage(t *testing.T) {
	c := New[item](10, time.Millisecond)
	c.Resolve(c.Begin(), page(nil, models.PageMeta{Page: 1, PageSize: 10, Total: 50}), nil)
	require.True(t, c.SetPage(2))

	require.True(t, c.SetWhen(WhenUpcoming))
	assert.Equal(t, 1, c.Query().Page)
	assert.Equal(t, PhaseLoading, c.Phase())

	assert.False(t, c.SetWhen(WhenUpcoming), "unchanged filter is a no-op")
}

func TestParseWhen(t *testing.T) {
	w, ok := ParseWhen("past")
	assert.True(t, ok)
	assert.Equal(t, WhenPast, w)

	w, ok = ParseWhen("")
	assert.True(t, ok)
	assert.Equal(t, WhenAll, w)

	_, ok = ParseWhen("tomorrow")
	assert.False(t, ok)
}

func TestApplyWhen(t *testing.T) {
	items := []item{
		{ID: 1, Date: "2024-04-30"},
		{ID: 2, Date: "2024-05-01"},
		{ID: 3, Date: "2024-05-02"},
		{ID: 4, Date: "not-a-date"},
		{ID: 5, Date: "2024-05-01T10:00:00"}, // long form is reduced to its date
	}
	dateOf := func(it item) string { return it.Date }
	today := "2024-05-01"

	past := ApplyWhen(items, dateOf, WhenPast, today)
	require.Len(t, past, 1)
	assert.Equal(t, int64(1), past[0].ID)

	upcoming := ApplyWhen(items, dateOf, WhenUpcoming, today)
	assert.Len(t, upcoming, 3, "today counts as upcoming; malformed dates are dropped")

	all := ApplyWhen(items, dateOf, WhenAll, today)
	assert.Len(t, all, 5, "the all filter passes malformed dates through")
}

func TestWindow(t *testing.T) {
	items := []item{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}

	assert.Len(t, Window(items, 1, 2), 2)
	assert.Equal(t, int64(5), Window(items, 3, 2)[0].ID)
	assert.Empty(t, Window(items, 4, 2), "past the end yields an empty page")
}
