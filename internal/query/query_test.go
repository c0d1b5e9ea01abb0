package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type record struct {
	id      int
	created time.Time
}

func makeRecords(n int) []record {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, record{id: i + 1, created: base.Add(time.Duration(i) * time.Hour)})
	}
	return out
}

func TestPaginate_ReconstructsAllPages(t *testing.T) {
	items := makeRecords(7)
	limit := 3

	var all []record
	var reported Pagination
	for page := 1; ; page++ {
		pageItems, p := Paginate(items, page, limit)
		reported = p
		if len(pageItems) == 0 {
			break
		}
		all = append(all, pageItems...)
	}

	assert.Equal(t, 3, reported.Pages)
	assert.Equal(t, 7, reported.Total)
	assert.Equal(t, items, all, "concatenated pages must equal the input with no duplicates or omissions")
}

func TestPaginate_OffsetPastEnd(t *testing.T) {
	items := makeRecords(5)
	pageItems, p := Paginate(items, 10, 2)

	assert.Empty(t, pageItems)
	assert.Equal(t, 5, p.Total)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, 10, p.Page)
}

func TestPaginate_ZeroLimitDisablesSlicing(t *testing.T) {
	items := makeRecords(25)
	pageItems, p := Paginate(items, 1, 0)

	assert.Len(t, pageItems, 25)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 1, p.Pages)
}

func TestPaginate_PartialLastPage(t *testing.T) {
	items := makeRecords(10)
	pageItems, p := Paginate(items, 4, 3)

	assert.Len(t, pageItems, 1)
	assert.Equal(t, 4, p.Pages)
	assert.Equal(t, 10, pageItems[0].id)
}

func TestSortNewestFirst(t *testing.T) {
	items := makeRecords(4)
	sorted := SortNewestFirst(items, func(r record) time.Time { return r.created })

	assert.Equal(t, 4, sorted[0].id)
	assert.Equal(t, 1, sorted[3].id)
}

func TestSortNewestFirst_StableOnTies(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []record{{id: 1, created: ts}, {id: 2, created: ts}, {id: 3, created: ts}}
	sorted := SortNewestFirst(items, func(r record) time.Time { return r.created })

	assert.Equal(t, []record{{id: 1, created: ts}, {id: 2, created: ts}, {id: 3, created: ts}}, sorted)
}

func TestFilter(t *testing.T) {
	items := makeRecords(6)
	even := Filter(items, func(r record) bool { return r.id%2 == 0 })

	assert.Len(t, even, 3)
	for _, r := range even {
		assert.Zero(t, r.id%2)
	}
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-2"))
	assert.Equal(t, 5, ParsePage("5"))
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 10, ParseLimit(""))
	assert.Equal(t, 10, ParseLimit("abc"))
	assert.Equal(t, 0, ParseLimit("0"), "explicit zero means no slicing")
	assert.Equal(t, 25, ParseLimit("25"))
}

func TestMatchFold(t *testing.T) {
	assert.True(t, MatchFold("Pizza", "pizza"))
	assert.True(t, MatchFold("BOISSONS", "Boissons"))
	assert.False(t, MatchFold("Pizza", "Burger"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("premium", "Food Truck Pizza Premium", "description"))
	assert.True(t, ContainsFold("PIZZA", "no match here", "four à bois pour pizza"))
	assert.False(t, ContainsFold("sushi", "Food Truck Pizza Premium", "four à bois"))
	assert.True(t, ContainsFold("", "anything"), "empty search matches everything")
}
