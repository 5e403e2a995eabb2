package listing

import (
	"cmp"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	id    int
	name  string
	kind  string
	score int
}

var rowSpec = Spec[row]{
	Search: func(r row) []string { return []string{r.name, r.kind} },
	Filters: map[string]func(row, string) bool{
		"kind": Equal(func(r row) string { return r.kind }),
	},
	Sorts: map[string]func(a, b row) int{
		"newest": Desc(func(a, b row) int { return cmp.Compare(a.id, b.id) }),
		"name":   func(a, b row) int { return CompareText(a.name, b.name) },
		"score":  Desc(func(a, b row) int { return cmp.Compare(a.score, b.score) }),
	},
	DefaultSort: SortNewest,
}

var rows = []row{
	{id: 1, name: "banana", kind: "fruit", score: 3},
	{id: 2, name: "Apple", kind: "fruit", score: 5},
	{id: 3, name: "carrot", kind: "vegetable", score: 3},
	{id: 4, name: "Éclair", kind: "pastry", score: 1},
}

func ids(rr []row) []int {
	out := make([]int, len(rr))
	for i := range rr {
		out[i] = rr[i].id
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want []int
	}{
		{name: "default sort", q: Query{}, want: []int{4, 3, 2, 1}},
		{name: "search is case insensitive", q: Query{Search: "APP"}, want: []int{2}},
		{name: "search any field", q: Query{Search: "veg"}, want: []int{3}},
		{name: "filter", q: Query{Filters: map[string]string{"kind": "fruit"}}, want: []int{2, 1}},
		{name: "filter all", q: Query{Filters: map[string]string{"kind": All}}, want: []int{4, 3, 2, 1}},
		{name: "unknown filter ignored", q: Query{Filters: map[string]string{"color": "red"}}, want: []int{4, 3, 2, 1}},
		{name: "name sort ignores case and accents", q: Query{Sort: "name"}, want: []int{2, 1, 3, 4}},
		{name: "stable sort", q: Query{Sort: "score"}, want: []int{2, 1, 3, 4}},
		{name: "unknown sort keeps order", q: Query{Sort: "random"}, want: []int{1, 2, 3, 4}},
		{name: "no match", q: Query{Search: "zzz"}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(rows, rowSpec, tt.q)))
		})
	}

	assert.Equal(t, []int{1, 2, 3, 4}, ids(rows), "input must not be reordered")
}

func TestPage(t *testing.T) {
	items := make([]int, 250)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		page      int
		pageSize  int
		wantLen   int
		wantFirst int
	}{
		{name: "no paging", page: 1, pageSize: 0, wantLen: 250, wantFirst: 0},
		{name: "first page", page: 1, pageSize: 10, wantLen: 10, wantFirst: 0},
		{name: "third page", page: 3, pageSize: 10, wantLen: 10, wantFirst: 20},
		{name: "page below one", page: 0, pageSize: 10, wantLen: 10, wantFirst: 0},
		{name: "capped size", page: 1, pageSize: 1000, wantLen: MaxPageSize, wantFirst: 0},
		{name: "last partial page", page: 3, pageSize: 100, wantLen: 50, wantFirst: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Page(items, tt.page, tt.pageSize)
			assert.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantFirst, got[0])
		})
	}

	t.Run("past the end", func(t *testing.T) {
		assert.Empty(t, Page(items, 10, 100))
		assert.Empty(t, Page(items, 4, 100))
		assert.Empty(t, Page([]int{}, 1, 10))
	})

	t.Run("huge page number", func(t *testing.T) {
		assert.Empty(t, Page(items, math.MaxInt, 100))
		assert.Empty(t, Page([]int{1, 2, 3}, math.MaxInt/100+2, 100))
	})
}

func TestCompareText(t *testing.T) {
	assert.Negative(t, CompareText("apple", "Banana"))
	assert.Positive(t, CompareText("b", "A"))
	assert.Zero(t, CompareText("same", "same"))
	assert.NotZero(t, CompareText("Same", "same"))
}
