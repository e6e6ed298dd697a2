package table

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Name string
	IP   string
	Port int
}

func testTable() *Table[row] {
	return New(
		Column[row]{Name: "name", String: func(r row) string { return r.Name }},
		Column[row]{Name: "ip", String: func(r row) string { return r.IP }},
		Column[row]{
			Name:   "port",
			String: func(r row) string { return strconv.Itoa(r.Port) },
			Less:   func(a, b row) bool { return a.Port < b.Port },
		},
	)
}

func fixtureRows() []row {
	return []row{
		{Name: "maestro03", IP: "192.168.100.166", Port: 443},
		{Name: "nnDev", IP: "192.168.100.148", Port: 8000},
		{Name: "nnProd", IP: "192.168.100.149", Port: 80},
		{Name: "Nicks-Mac-mini.local", IP: "192.168.1.193", Port: 3000},
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	tbl := testTable()

	res := tbl.Apply(fixtureRows(), Query{Search: "NN"})
	assert.Len(t, res.Rows, 2)
	assert.Equal(t, "nnDev", res.Rows[0].Name)
	assert.Equal(t, "nnProd", res.Rows[1].Name)
	assert.Equal(t, 4, res.Total)
}

func TestSearchMatchesAnyColumn(t *testing.T) {
	tbl := testTable()

	res := tbl.Apply(fixtureRows(), Query{Search: "1.193"})
	assert.Len(t, res.Rows, 1)
	assert.Equal(t, "Nicks-Mac-mini.local", res.Rows[0].Name)
}

func TestEmptySearchReturnsAll(t *testing.T) {
	tbl := testTable()

	res := tbl.Apply(fixtureRows(), Query{})
	assert.Len(t, res.Rows, 4)
	assert.False(t, res.NoMatches())
	assert.False(t, res.EmptyCollection())
}

func TestNoMatchesDistinctFromEmptyCollection(t *testing.T) {
	tbl := testTable()

	res := tbl.Apply(fixtureRows(), Query{Search: "zzz"})
	assert.Empty(t, res.Rows)
	assert.True(t, res.NoMatches())
	assert.False(t, res.EmptyCollection())

	res = tbl.Apply(nil, Query{})
	assert.True(t, res.EmptyCollection())
	assert.False(t, res.NoMatches())
}

func TestSortAscendingDescending(t *testing.T) {
	tbl := testTable()

	res := tbl.Apply(fixtureRows(), Query{Sort: SortState{Column: "port", Direction: Ascending}})
	assert.Equal(t, []int{80, 443, 3000, 8000}, ports(res.Rows))

	res = tbl.Apply(fixtureRows(), Query{Sort: SortState{Column: "port", Direction: Descending}})
	assert.Equal(t, []int{8000, 3000, 443, 80}, ports(res.Rows))
}

func TestUnsortedKeepsInputOrder(t *testing.T) {
	tbl := testTable()

	res := tbl.Apply(fixtureRows(), Query{Sort: SortState{Column: "port", Direction: None}})
	assert.Equal(t, []int{443, 8000, 80, 3000}, ports(res.Rows))
}

func TestSortStableForEqualKeys(t *testing.T) {
	tbl := testTable()
	rows := []row{
		{Name: "b", Port: 80},
		{Name: "a", Port: 80},
		{Name: "c", Port: 80},
	}

	res := tbl.Apply(rows, Query{Sort: SortState{Column: "port", Direction: Ascending}})
	assert.Equal(t, "b", res.Rows[0].Name)
	assert.Equal(t, "a", res.Rows[1].Name)
	assert.Equal(t, "c", res.Rows[2].Name)
}

func TestStringSortIgnoresCase(t *testing.T) {
	tbl := testTable()
	rows := []row{
		{Name: "nnProd"},
		{Name: "Nicks-Mac-mini.local"},
		{Name: "maestro03"},
	}

	res := tbl.Apply(rows, Query{Sort: SortState{Column: "name", Direction: Ascending}})
	assert.Equal(t, "maestro03", res.Rows[0].Name)
	assert.Equal(t, "Nicks-Mac-mini.local", res.Rows[1].Name)
	assert.Equal(t, "nnProd", res.Rows[2].Name)
}

func TestToggleCyclesAscDescUnsorted(t *testing.T) {
	s := SortState{}

	s = s.Toggle("port")
	assert.Equal(t, SortState{Column: "port", Direction: Ascending}, s)

	s = s.Toggle("port")
	assert.Equal(t, SortState{Column: "port", Direction: Descending}, s)

	s = s.Toggle("port")
	assert.Equal(t, SortState{}, s)

	s = s.Toggle("port")
	assert.Equal(t, SortState{Column: "port", Direction: Ascending}, s)
}

func TestToggleDifferentColumnStartsAscending(t *testing.T) {
	s := SortState{Column: "port", Direction: Descending}

	s = s.Toggle("name")
	assert.Equal(t, SortState{Column: "name", Direction: Ascending}, s)
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Ascending, ParseDirection("asc"))
	assert.Equal(t, Descending, ParseDirection("DESC"))
	assert.Equal(t, None, ParseDirection(""))
	assert.Equal(t, None, ParseDirection("sideways"))
}

func ports(rows []row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Port
	}
	return out
}
