package dashboard

import (
	"slices"
	"testing"

	"github.com/bNTGeez/value-g/internal/domain/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []quote.StockRow {
	return []quote.StockRow{
		row("MSFT", dec("300.00"), dec("-2.50"), dec("-0.83")),
		row("AAPL", dec("150.00"), dec("1.20"), dec("0.80")),
		row("GOOGL", dec("140.10"), dec("0.40"), dec("0.29")),
		row("AMZN", dec("178.25"), dec("-0.10"), dec("-0.06")),
		row("META", dec("490.00"), dec("5.00"), dec("1.03")),
	}
}

func TestComparators_Isolated(t *testing.T) {
	a := row("AAPL", dec("1"), nil, dec("-1"))
	b := row("MSFT", dec("2"), dec("0"), nil)

	cmp, ok := ComparatorFor(SortBySymbol)
	require.True(t, ok)
	assert.Negative(t, cmp(a, b))

	cmp, _ = ComparatorFor(SortByPrice)
	assert.Negative(t, cmp(a, b))

	// absent change equals 0
	cmp, _ = ComparatorFor(SortByChange)
	assert.Zero(t, cmp(a, b))

	cmp, _ = ComparatorFor(SortByChangePercent)
	assert.Negative(t, cmp(a, b))

	_, ok = ComparatorFor("volume")
	assert.False(t, ok)
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	rows := []quote.StockRow{row("AAPL", nil, nil, nil), row("GOOGL", nil, nil, nil)}

	assert.Equal(t, []string{"GOOGL"}, symbols(Filter(rows, "go")))
	assert.Equal(t, []string{"GOOGL"}, symbols(Filter(rows, "OgL")))
	assert.Equal(t, []string{"AAPL", "GOOGL"}, symbols(Filter(rows, "")))
	assert.Empty(t, Filter(rows, "tsla"))
}

func TestFilter_Idempotent(t *testing.T) {
	for _, term := range []string{"", "a", "M", "oo", "zz"} {
		once := Filter(sampleRows(), term)
		twice := Filter(once, term)
		assert.Equal(t, once, twice, "term=%q", term)
	}
}

func TestSort_DescIsReverseOfAsc(t *testing.T) {
	for _, field := range SortFields {
		asc := Sort(sampleRows(), field, Asc)
		desc := Sort(sampleRows(), field, Desc)

		reversed := slices.Clone(asc)
		slices.Reverse(reversed)
		assert.Equal(t, symbols(reversed), symbols(desc), "field=%s", field)
	}
}

func TestSort_ByField(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, []string{"AAPL", "AMZN", "GOOGL", "META", "MSFT"}, symbols(Sort(rows, SortBySymbol, Asc)))
	assert.Equal(t, []string{"GOOGL", "AAPL", "AMZN", "MSFT", "META"}, symbols(Sort(rows, SortByPrice, Asc)))
	assert.Equal(t, []string{"MSFT", "AMZN", "GOOGL", "AAPL", "META"}, symbols(Sort(rows, SortByChange, Asc)))
	assert.Equal(t, []string{"META", "AAPL", "GOOGL", "AMZN", "MSFT"}, symbols(Sort(rows, SortByChangePercent, Desc)))
}

func TestSort_AbsentTreatedAsZero(t *testing.T) {
	rows := []quote.StockRow{
		row("UP", dec("1"), dec("1"), nil),
		row("NONE", nil, nil, nil),
		row("DOWN", dec("-1"), dec("-1"), nil),
	}

	assert.Equal(t, []string{"DOWN", "NONE", "UP"}, symbols(Sort(rows, SortByPrice, Asc)))
	assert.Equal(t, []string{"DOWN", "NONE", "UP"}, symbols(Sort(rows, SortByChange, Asc)))
}

func TestSort_StableOnTies(t *testing.T) {
	rows := []quote.StockRow{
		row("B", dec("1"), nil, nil),
		row("A", dec("1"), nil, nil),
		row("C", nil, nil, nil),
	}
	assert.Equal(t, []string{"C", "B", "A"}, symbols(Sort(rows, SortByPrice, Asc)))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	before := symbols(rows)
	_ = Sort(rows, SortBySymbol, Asc)
	assert.Equal(t, before, symbols(rows))
}

func TestDerive_FilterThenSort(t *testing.T) {
	v := ViewSpec{SearchTerm: "a", SortField: SortByPrice, SortDirection: Desc}
	assert.Equal(t, []string{"META", "AMZN", "AAPL"}, symbols(Derive(sampleRows(), v)))
}
