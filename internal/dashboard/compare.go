package dashboard

import (
	"slices"
	"strings"
	"sync"

	"github.com/bNTGeez/value-g/internal/domain/quote"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders two rows: negative if a < b, zero if equal, positive if a > b
type Comparator func(a, b quote.StockRow) int

// comparators maps each sort field to its ascending comparator
var comparators = map[SortField]Comparator{
	SortBySymbol:        compareSymbol,
	SortByPrice:         byDecimal(func(q quote.Quote) *decimal.Decimal { return q.CurrentPrice }),
	SortByChange:        byDecimal(func(q quote.Quote) *decimal.Decimal { return q.Change }),
	SortByChangePercent: byDecimal(func(q quote.Quote) *decimal.Decimal { return q.ChangePercent }),
}

// ComparatorFor returns the ascending comparator of a field
func ComparatorFor(field SortField) (Comparator, bool) {
	c, ok := comparators[field]
	return c, ok
}

// collate.Collator keeps internal buffers and is not safe for concurrent use
var symbolCollator = struct {
	sync.Mutex
	c *collate.Collator
}{c: collate.New(language.English)}

func compareSymbol(a, b quote.StockRow) int {
	symbolCollator.Lock()
	defer symbolCollator.Unlock()
	return symbolCollator.c.CompareString(string(a.Symbol), string(b.Symbol))
}

// byDecimal compares a numeric quote field, absent values count as zero
func byDecimal(field func(quote.Quote) *decimal.Decimal) Comparator {
	return func(a, b quote.StockRow) int {
		return quote.ValueOrZero(field(a.Quote)).Cmp(quote.ValueOrZero(field(b.Quote)))
	}
}

// Filter keeps rows whose symbol contains term, case-insensitively.
// An empty term keeps every row.
func Filter(rows []quote.StockRow, term string) []quote.StockRow {
	out := make([]quote.StockRow, 0, len(rows))
	needle := strings.ToLower(term)
	for _, row := range rows {
		if strings.Contains(strings.ToLower(string(row.Symbol)), needle) {
			out = append(out, row)
		}
	}
	return out
}

// Sort returns a stably sorted copy of rows.
// Unknown fields leave the order unchanged.
func Sort(rows []quote.StockRow, field SortField, dir SortDirection) []quote.StockRow {
	out := slices.Clone(rows)
	cmp, ok := comparators[field]
	if !ok {
		return out
	}
	slices.SortStableFunc(out, func(a, b quote.StockRow) int {
		c := cmp(a, b)
		if dir == Desc {
			return -c
		}
		return c
	})
	return out
}

// Derive computes the display sequence: filter by search term, then sort
func Derive(rows []quote.StockRow, v ViewSpec) []quote.StockRow {
	return Sort(Filter(rows, v.SearchTerm), v.SortField, v.SortDirection)
}
