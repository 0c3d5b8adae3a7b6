package dashboard

import (
	"strings"

	"github.com/bNTGeez/value-g/internal/domain/quote"
	"github.com/shopspring/decimal"
)

// NotAvailable is rendered for absent values
const NotAvailable = "N/A"

// Trend classifies a signed value for styling
type Trend string

const (
	TrendUp   Trend = "up"   // >= 0
	TrendDown Trend = "down" // < 0
)

// FormatPrice renders "$" + price rounded to 2 decimals
func FormatPrice(q quote.Quote) string {
	if q.CurrentPrice == nil {
		return NotAvailable
	}
	return "$" + fixed2(*q.CurrentPrice)
}

// FormatChange renders the absolute change, "+" prefixed when >= 0
func FormatChange(q quote.Quote) string {
	if q.Change == nil {
		return NotAvailable
	}
	return signPrefix(*q.Change) + "$" + fixed2(*q.Change)
}

// FormatChangePercent renders the percent change, "+" prefixed when >= 0
func FormatChangePercent(q quote.Quote) string {
	if q.ChangePercent == nil {
		return NotAvailable
	}
	return signPrefix(*q.ChangePercent) + fixed2(*q.ChangePercent) + "%"
}

// ChangeTrend classifies the change column; absent counts as zero
func ChangeTrend(q quote.Quote) Trend {
	return trendOf(quote.ValueOrZero(q.Change))
}

// ChangePercentTrend classifies the percent column; absent counts as zero
func ChangePercentTrend(q quote.Quote) Trend {
	return trendOf(quote.ValueOrZero(q.ChangePercent))
}

func trendOf(d decimal.Decimal) Trend {
	if d.IsNegative() {
		return TrendDown
	}
	return TrendUp
}

// fixed2 rounds to 2 decimals; negatives keep their sign even when they round to zero ("-0.00")
func fixed2(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if d.IsNegative() && !strings.HasPrefix(s, "-") {
		return "-" + s
	}
	return s
}

func signPrefix(d decimal.Decimal) string {
	if d.IsNegative() {
		return ""
	}
	return "+"
}

// DisplayRow is a row with its formatted cells
type DisplayRow struct {
	Symbol             string `json:"symbol"`
	Price              string `json:"price"`
	Change             string `json:"change"`
	ChangeTrend        Trend  `json:"change_trend"`
	ChangePercent      string `json:"change_percent"`
	ChangePercentTrend Trend  `json:"change_percent_trend"`
}

// FormatRow formats every cell of a row
func FormatRow(row quote.StockRow) DisplayRow {
	return DisplayRow{
		Symbol:             row.Symbol.String(),
		Price:              FormatPrice(row.Quote),
		Change:             FormatChange(row.Quote),
		ChangeTrend:        ChangeTrend(row.Quote),
		ChangePercent:      FormatChangePercent(row.Quote),
		ChangePercentTrend: ChangePercentTrend(row.Quote),
	}
}

// FormatRows formats a display sequence
func FormatRows(rows []quote.StockRow) []DisplayRow {
	out := make([]DisplayRow, len(rows))
	for i, row := range rows {
		out[i] = FormatRow(row)
	}
	return out
}
