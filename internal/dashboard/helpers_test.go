package dashboard

import (
	"github.com/bNTGeez/value-g/internal/domain/quote"
	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func row(symbol string, price, change, pct *decimal.Decimal) quote.StockRow {
	return quote.StockRow{
		Symbol: quote.Symbol(symbol),
		Quote: quote.Quote{
			CurrentPrice:  price,
			Change:        change,
			ChangePercent: pct,
		},
	}
}

func symbols(rows []quote.StockRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r.Symbol)
	}
	return out
}
