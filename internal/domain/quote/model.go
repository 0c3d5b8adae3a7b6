package quote

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Symbol is a ticker identifier (e.g. AAPL)
type Symbol string

// NormalizeSymbol trims and upper-cases a raw ticker
func NormalizeSymbol(raw string) Symbol {
	return Symbol(strings.ToUpper(strings.TrimSpace(raw)))
}

// String implements fmt.Stringer
func (s Symbol) String() string {
	return string(s)
}

// ValidateSymbol validates ticker format (1~10 chars of A-Z, 0-9, '.', '-')
func ValidateSymbol(s Symbol) bool {
	if len(s) == 0 || len(s) > 10 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '-':
		default:
			return false
		}
	}
	return true
}

// ParseSymbols parses a comma-separated ticker list.
// Empty entries are skipped, duplicates keep their first position.
func ParseSymbols(s string) []Symbol {
	parts := strings.Split(s, ",")
	symbols := make([]Symbol, 0, len(parts))
	for _, part := range parts {
		if sym := NormalizeSymbol(part); sym != "" {
			symbols = append(symbols, sym)
		}
	}
	return Dedupe(symbols)
}

// Dedupe removes repeated symbols, keeping the first occurrence
func Dedupe(symbols []Symbol) []Symbol {
	seen := make(map[Symbol]struct{}, len(symbols))
	out := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Quote is a point-in-time market snapshot for one symbol.
// nil fields mean the provider did not report a value.
type Quote struct {
	CurrentPrice  *decimal.Decimal `json:"current_price"`  // c
	Change        *decimal.Decimal `json:"change"`         // d, 전일대비
	ChangePercent *decimal.Decimal `json:"change_percent"` // dp, 등락률 (%)

	// Fetched but not used by the table
	High          *decimal.Decimal `json:"high,omitempty"`
	Low           *decimal.Decimal `json:"low,omitempty"`
	Open          *decimal.Decimal `json:"open,omitempty"`
	PreviousClose *decimal.Decimal `json:"previous_close,omitempty"`
	Timestamp     *time.Time       `json:"timestamp,omitempty"`
}

// StockRow pairs a symbol with its quote
type StockRow struct {
	Symbol Symbol `json:"symbol"`
	Quote  Quote  `json:"quote"`
}

// ValueOrZero returns the decimal or zero when absent
func ValueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
