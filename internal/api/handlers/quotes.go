package handlers

import (
	"net/http"

	"github.com/bNTGeez/value-g/internal/api/response"
	"github.com/bNTGeez/value-g/internal/dashboard"
	"github.com/bNTGeez/value-g/internal/domain/quote"
)

// maxSymbols limits one batch request
const maxSymbols = 50

// QuotesHandler exposes the batch quote fetch as JSON
type QuotesHandler struct {
	fetcher        quote.BatchFetcher
	defaultSymbols []quote.Symbol
}

// NewQuotesHandler creates a new QuotesHandler
func NewQuotesHandler(fetcher quote.BatchFetcher, defaultSymbols []quote.Symbol) *QuotesHandler {
	return &QuotesHandler{
		fetcher:        fetcher,
		defaultSymbols: defaultSymbols,
	}
}

// QuoteItem is one row of the batch response
type QuoteItem struct {
	Symbol  quote.Symbol         `json:"symbol"`
	Quote   quote.Quote          `json:"quote"`
	Display dashboard.DisplayRow `json:"display"`
}

// GetQuotes fetches fresh quotes for a symbol list, all or nothing
// GET /api/quotes?symbols=AAPL,MSFT&q=&sort=&dir=
func (h *QuotesHandler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	symbols := h.defaultSymbols
	if raw := r.URL.Query().Get("symbols"); raw != "" {
		symbols = quote.ParseSymbols(raw)
	}

	if len(symbols) == 0 {
		response.BadRequest(w, r, "Invalid request", "at least one symbol required")
		return
	}
	if len(symbols) > maxSymbols {
		response.BadRequest(w, r, "Too many symbols", "maximum 50 symbols per request")
		return
	}
	for _, s := range symbols {
		if !quote.ValidateSymbol(s) {
			response.BadRequest(w, r, "Invalid symbol format", "invalid symbol: "+s.String())
			return
		}
	}

	view, err := viewFromQuery(r.URL.Query())
	if err != nil {
		response.BadRequest(w, r, "Invalid view parameters", err.Error())
		return
	}

	rows, err := h.fetcher.FetchQuotes(r.Context(), symbols)
	if err != nil {
		if quote.IsConfigurationError(err) {
			response.ConfigurationError(w, r, dashboard.UserMessage(err))
			return
		}
		response.ExternalAPIError(w, r, "finnhub", dashboard.UserMessage(err), err)
		return
	}

	rows = dashboard.Derive(rows, view)
	items := make([]QuoteItem, len(rows))
	for i, row := range rows {
		items[i] = QuoteItem{
			Symbol:  row.Symbol,
			Quote:   row.Quote,
			Display: dashboard.FormatRow(row),
		}
	}

	response.SuccessList(w, r, items, len(items))
}
