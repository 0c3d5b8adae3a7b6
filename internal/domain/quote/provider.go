package quote

import "context"

// Provider fetches a single quote from an external market-data API
type Provider interface {
	// CheckCredential returns ErrAPIKeyNotConfigured when the provider cannot authenticate.
	// It never performs network I/O.
	CheckCredential() error

	// GetQuote fetches the current quote for one symbol
	GetQuote(ctx context.Context, symbol Symbol) (Quote, error)
}

// BatchFetcher fetches quotes for a symbol set as one unit
type BatchFetcher interface {
	FetchQuotes(ctx context.Context, symbols []Symbol) ([]StockRow, error)
}
