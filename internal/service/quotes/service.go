package quotes

import (
	"context"
	"fmt"
	"time"

	"github.com/bNTGeez/value-g/internal/domain/quote"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Fetcher issues one quote request per symbol concurrently and
// returns either the complete row set or a single aggregate failure.
type Fetcher struct {
	provider quote.Provider
}

// NewFetcher creates a new Fetcher
func NewFetcher(provider quote.Provider) *Fetcher {
	return &Fetcher{provider: provider}
}

var _ quote.BatchFetcher = (*Fetcher)(nil)

// FetchQuotes fetches quotes for all symbols.
//
// Rows come back in input order regardless of completion order. Any failed request
// fails the batch (wrapped in quote.ErrFetchFailed) and partial rows are discarded.
// A missing credential is reported as quote.ErrAPIKeyNotConfigured before any request.
// Nothing is retried or cached.
func (f *Fetcher) FetchQuotes(ctx context.Context, symbols []quote.Symbol) ([]quote.StockRow, error) {
	if err := f.provider.CheckCredential(); err != nil {
		log.Warn().Err(err).Msg("Quote fetch aborted: credential not configured")
		return nil, err
	}

	symbols = quote.Dedupe(symbols)
	start := time.Now()

	rows := make([]quote.StockRow, len(symbols))
	g, gctx := errgroup.WithContext(ctx)

	for i, symbol := range symbols {
		i, symbol := i, symbol
		g.Go(func() error {
			q, err := f.provider.GetQuote(gctx, symbol)
			if err != nil {
				return fmt.Errorf("symbol %s: %w", symbol, err)
			}
			// 각 goroutine은 자기 인덱스에만 쓴다
			rows[i] = quote.StockRow{Symbol: symbol, Quote: q}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if quote.IsConfigurationError(err) {
			return nil, err
		}
		log.Error().
			Err(err).
			Int("symbol_count", len(symbols)).
			Dur("elapsed", time.Since(start)).
			Msg("Quote batch failed")
		return nil, fmt.Errorf("%w: %w", quote.ErrFetchFailed, err)
	}

	log.Debug().
		Int("symbol_count", len(symbols)).
		Dur("elapsed", time.Since(start)).
		Msg("Quote batch fetched")

	return rows, nil
}
