package dashboard

import (
	"context"
	"slices"
	"sync"

	"github.com/bNTGeez/value-g/internal/domain/quote"
	"github.com/rs/zerolog/log"
)

// ==============================================================================
// Table - fetch cycle state machine + view state
// ==============================================================================
//
//	Idle/Success/Error --(Mount | SetSymbols(changed) | Retry)--> Loading
//	Loading --(fetch resolves)--> Success(rows)
//	Loading --(fetch rejects)--> Error(message)
//
// Every cycle is tagged with a generation. A result whose generation is no longer
// current is dropped, so a late response for an old symbol set never reaches state.

// Table owns FetchState and ViewSpec for one dashboard view
type Table struct {
	fetcher quote.BatchFetcher

	mu         sync.RWMutex
	symbols    []quote.Symbol
	generation uint64
	state      FetchState
	view       ViewSpec
	inflight   chan struct{} // closed when the current cycle settles

	// Metrics
	committed int64
	discarded int64
}

// Snapshot is a consistent read of the table
type Snapshot struct {
	Symbols    []quote.Symbol   `json:"symbols"`
	Generation uint64           `json:"generation"`
	State      FetchState       `json:"state"`
	View       ViewSpec         `json:"view"`
	Rows       []quote.StockRow `json:"rows"` // derived display sequence
}

// TableStats holds cycle counters
type TableStats struct {
	Generation uint64 `json:"generation"`
	Committed  int64  `json:"committed"`
	Discarded  int64  `json:"discarded"`
}

// NewTable creates a table in Idle for the given symbols
func NewTable(fetcher quote.BatchFetcher, symbols []quote.Symbol) *Table {
	return &Table{
		fetcher: fetcher,
		symbols: slices.Clone(symbols),
		state:   IdleState(),
		view:    DefaultViewSpec(),
	}
}

// Mount starts the first fetch cycle.
// The returned channel is closed once the cycle settles (committed or discarded).
func (t *Table) Mount(ctx context.Context) <-chan struct{} {
	return t.begin(ctx, "mount")
}

// SetSymbols replaces the symbol list.
// Identical content is a no-op; anything else restarts at Loading and drops prior rows.
func (t *Table) SetSymbols(ctx context.Context, symbols []quote.Symbol) <-chan struct{} {
	t.mu.Lock()
	if slices.Equal(t.symbols, symbols) {
		done := t.inflight
		t.mu.Unlock()
		return settledOr(done)
	}
	t.symbols = slices.Clone(symbols)
	t.mu.Unlock()

	return t.begin(ctx, "symbols_changed")
}

// Retry re-runs the fetch for the current symbols.
// While a cycle is already loading, Retry returns that cycle instead of starting another.
func (t *Table) Retry(ctx context.Context) <-chan struct{} {
	t.mu.RLock()
	loading := t.state.Status == StatusLoading
	done := t.inflight
	t.mu.RUnlock()

	if loading {
		return settledOr(done)
	}
	return t.begin(ctx, "retry")
}

// begin enters Loading and launches the fetch for a new generation
func (t *Table) begin(ctx context.Context, reason string) <-chan struct{} {
	done := make(chan struct{})

	t.mu.Lock()
	t.generation++
	gen := t.generation
	symbols := slices.Clone(t.symbols)
	t.state = LoadingState()
	t.inflight = done
	t.mu.Unlock()

	log.Debug().
		Uint64("generation", gen).
		Str("reason", reason).
		Int("symbol_count", len(symbols)).
		Msg("Dashboard: fetch cycle started")

	go func() {
		defer close(done)
		rows, err := t.fetcher.FetchQuotes(ctx, symbols)
		t.commit(gen, rows, err)
	}()

	return done
}

// commit applies a fetch result if its generation is still current
func (t *Table) commit(gen uint64, rows []quote.StockRow, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		t.discarded++
		log.Debug().
			Uint64("generation", gen).
			Uint64("current", t.generation).
			Msg("Dashboard: stale fetch result discarded")
		return false
	}

	t.committed++
	if err != nil {
		log.Error().
			Err(err).
			Uint64("generation", gen).
			Msg("Dashboard: fetch cycle failed")
		t.state = ErrorState(UserMessage(err))
		return true
	}

	t.state = SuccessState(rows)
	return true
}

// SetSearchTerm updates the symbol filter
func (t *Table) SetSearchTerm(term string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view.SearchTerm = term
}

// ClickHeader applies a sort header click and returns the new view
func (t *Table) ClickHeader(field SortField) (ViewSpec, error) {
	if !field.IsValid() {
		return t.View(), ErrInvalidSortField
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.view = t.view.Toggle(field)
	return t.view, nil
}

// SetView replaces the whole ViewSpec
func (t *Table) SetView(v ViewSpec) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view = v
}

// View returns the current ViewSpec
func (t *Table) View() ViewSpec {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.view
}

// State returns a copy of the current fetch state
func (t *Table) State() FetchState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.clone()
}

// Symbols returns the current symbol list
func (t *Table) Symbols() []quote.Symbol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.symbols)
}

// Rows derives the display sequence from the table's own ViewSpec.
// Outside Success there is nothing to display.
func (t *Table) Rows() []quote.StockRow {
	t.mu.RLock()
	state, view := t.state.clone(), t.view
	t.mu.RUnlock()

	if state.Status != StatusSuccess {
		return []quote.StockRow{}
	}
	return Derive(state.Rows, view)
}

// Snapshot returns state, view and derived rows read under one lock
func (t *Table) Snapshot() Snapshot {
	t.mu.RLock()
	s := Snapshot{
		Symbols:    slices.Clone(t.symbols),
		Generation: t.generation,
		State:      t.state.clone(),
		View:       t.view,
	}
	t.mu.RUnlock()

	s.Rows = []quote.StockRow{}
	if s.State.Status == StatusSuccess {
		s.Rows = Derive(s.State.Rows, s.View)
	}
	return s
}

// Stats returns cycle counters
func (t *Table) Stats() TableStats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return TableStats{
		Generation: t.generation,
		Committed:  t.committed,
		Discarded:  t.discarded,
	}
}

// settledOr returns ch, or an already-closed channel when there is no cycle
func settledOr(ch chan struct{}) <-chan struct{} {
	if ch != nil {
		return ch
	}
	closed := make(chan struct{})
	close(closed)
	return closed
}
