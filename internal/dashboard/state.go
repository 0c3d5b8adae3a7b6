package dashboard

import (
	"slices"

	"github.com/bNTGeez/value-g/internal/domain/quote"
)

// FetchStatus is the phase of a fetch cycle
type FetchStatus string

const (
	StatusIdle    FetchStatus = "idle"
	StatusLoading FetchStatus = "loading"
	StatusSuccess FetchStatus = "success"
	StatusError   FetchStatus = "error"
)

// FetchState holds exactly one of Idle, Loading, Success(rows) or Error(message).
// Rows is set only in Success, Message only in Error.
type FetchState struct {
	Status  FetchStatus      `json:"status"`
	Rows    []quote.StockRow `json:"rows,omitempty"`
	Message string           `json:"message,omitempty"`
}

func IdleState() FetchState    { return FetchState{Status: StatusIdle} }
func LoadingState() FetchState { return FetchState{Status: StatusLoading} }

func SuccessState(rows []quote.StockRow) FetchState {
	if rows == nil {
		rows = []quote.StockRow{}
	}
	return FetchState{Status: StatusSuccess, Rows: rows}
}

func ErrorState(message string) FetchState {
	return FetchState{Status: StatusError, Message: message}
}

// IsTerminal reports whether the cycle has settled
func (s FetchState) IsTerminal() bool {
	return s.Status == StatusSuccess || s.Status == StatusError
}

// clone copies the row slice so callers cannot mutate table state
func (s FetchState) clone() FetchState {
	s.Rows = slices.Clone(s.Rows)
	return s
}
