package dashboard

import (
	"errors"

	"github.com/bNTGeez/value-g/internal/domain/quote"
)

var (
	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)

// FetchFailedMessage is shown for any batch failure other than configuration
const FetchFailedMessage = "Failed to fetch stock data. Please try again later."

// UserMessage maps a fetch error to the text shown in the Error state.
// Configuration errors are shown verbatim; everything else is generic.
func UserMessage(err error) string {
	if quote.IsConfigurationError(err) {
		return quote.ErrAPIKeyNotConfigured.Error()
	}
	return FetchFailedMessage
}
