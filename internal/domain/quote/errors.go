package quote

import "errors"

// Domain errors
var (
	// ErrAPIKeyNotConfigured is the configuration error raised before any network call
	ErrAPIKeyNotConfigured = errors.New("Finnhub API key is not configured. Please check your .env file.")

	// ErrFetchFailed wraps any failure of a batch quote fetch
	ErrFetchFailed = errors.New("quote fetch failed")

	// Provider errors
	ErrUnexpectedStatus = errors.New("unexpected status from quote provider")
	ErrInvalidResponse  = errors.New("invalid response from quote provider")
	ErrInvalidSymbol    = errors.New("invalid ticker symbol")
)

// IsConfigurationError checks if the error is a missing-credential error
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrAPIKeyNotConfigured)
}

// IsFetchError checks if the error is a batch fetch failure
func IsFetchError(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}
