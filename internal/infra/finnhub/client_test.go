package finnhub_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/bNTGeez/value-g/internal/domain/quote"
	"github.com/bNTGeez/value-g/internal/infra/finnhub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-key", r.Header.Get("X-Finnhub-Token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"c":172.345,"d":-1.2,"dp":-0.69,"h":175,"l":170.5,"o":171,"pc":173.545,"t":1700000000}`))
	}))
	defer srv.Close()

	client := finnhub.NewClient(finnhub.Config{APIKey: "test-key", BaseURL: srv.URL})

	q, err := client.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	require.NotNil(t, q.CurrentPrice)
	assert.Equal(t, "172.345", q.CurrentPrice.String())
	assert.Equal(t, "-1.2", q.Change.String())
	assert.Equal(t, "-0.69", q.ChangePercent.String())
	assert.Equal(t, "173.545", q.PreviousClose.String())
	require.NotNil(t, q.Timestamp)
	assert.Equal(t, int64(1700000000), q.Timestamp.Unix())
}

func TestGetQuote_NullFieldsAreAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"c":0,"d":null,"dp":null,"h":0,"l":0,"o":0,"pc":0,"t":0}`))
	}))
	defer srv.Close()

	client := finnhub.NewClient(finnhub.Config{APIKey: "k", BaseURL: srv.URL})

	q, err := client.GetQuote(context.Background(), "ZZZZ")
	require.NoError(t, err)
	assert.NotNil(t, q.CurrentPrice)
	assert.Nil(t, q.Change)
	assert.Nil(t, q.ChangePercent)
	assert.Nil(t, q.Timestamp)
}

func TestGetQuote_MissingAPIKey(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	client := finnhub.NewClient(finnhub.Config{APIKey: "   ", BaseURL: srv.URL})

	_, err := client.GetQuote(context.Background(), "AAPL")
	assert.True(t, errors.Is(err, quote.ErrAPIKeyNotConfigured))
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "no request must be sent without a key")
}

func TestGetQuote_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"API limit reached"}`))
	}))
	defer srv.Close()

	client := finnhub.NewClient(finnhub.Config{APIKey: "k", BaseURL: srv.URL})

	_, err := client.GetQuote(context.Background(), "AAPL")
	require.Error(t, err)
	assert.True(t, errors.Is(err, quote.ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "status=429")
}

func TestGetQuote_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	client := finnhub.NewClient(finnhub.Config{APIKey: "k", BaseURL: srv.URL})

	_, err := client.GetQuote(context.Background(), "AAPL")
	assert.True(t, errors.Is(err, quote.ErrInvalidResponse))
}
