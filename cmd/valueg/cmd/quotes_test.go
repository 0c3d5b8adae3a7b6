package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bNTGeez/value-g/internal/dashboard"
	"github.com/bNTGeez/value-g/internal/domain/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finnhubStub(t *testing.T, failing string) *httptest.Server {
	t.Helper()
	quotes := map[string]string{
		"AAPL":  `{"c":150.5,"d":1.2,"dp":0.8,"h":151,"l":149,"o":150,"pc":149.3,"t":1700000000}`,
		"MSFT":  `{"c":310.25,"d":-2.456,"dp":-0.79,"h":312,"l":309,"o":311,"pc":312.7,"t":1700000000}`,
		"GOOGL": `{"c":140.1,"d":null,"dp":null,"h":141,"l":139,"o":140,"pc":140.1,"t":1700000000}`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := r.URL.Query().Get("symbol")
		if symbol == failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, quotes[symbol])
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func setEnv(t *testing.T, baseURL, key string) {
	t.Helper()
	t.Setenv("FINNHUB_API_KEY", key)
	t.Setenv("VITE_FINNHUB_API_KEY", "")
	t.Setenv("FINNHUB_BASE_URL", baseURL)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "json")
}

func TestQuotesCommand_SortedDesc(t *testing.T) {
	srv := finnhubStub(t, "")
	setEnv(t, srv.URL, "test-key")

	out, err := runCLI(t, "quotes", "--symbols", "AAPL,MSFT,GOOGL", "--search", "", "--sort", "price", "--desc")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Symbol"))
	assert.True(t, strings.HasPrefix(lines[1], "MSFT"))
	assert.Contains(t, lines[1], "$310.25")
	assert.Contains(t, lines[1], "$-2.46")
	assert.True(t, strings.HasPrefix(lines[2], "AAPL"))
	assert.Contains(t, lines[2], "+$1.20")
	assert.True(t, strings.HasPrefix(lines[3], "GOOGL"))
	assert.Contains(t, lines[3], "N/A")
}

func TestQuotesCommand_Search(t *testing.T) {
	srv := finnhubStub(t, "")
	setEnv(t, srv.URL, "test-key")

	out, err := runCLI(t, "quotes", "--symbols", "AAPL,GOOGL", "--search", "go", "--sort", "symbol", "--desc=false")
	require.NoError(t, err)
	assert.Contains(t, out, "GOOGL")
	assert.NotContains(t, out, "AAPL")
}

func TestQuotesCommand_FetchFailure(t *testing.T) {
	srv := finnhubStub(t, "MSFT")
	setEnv(t, srv.URL, "test-key")

	out, err := runCLI(t, "quotes", "--symbols", "AAPL,MSFT", "--search", "", "--sort", "symbol", "--desc=false")
	require.Error(t, err)
	assert.Equal(t, dashboard.FetchFailedMessage, err.Error())
	assert.NotContains(t, out, "$150.50")
}

func TestQuotesCommand_MissingKey(t *testing.T) {
	srv := finnhubStub(t, "")
	setEnv(t, srv.URL, "")

	_, err := runCLI(t, "quotes", "--symbols", "AAPL", "--search", "", "--sort", "symbol", "--desc=false")
	require.Error(t, err)
	assert.Equal(t, quote.ErrAPIKeyNotConfigured.Error(), err.Error())
}

func TestQuotesCommand_InvalidSort(t *testing.T) {
	srv := finnhubStub(t, "")
	setEnv(t, srv.URL, "test-key")

	_, err := runCLI(t, "quotes", "--symbols", "AAPL", "--search", "", "--sort", "volume", "--desc=false")
	assert.ErrorIs(t, err, dashboard.ErrInvalidSortField)
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTable(&buf, []dashboard.DisplayRow{
		{Symbol: "AAPL", Price: "$1.00", Change: "+$0.10", ChangePercent: "+1.00%"},
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"Symbol", "Current", "Price", "Change", "Change", "%"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"AAPL", "$1.00", "+$0.10", "+1.00%"}, strings.Fields(lines[1]))
}
