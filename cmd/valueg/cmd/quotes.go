package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bNTGeez/value-g/internal/dashboard"
	"github.com/bNTGeez/value-g/internal/domain/quote"
	"github.com/bNTGeez/value-g/internal/infra/finnhub"
	"github.com/bNTGeez/value-g/internal/service/quotes"
	"github.com/spf13/cobra"
)

var (
	quotesSymbols string
	quotesSearch  string
	quotesSort    string
	quotesDesc    bool
)

// quotesCmd 한 번 조회 후 테이블 출력
var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "시세 조회 후 테이블 출력",
	Long: `심볼 목록의 시세를 한 번 조회하고 정렬/필터된 테이블을 출력합니다.
하나라도 실패하면 아무 행도 출력하지 않고 종료 코드 1로 끝납니다.

Examples:
  go run ./cmd/valueg quotes
  go run ./cmd/valueg quotes --symbols AAPL,MSFT --sort price --desc
  go run ./cmd/valueg quotes --search go`,
	RunE: runQuotes,
}

func init() {
	quotesCmd.Flags().StringVar(&quotesSymbols, "symbols", "", "comma-separated symbols (default is $DASHBOARD_SYMBOLS)")
	quotesCmd.Flags().StringVar(&quotesSearch, "search", "", "case-insensitive symbol filter")
	quotesCmd.Flags().StringVar(&quotesSort, "sort", string(dashboard.SortBySymbol), "sort field: symbol, price, change, changePercent")
	quotesCmd.Flags().BoolVar(&quotesDesc, "desc", false, "sort descending")
}

func runQuotes(cmd *cobra.Command, args []string) error {
	raw := cfg.Dashboard.Symbols
	if quotesSymbols != "" {
		raw = quotesSymbols
	}
	symbols := quote.ParseSymbols(raw)
	for _, s := range symbols {
		if !quote.ValidateSymbol(s) {
			return fmt.Errorf("%w: %s", quote.ErrInvalidSymbol, s)
		}
	}

	dir := dashboard.Asc
	if quotesDesc {
		dir = dashboard.Desc
	}
	view, err := dashboard.ParseViewSpec(quotesSearch, quotesSort, string(dir))
	if err != nil {
		return err
	}

	client := finnhub.NewClient(finnhub.Config{
		APIKey:  cfg.Finnhub.APIKey,
		BaseURL: cfg.Finnhub.BaseURL,
	})
	table := dashboard.NewTable(quotes.NewFetcher(client), symbols)
	table.SetView(view)

	select {
	case <-table.Mount(cmd.Context()):
	case <-cmd.Context().Done():
		return cmd.Context().Err()
	}

	state := table.State()
	if state.Status == dashboard.StatusError {
		return errors.New(state.Message)
	}

	return printTable(cmd.OutOrStdout(), dashboard.FormatRows(table.Rows()))
}

// printTable 고정폭 컬럼으로 출력
func printTable(out io.Writer, rows []dashboard.DisplayRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	headers := make([]interface{}, 0, len(dashboard.SortFields))
	format := ""
	for _, field := range dashboard.SortFields {
		headers = append(headers, field.Label())
		format += "%s\t"
	}
	format += "\n"

	fmt.Fprintf(w, format, headers...)
	for _, r := range rows {
		fmt.Fprintf(w, format, r.Symbol, r.Price, r.Change, r.ChangePercent)
	}

	return w.Flush()
}
