// Package cmd - value-g CLI commands
package cmd

import (
	"context"
	"fmt"

	"github.com/bNTGeez/value-g/internal/pkg/config"
	"github.com/bNTGeez/value-g/internal/pkg/logger"
	"github.com/spf13/cobra"
)

const (
	serviceName    = "value-g"
	serviceVersion = "1.0.0"
)

var (
	// 공통 플래그
	cfgFile string
	verbose bool

	// PersistentPreRunE 에서 로드
	cfg *config.Config
)

// rootCmd 루트 커맨드
var rootCmd = &cobra.Command{
	Use:   "valueg",
	Short: "Value G - real-time stock dashboard",
	Long: `Value G - real-time stock dashboard

Usage:
    go run ./cmd/valueg [command]

Commands:
    serve       - Web dashboard (Port 8080)
    quotes      - Fetch quotes once and print the table
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute 루트 커맨드 실행
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "env file (default is .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(quotesCmd)
}

// initConfig reads the env file and environment, then sets up logging
func initConfig() error {
	var files []string
	if cfgFile != "" {
		files = append(files, cfgFile)
	}

	loaded, err := config.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if verbose {
		loaded.Logging.Level = "debug"
	}

	if err := logger.Init(logger.Config{
		Level:          loaded.Logging.Level,
		Format:         loaded.Logging.Format,
		FileEnabled:    loaded.Logging.FileEnabled,
		FilePath:       loaded.Logging.FilePath,
		RotationSize:   loaded.Logging.RotationSize,
		RetentionDays:  loaded.Logging.RetentionDays,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg = loaded
	return nil
}
