// Package main - value-g CLI
// 통합 CLI 진입점
//
// 사용법:
//
//	go run ./cmd/valueg serve
//	go run ./cmd/valueg quotes --sort price --desc
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bNTGeez/value-g/cmd/valueg/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
