package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/graphowls/graphowls-qr/cmd/generator"
	"github.com/graphowls/graphowls-qr/pkg/logger"

	_ "time/tzdata"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := generator.New().ExecuteContext(ctx)
	stop()

	if err != nil {
		if logger.Log != nil {
			logger.Log.Errorf("Failed to generate QR code: %v", err)
			logger.Sync()
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
	logger.Sync()
}
