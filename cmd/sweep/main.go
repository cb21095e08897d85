package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"oil_heating/internal/sweepcli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := sweepcli.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
