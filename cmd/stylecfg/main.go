package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/opencode-ai/stylecfg/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		cli.PrintError(os.Stderr, err)
		stop()
		os.Exit(cli.ExitCode(err))
	}
}
