package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/coldcopy/coldcopy/pkg/errx"
	"github.com/coldcopy/coldcopy/pkg/logx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logx.WithError(err).Error("coldcopy failed")
		os.Exit(errx.ExitCodeFor(err))
	}
}
