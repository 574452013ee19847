package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/grocery/internal/cli"
	"github.com/idilsaglam/grocery/internal/remote"
	"github.com/idilsaglam/grocery/internal/ui"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	remote.UserAgent = "grocery/" + version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd()
	root.Version = version
	if err := root.ExecuteContext(ctx); err != nil {
		ui.Fail(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}
