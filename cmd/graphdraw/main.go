// Command graphdraw plots undirected graphs at random positions and opens
// the result in the browser.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/graphdraw/internal/cli"
	gderrors "github.com/matzehuels/graphdraw/pkg/errors"
)

// Exit codes.
const (
	exitError       = 1
	exitUsage       = 2
	exitInterrupted = 130 // 128 + SIGINT
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return exitCode(cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case gderrors.IsUserError(err):
		fmt.Fprintln(os.Stderr, "error:", gderrors.UserMessage(err))
		return exitUsage
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitError
	}
}
