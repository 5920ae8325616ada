// TasteVerse: beginner-friendly recipes, progress and badges in the
// terminal.
//
// Usage:
//
//	tasteverse [command] [-v] [-q] [--format json|text]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/hammamikhairi/tasteverse/internal/cli"
	"github.com/hammamikhairi/tasteverse/internal/config"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "tasteverse: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	// Ctrl-C stops a running step timer.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
