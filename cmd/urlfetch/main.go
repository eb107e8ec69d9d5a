// Package main provides the urlfetch example hook entrypoint.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/plato-tools/platohook/internal/hookapp"
)

// main wires process signal handling to the hook runner. Stdout and stdin
// carry the reader protocol; only stderr is free for diagnostics.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exitCode := hookapp.Execute(ctx, os.Args[1:], os.Stdout, os.Stdin, os.Stderr)
	os.Exit(exitCode)
}
