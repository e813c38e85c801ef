package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// setupSignalHandler creates a context that is cancelled on interrupt
// signals, letting long simulations exit cleanly.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
