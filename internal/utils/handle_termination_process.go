package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// HandleTerminationProcess returns a context that is cancelled on SIGINT or
// SIGTERM. The cancel func releases the signal subscription.
func HandleTerminationProcess(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
