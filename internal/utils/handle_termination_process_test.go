package utils

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHandleTerminationProcess(t *testing.T) {
	ctx, stop := HandleTerminationProcess(context.Background())
	defer stop()

	assert.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled by SIGTERM")
	}
}
