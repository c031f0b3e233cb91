package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/oopsiroute/internal/config"
)

func newTestApp(addr string) *app {
	cfg := config.Default()
	cfg.Server.Addr = addr
	cfg.Server.Mode = "test"
	return &app{cfg: cfg, logger: zap.NewNop()}
}

// serveWithin runs a.serve and fails the test if it does not return in time.
func serveWithin(ctx context.Context, t *testing.T, a *app, limit time.Duration) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- a.serve(ctx) }()

	select {
	case err := <-done:
		return err
	case <-time.After(limit):
		t.Fatalf("serve did not return within %s", limit)
		return nil
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(200*time.Millisecond, cancel)

	err := serveWithin(ctx, t, newTestApp("127.0.0.1:0"), 5*time.Second)
	assert.NoError(t, err)
}

func TestServe_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := serveWithin(ctx, t, newTestApp("127.0.0.1:0"), 5*time.Second)
	assert.NoError(t, err)
}

func TestServe_ListenError(t *testing.T) {
	err := serveWithin(context.Background(), t, newTestApp("127.0.0.1:-1"), 5*time.Second)
	require.Error(t, err)
}
