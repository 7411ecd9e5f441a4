package redis

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestWaitReady_CanceledContext(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.WaitReady(ctx, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
