package redis

import (
	"context"
	"testing"

	"github.com/nzwalks/walks-api/internal/infrastructure/config"
)

func TestConnect_FailsFastWhenUnreachable(t *testing.T) {
	// Port 1 is never serving; the startup ping must surface the failure
	// instead of handing back a client that breaks per request.
	_, err := Connect(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"})
	if err == nil {
		t.Fatalf("expected error for unreachable backend")
	}
}
