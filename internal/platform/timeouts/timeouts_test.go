package timeouts

import (
	"testing"
	"time"
)

func TestOrDefault(t *testing.T) {
	if got := OrDefault(0, Shutdown); got != Shutdown {
		t.Fatalf("OrDefault(0) = %v, want %v", got, Shutdown)
	}
	if got := OrDefault(-time.Second, Idle); got != Idle {
		t.Fatalf("OrDefault(-1s) = %v, want %v", got, Idle)
	}
	if got := OrDefault(time.Second, Shutdown); got != time.Second {
		t.Fatalf("OrDefault(1s) = %v, want 1s", got)
	}
}
