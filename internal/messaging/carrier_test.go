package messaging

import (
	"testing"

	"github.com/segmentio/kafka-go"
)

func TestMessageCarrier(t *testing.T) {
	msg := &kafka.Message{}
	carrier := NewMessageCarrier(msg)

	t.Run("missing key returns empty", func(t *testing.T) {
		if got := carrier.Get("traceparent"); got != "" {
			t.Errorf("expected empty value, got %q", got)
		}
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		carrier.Set("traceparent", "00-abc-def-01")
		if got := carrier.Get("traceparent"); got != "00-abc-def-01" {
			t.Errorf("unexpected value: %q", got)
		}
	})

	t.Run("set overwrites existing header", func(t *testing.T) {
		carrier.Set("traceparent", "00-abc-def-02")
		if got := carrier.Get("traceparent"); got != "00-abc-def-02" {
			t.Errorf("unexpected value: %q", got)
		}
		if len(msg.Headers) != 1 {
			t.Errorf("expected a single header, got %d", len(msg.Headers))
		}
	})

	t.Run("keys lists all headers", func(t *testing.T) {
		carrier.Set("baggage", "k=v")
		keys := carrier.Keys()
		if len(keys) != 2 {
			t.Fatalf("expected 2 keys, got %d", len(keys))
		}
	})
}
