package pricing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubRateSource struct {
	rate float64
	err  error

	calls  int
	base   string
	target string
}

func (s *stubRateSource) Rate(_ context.Context, base, target string) (float64, error) {
	s.calls++
	s.base = base
	s.target = target
	return s.rate, s.err
}

func TestConverter_PriceIn(t *testing.T) {
	t.Run("multiplies amount by the fetched rate", func(t *testing.T) {
		rates := &stubRateSource{rate: 1.5}
		conv := NewConverter(rates)

		price, err := conv.PriceIn(context.Background(), 10, "AUD")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if price != 15 {
			t.Errorf("expected price 15, got %v", price)
		}
		if rates.calls != 1 {
			t.Errorf("expected rate source called once, got %d", rates.calls)
		}
		if rates.base != "USD" || rates.target != "AUD" {
			t.Errorf("expected rate requested for USD->AUD, got %s->%s", rates.base, rates.target)
		}
	})

	t.Run("uses the configured base currency", func(t *testing.T) {
		rates := &stubRateSource{rate: 2}
		conv := NewConverter(rates, WithBaseCurrency("EUR"))

		if _, err := conv.PriceIn(context.Background(), 1, "GBP"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rates.base != "EUR" {
			t.Errorf("expected base EUR, got %s", rates.base)
		}
	})

	t.Run("propagates rate source faults", func(t *testing.T) {
		boom := errors.New("rate service down")
		conv := NewConverter(&stubRateSource{err: boom})

		_, err := conv.PriceIn(context.Background(), 10, "AUD")
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped source error, got %v", err)
		}
	})
}

func TestRateClient_Rate(t *testing.T) {
	t.Run("fetches and decodes a rate", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/rates" {
				t.Errorf("expected /rates, got %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("base"); got != "USD" {
				t.Errorf("expected base USD, got %s", got)
			}
			if got := r.URL.Query().Get("target"); got != "JPY" {
				t.Errorf("expected target JPY, got %s", got)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"rate": 147.5}`))
		}))
		defer server.Close()

		client := NewRateClient(server.URL, server.Client())
		rate, err := client.Rate(context.Background(), "USD", "JPY")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rate != 147.5 {
			t.Errorf("expected rate 147.5, got %v", rate)
		}
	})

	t.Run("rejects non-positive rates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"rate": 0}`))
		}))
		defer server.Close()

		client := NewRateClient(server.URL, server.Client())
		if _, err := client.Rate(context.Background(), "USD", "JPY"); err == nil {
			t.Fatal("expected error for zero rate")
		}
	})

	t.Run("errors on non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewRateClient(server.URL, server.Client())
		if _, err := client.Rate(context.Background(), "USD", "JPY"); err == nil {
			t.Fatal("expected error for 503 response")
		}
	})
}
