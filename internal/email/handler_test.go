package email

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestHandler() *Handler {
	return NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandler_HandleSend(t *testing.T) {
	t.Run("accepts and records a message", func(t *testing.T) {
		handler := newTestHandler()

		req := httptest.NewRequest(http.MethodPost, "/send",
			strings.NewReader(`{"to":"name@domain.com","subject":"Storefront","body":"Welcome aboard!"}`))
		rec := httptest.NewRecorder()

		handler.HandleSend(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp sendResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Status != "sent" {
			t.Errorf("expected status sent, got %s", resp.Status)
		}
	})

	t.Run("rejects a missing recipient", func(t *testing.T) {
		handler := newTestHandler()

		req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(`{"body":"hello"}`))
		rec := httptest.NewRecorder()

		handler.HandleSend(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		handler := newTestHandler()

		req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(`not json`))
		rec := httptest.NewRecorder()

		handler.HandleSend(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestHandler_HandleList(t *testing.T) {
	handler := newTestHandler()

	for _, body := range []string{"first", "second"} {
		req := httptest.NewRequest(http.MethodPost, "/send",
			strings.NewReader(`{"to":"name@domain.com","subject":"s","body":"`+body+`"}`))
		handler.HandleSend(httptest.NewRecorder(), req)
	}

	rec := httptest.NewRecorder()
	handler.HandleList(rec, httptest.NewRequest(http.MethodGet, "/sent", nil))

	var messages []Message
	if err := json.Unmarshal(rec.Body.Bytes(), &messages); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Body != "first" || messages[1].Body != "second" {
		t.Errorf("unexpected order: %+v", messages)
	}
}
