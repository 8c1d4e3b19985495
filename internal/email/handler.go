package email

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// Handler is a stand-in email delivery service. It accepts messages,
// simulates provider latency and keeps the most recent ones in memory so
// welcome and login-code mail can be inspected during development.
type Handler struct {
	logger *slog.Logger

	mu   sync.Mutex
	sent []Message
	keep int
}

type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

const defaultKeep = 100

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		keep:   defaultKeep,
	}
}

type sendResponse struct {
	Status string `json:"status"`
}

func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var msg Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg.To == "" {
		h.writeError(w, http.StatusBadRequest, "missing recipient")
		return
	}

	delay := time.Duration(50+rand.Intn(151)) * time.Millisecond
	time.Sleep(delay)

	h.mu.Lock()
	h.sent = append(h.sent, msg)
	if len(h.sent) > h.keep {
		h.sent = h.sent[len(h.sent)-h.keep:]
	}
	h.mu.Unlock()

	h.logger.Info("email sent", "to", msg.To, "subject", msg.Subject)

	h.writeJSON(w, http.StatusOK, sendResponse{Status: "sent"})
}

func (h *Handler) HandleList(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	messages := make([]Message, len(h.sent))
	copy(messages, h.sent)
	h.mu.Unlock()

	h.writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
