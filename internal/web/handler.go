package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/joao-fontenele/storefront-core/internal/account"
	"github.com/joao-fontenele/storefront-core/internal/checkout"
	"github.com/joao-fontenele/storefront-core/internal/domain"
	"github.com/joao-fontenele/storefront-core/internal/page"
	"github.com/joao-fontenele/storefront-core/internal/pricing"
	"github.com/joao-fontenele/storefront-core/internal/shipping"
	"github.com/joao-fontenele/storefront-core/internal/store"
)

type Handler struct {
	renderer  *page.Renderer
	converter *pricing.Converter
	shipping  *shipping.Service
	checkout  *checkout.Service
	accounts  *account.Service
	hours     *store.Hours
	logger    *slog.Logger
	ops       metric.Int64Counter
}

func NewHandler(
	renderer *page.Renderer,
	converter *pricing.Converter,
	shippingSvc *shipping.Service,
	checkoutSvc *checkout.Service,
	accounts *account.Service,
	hours *store.Hours,
	logger *slog.Logger,
) (*Handler, error) {
	meter := otel.Meter("web")
	ops, err := meter.Int64Counter("storefront.operations",
		metric.WithDescription("Business operations by outcome"),
	)
	if err != nil {
		return nil, err
	}

	return &Handler{
		renderer:  renderer,
		converter: converter,
		shipping:  shippingSvc,
		checkout:  checkoutSvc,
		accounts:  accounts,
		hours:     hours,
		logger:    logger,
		ops:       ops,
	}, nil
}

func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	content := h.renderer.Render(r.Context())
	h.record(r.Context(), "render_page", "ok")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(content)); err != nil {
		h.logger.Error("failed to write page", "error", err)
	}
}

func (h *Handler) HandlePrice(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil || amount <= 0 {
		h.writeError(w, http.StatusBadRequest, "amount must be a positive number")
		return
	}

	currency := r.URL.Query().Get("currency")
	if currency == "" {
		h.writeError(w, http.StatusBadRequest, "missing currency")
		return
	}

	price, err := h.converter.PriceIn(r.Context(), amount, currency)
	if err != nil {
		h.logger.Error("failed to convert price", "error", err, "currency", currency)
		h.record(r.Context(), "get_price", "fault")
		h.writeError(w, http.StatusBadGateway, "rate service unavailable")
		return
	}

	h.record(r.Context(), "get_price", "ok")
	h.writeJSON(w, http.StatusOK, map[string]any{"price": price, "currency": currency})
}

func (h *Handler) HandleShipping(w http.ResponseWriter, r *http.Request) {
	destination := r.PathValue("destination")
	if destination == "" {
		h.writeError(w, http.StatusBadRequest, "missing destination")
		return
	}

	info, err := h.shipping.Info(r.Context(), destination)
	if err != nil {
		h.logger.Error("failed to get shipping info", "error", err, "destination", destination)
		h.record(r.Context(), "get_shipping_info", "fault")
		h.writeError(w, http.StatusBadGateway, "shipping service unavailable")
		return
	}

	h.record(r.Context(), "get_shipping_info", "ok")
	h.writeJSON(w, http.StatusOK, map[string]string{"message": info})
}

type submitOrderRequest struct {
	TotalAmount float64 `json:"total_amount"`
	CardNumber  string  `json:"card_number"`
}

func (h *Handler) HandleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TotalAmount < 0 {
		h.writeError(w, http.StatusBadRequest, "total_amount must not be negative")
		return
	}

	order := domain.Order{TotalAmount: req.TotalAmount}
	method := domain.PaymentMethod{CardNumber: req.CardNumber}

	result, err := h.checkout.SubmitOrder(r.Context(), order, method)
	if err != nil {
		h.logger.Error("failed to submit order", "error", err)
		h.record(r.Context(), "submit_order", "fault")
		h.writeError(w, http.StatusBadGateway, "payment service unavailable")
		return
	}

	if !result.Success {
		h.record(r.Context(), "submit_order", "declined")
		h.writeJSON(w, http.StatusOK, result)
		return
	}

	h.record(r.Context(), "submit_order", "ok")
	h.writeJSON(w, http.StatusOK, result)
}

type signUpRequest struct {
	Email string `json:"email"`
}

func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, err := h.accounts.SignUp(r.Context(), req.Email)
	if err != nil {
		h.logger.Error("failed to sign up", "error", err)
		h.record(r.Context(), "sign_up", "fault")
		h.writeError(w, http.StatusBadGateway, "email service unavailable")
		return
	}

	if !ok {
		h.record(r.Context(), "sign_up", "rejected")
		h.writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	h.record(r.Context(), "sign_up", "ok")
	h.writeJSON(w, http.StatusCreated, map[string]bool{"created": true})
}

type loginRequest struct {
	Email string `json:"email"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.accounts.Login(r.Context(), req.Email); err != nil {
		h.logger.Error("failed to send login code", "error", err)
		h.record(r.Context(), "login", "fault")
		h.writeError(w, http.StatusBadGateway, "email service unavailable")
		return
	}

	h.record(r.Context(), "login", "ok")
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "code_sent"})
}

func (h *Handler) HandleStoreStatus(w http.ResponseWriter, r *http.Request) {
	h.record(r.Context(), "store_status", "ok")
	h.writeJSON(w, http.StatusOK, map[string]any{
		"online":   h.hours.IsOnline(),
		"discount": h.hours.Discount(),
	})
}

func (h *Handler) HandleHealthz(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) record(ctx context.Context, operation, outcome string) {
	h.ops.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
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
