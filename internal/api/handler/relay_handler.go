package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/Mr-Jayed/TracON-Project1/internal/api/middleware"
	"github.com/Mr-Jayed/TracON-Project1/internal/domain"
	"github.com/Mr-Jayed/TracON-Project1/internal/service"
)

// Relayer is the part of service.RelayService the handler needs.
type Relayer interface {
	Relay(ctx context.Context, ev *domain.InboundEvent) (*service.RelayResult, error)
}

// RelayHandler accepts database-trigger webhooks and relays them to the
// push provider.
type RelayHandler struct {
	svc    Relayer
	logger *zap.Logger
}

func NewRelayHandler(svc Relayer, logger *zap.Logger) *RelayHandler {
	return &RelayHandler{svc: svc, logger: logger}
}

// Relay handles POST /
//
// 200 carries the provider's JSON reply verbatim, whatever the provider's own
// status was. 400 is the literal text "No user_id". 500 carries the error
// message as plain text.
func (h *RelayHandler) Relay(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("could not read inbound event",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		h.reject(r.Context(), w, &domain.RequestError{Err: err})
		return
	}

	status, body, err := h.relay(r.Context(), raw)
	if err != nil {
		h.reject(r.Context(), w, err)
		return
	}
	respondRaw(w, status, body)
}

// relay decodes raw and runs it through the service. It is shared by the
// HTTP and API Gateway entrypoints.
func (h *RelayHandler) relay(ctx context.Context, raw []byte) (int, []byte, error) {
	var ev domain.InboundEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		// Valid JSON that is not an object simply has no record.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return h.forward(ctx, &domain.InboundEvent{})
		}
		h.logger.Error("could not decode inbound event",
			zap.String("correlation_id", apimw.GetCorrelationID(ctx)),
			zap.Error(err),
		)
		return 0, nil, &domain.RequestError{Err: err}
	}
	return h.forward(ctx, &ev)
}

func (h *RelayHandler) forward(ctx context.Context, ev *domain.InboundEvent) (int, []byte, error) {
	res, err := h.svc.Relay(ctx, ev)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, res.Body, nil
}

func (h *RelayHandler) reject(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	h.logger.Debug("relay rejected",
		zap.String("correlation_id", apimw.GetCorrelationID(ctx)),
		zap.Int("status", status),
		zap.Error(err),
	)
	respondText(w, status, bodyFor(err))
}
