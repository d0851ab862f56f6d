package handler_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/Mr-Jayed/TracON-Project1/internal/api/handler"
	"github.com/Mr-Jayed/TracON-Project1/internal/domain"
	"github.com/Mr-Jayed/TracON-Project1/internal/service"
)

type stubRelayer struct {
	calls int
	res   *service.RelayResult
	err   error
}

func (s *stubRelayer) Relay(_ context.Context, ev *domain.InboundEvent) (*service.RelayResult, error) {
	s.calls++
	if _, err := ev.UserID(); err != nil {
		return nil, err
	}
	return s.res, s.err
}

func TestHandleAPIGateway(t *testing.T) {
	ok := &service.RelayResult{ProviderStatus: 200, Body: json.RawMessage(`{"id":"abc"}`)}
	encoded := base64.StdEncoding.EncodeToString([]byte(`{"record":{"user_id":"u"}}`))

	tests := []struct {
		name       string
		req        events.APIGatewayProxyRequest
		relayErr   error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			req:        events.APIGatewayProxyRequest{Body: `{"record":{"user_id":"u-123"}}`},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"abc"}`,
		},
		{
			name:       "base64 body",
			req:        events.APIGatewayProxyRequest{Body: encoded, IsBase64Encoded: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"abc"}`,
		},
		{
			name:       "missing user id",
			req:        events.APIGatewayProxyRequest{Body: `{"record":{}}`},
			wantStatus: http.StatusBadRequest,
			wantBody:   "No user_id",
		},
		{
			name:       "network failure",
			req:        events.APIGatewayProxyRequest{Body: `{"record":{"user_id":"u"}}`},
			relayErr:   &domain.TransportError{Err: errors.New("network down")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "network down",
		},
		{
			name:       "bad base64",
			req:        events.APIGatewayProxyRequest{Body: "%%%", IsBase64Encoded: true},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "illegal base64 data at input byte 0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			relayer := &stubRelayer{res: ok, err: tc.relayErr}
			h := handler.NewRelayHandler(relayer, zap.NewNop())

			resp, err := h.HandleAPIGateway(context.Background(), tc.req)
			if err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, resp.StatusCode)
			}
			if resp.Body != tc.wantBody {
				t.Fatalf("expected body %q, got %q", tc.wantBody, resp.Body)
			}
		})
	}
}
