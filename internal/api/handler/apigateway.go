package handler

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	apimw "github.com/Mr-Jayed/TracON-Project1/internal/api/middleware"
	"github.com/Mr-Jayed/TracON-Project1/internal/domain"
)

// HandleAPIGateway is the serverless counterpart of Relay. Errors are
// mapped to responses exactly as on the HTTP path; the returned error is
// always nil so the platform never retries on our behalf.
func (h *RelayHandler) HandleAPIGateway(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	ctx = apimw.WithCorrelationID(ctx, req.RequestContext.RequestID)

	raw := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return h.gatewayError(ctx, &domain.RequestError{Err: err}), nil
		}
		raw = decoded
	}

	status, body, err := h.relay(ctx, raw)
	if err != nil {
		return h.gatewayError(ctx, err), nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

func (h *RelayHandler) gatewayError(ctx context.Context, err error) events.APIGatewayProxyResponse {
	status := statusFor(err)
	h.logger.Debug("relay rejected",
		zap.String("correlation_id", apimw.GetCorrelationID(ctx)),
		zap.Int("status", status),
		zap.Error(err),
	)
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
		Body:       bodyFor(err),
	}
}
