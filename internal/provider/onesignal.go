package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Mr-Jayed/TracON-Project1/internal/domain"
)

// OneSignalProvider delivers push notifications through the OneSignal REST API.
// The endpoint is injected from config so tests can point to a local server.
type OneSignalProvider struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewOneSignalProvider builds a client. A zero timeout leaves the request
// bounded only by ctx and the transport defaults.
func NewOneSignalProvider(endpoint, apiKey string, timeout time.Duration) *OneSignalProvider {
	return &OneSignalProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send posts n and returns whatever the provider answered, whatever the
// status. Only a missing or non-JSON response is an error.
func (p *OneSignalProvider) Send(ctx context.Context, n *Notification) (*SendResult, error) {
	body, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("read provider response: %w", err),
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return nil, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode provider response: %w", err),
		}
	}

	return &SendResult{StatusCode: resp.StatusCode, Body: compact.Bytes()}, nil
}

// compile-time check that OneSignalProvider implements Provider
var _ Provider = (*OneSignalProvider)(nil)
