package provider

import (
	"context"
	"encoding/json"
)

// Notification is the JSON body posted to the OneSignal notifications API.
type Notification struct {
	AppID            string        `json:"app_id"`
	IncludeAliases   Aliases       `json:"include_aliases"`
	TargetChannel    string        `json:"target_channel"`
	Headings         LocalizedText `json:"headings"`
	Contents         LocalizedText `json:"contents"`
	AndroidGroup     string        `json:"android_group"`
	Priority         int           `json:"priority"`
	AndroidChannelID string        `json:"android_channel_id"`
	AndroidSound     string        `json:"android_sound"`
}

// Aliases targets recipients by application-defined id rather than by
// OneSignal subscription id.
type Aliases struct {
	ExternalID []string `json:"external_id"`
}

// LocalizedText is a per-language string map; only English is sent.
type LocalizedText struct {
	EN string `json:"en"`
}

// SendResult is what came back from the provider. Body is always valid,
// compacted JSON; StatusCode is informational and may be non-2xx.
type SendResult struct {
	StatusCode int
	Body       json.RawMessage
}

// Provider abstracts delivery to an external push service.
// Mocking this interface in tests gives full control over provider behaviour
// without making real HTTP calls.
type Provider interface {
	Send(ctx context.Context, n *Notification) (*SendResult, error)
}
