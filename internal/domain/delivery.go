package domain

import "time"

// Delivery is the audit row written for every relay that reached the provider.
type Delivery struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Group          string    `json:"android_group"`
	ProviderStatus int       `json:"provider_status"`
	ProviderID     *string   `json:"provider_notification_id,omitempty"`
	ErrorMessage   *string   `json:"error_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
