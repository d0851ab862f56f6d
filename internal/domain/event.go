package domain

import "encoding/json"

// InboundEvent is the database-trigger envelope posted to the relay.
// Every field is kept raw: only record.user_id drives behavior, so an
// unexpected shape anywhere else must not reject the event.
type InboundEvent struct {
	Type   json.RawMessage `json:"type,omitempty"`
	Table  json.RawMessage `json:"table,omitempty"`
	Schema json.RawMessage `json:"schema,omitempty"`
	Record json.RawMessage `json:"record,omitempty"`
}

// Record is the row that fired the trigger. Any column other than user_id
// is ignored.
type Record struct {
	UserID any `json:"user_id"`
}

// NewInboundEvent wraps rec as the record of an event.
func NewInboundEvent(rec Record) *InboundEvent {
	raw, _ := json.Marshal(rec)
	return &InboundEvent{Record: raw}
}

// UserID returns the recipient's external id.
// Only a non-empty JSON string counts; a missing or non-object record, and a
// user_id that is null, false, 0, "" or any non-string value, are all
// treated as absent.
func (e *InboundEvent) UserID() (string, error) {
	if e == nil || len(e.Record) == 0 {
		return "", ErrMissingUserID
	}
	var rec Record
	if err := json.Unmarshal(e.Record, &rec); err != nil {
		return "", ErrMissingUserID
	}
	id, ok := rec.UserID.(string)
	if !ok || id == "" {
		return "", ErrMissingUserID
	}
	return id, nil
}

// EventType returns the trigger operation (INSERT, UPDATE, ...) when it is a string.
func (e *InboundEvent) EventType() string { return stringValue(e.Type) }

// TableName returns the source table when it is a string.
func (e *InboundEvent) TableName() string { return stringValue(e.Table) }

func stringValue(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
