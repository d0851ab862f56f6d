package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Mr-Jayed/TracON-Project1/internal/domain"
)

func TestInboundEvent_UserID(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{"string user id", `{"record":{"user_id":"u-123"}}`, "u-123", nil},
		{"extra columns ignored", `{"type":"INSERT","table":"vibrations","record":{"id":7,"user_id":"abc"}}`, "abc", nil},
		{"numeric type ignored", `{"type":1,"record":{"user_id":"u-123"}}`, "u-123", nil},
		{"object schema ignored", `{"schema":{"name":"public"},"record":{"user_id":"u-123"}}`, "u-123", nil},
		{"array table ignored", `{"table":["a"],"record":{"user_id":"u-123"}}`, "u-123", nil},
		{"empty record", `{"record":{}}`, "", domain.ErrMissingUserID},
		{"missing record", `{}`, "", domain.ErrMissingUserID},
		{"null record", `{"record":null}`, "", domain.ErrMissingUserID},
		{"string record", `{"record":"not-an-object"}`, "", domain.ErrMissingUserID},
		{"array record", `{"record":[1,2]}`, "", domain.ErrMissingUserID},
		{"number record", `{"record":5}`, "", domain.ErrMissingUserID},
		{"empty string", `{"record":{"user_id":""}}`, "", domain.ErrMissingUserID},
		{"null user id", `{"record":{"user_id":null}}`, "", domain.ErrMissingUserID},
		{"false user id", `{"record":{"user_id":false}}`, "", domain.ErrMissingUserID},
		{"zero user id", `{"record":{"user_id":0}}`, "", domain.ErrMissingUserID},
		{"numeric user id", `{"record":{"user_id":42}}`, "", domain.ErrMissingUserID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ev domain.InboundEvent
			if err := json.Unmarshal([]byte(tc.body), &ev); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got, err := ev.UserID()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected err %v, got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestInboundEvent_UserID_NilEvent(t *testing.T) {
	var ev *domain.InboundEvent
	if _, err := ev.UserID(); err != domain.ErrMissingUserID {
		t.Fatalf("expected ErrMissingUserID, got %v", err)
	}
}

func TestInboundEvent_DescriptiveFields(t *testing.T) {
	var ev domain.InboundEvent
	if err := json.Unmarshal([]byte(`{"type":"INSERT","table":7,"record":{}}`), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.EventType() != "INSERT" {
		t.Fatalf("expected INSERT, got %q", ev.EventType())
	}
	if ev.TableName() != "" {
		t.Fatalf("expected non-string table to be dropped, got %q", ev.TableName())
	}
}

func TestNewInboundEvent(t *testing.T) {
	id, err := domain.NewInboundEvent(domain.Record{UserID: "u-1"}).UserID()
	if err != nil || id != "u-1" {
		t.Fatalf("expected u-1, got %q (%v)", id, err)
	}
}

func TestErrorTypes_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	var te *domain.TransportError
	if !errors.As(error(&domain.TransportError{Err: cause}), &te) {
		t.Fatal("expected TransportError to match errors.As")
	}
	if !errors.Is(&domain.TransportError{Err: cause}, cause) {
		t.Fatal("expected TransportError to unwrap to its cause")
	}
	if got := (&domain.UpstreamError{StatusCode: 502, Err: cause}).Error(); got != cause.Error() {
		t.Fatalf("expected message %q, got %q", cause.Error(), got)
	}
}
