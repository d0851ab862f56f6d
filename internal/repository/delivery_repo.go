package repository

import (
	"context"

	"github.com/Mr-Jayed/TracON-Project1/internal/domain"
)

// DeliveryRepository persists the audit trail of relayed alarms.
// The pgx implementation is in pg_delivery_repo.go; NopDeliveryRepository is
// used when no database is configured, and tests use MockDeliveryRepository.
type DeliveryRepository interface {
	Record(ctx context.Context, d *domain.Delivery) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Delivery, error)
}

// NopDeliveryRepository discards every delivery.
type NopDeliveryRepository struct{}

func (NopDeliveryRepository) Record(context.Context, *domain.Delivery) error { return nil }

func (NopDeliveryRepository) ListByUser(context.Context, string, int) ([]*domain.Delivery, error) {
	return nil, domain.ErrNotFound
}
