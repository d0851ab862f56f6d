package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mr-Jayed/TracON-Project1/internal/domain"
)

type pgDeliveryRepository struct {
	pool *pgxpool.Pool
}

// NewPgDeliveryRepository returns a DeliveryRepository backed by PostgreSQL.
func NewPgDeliveryRepository(pool *pgxpool.Pool) DeliveryRepository {
	return &pgDeliveryRepository{pool: pool}
}

func (r *pgDeliveryRepository) Record(ctx context.Context, d *domain.Delivery) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO alarm_deliveries
			(id, user_id, android_group, provider_status, provider_notification_id, error_message, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		d.ID, d.UserID, d.Group, d.ProviderStatus, d.ProviderID, d.ErrorMessage, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

func (r *pgDeliveryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Delivery, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, android_group, provider_status,
		       provider_notification_id, error_message, created_at
		FROM alarm_deliveries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []*domain.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}

func scanDelivery(row pgx.Row) (*domain.Delivery, error) {
	var d domain.Delivery
	if err := row.Scan(
		&d.ID, &d.UserID, &d.Group, &d.ProviderStatus,
		&d.ProviderID, &d.ErrorMessage, &d.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan delivery: %w", err)
	}
	return &d, nil
}
