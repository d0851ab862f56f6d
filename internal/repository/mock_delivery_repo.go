package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Mr-Jayed/TracON-Project1/internal/domain"
)

// MockDeliveryRepository is a hand-written, in-memory DeliveryRepository
// used in unit tests.
type MockDeliveryRepository struct {
	mu         sync.RWMutex
	deliveries []*domain.Delivery

	// Optional error override, set in tests to simulate a database outage.
	RecordErr error
}

func NewMockDeliveryRepository() *MockDeliveryRepository {
	return &MockDeliveryRepository{}
}

func (m *MockDeliveryRepository) Record(_ context.Context, d *domain.Delivery) error {
	if m.RecordErr != nil {
		return m.RecordErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *d
	m.deliveries = append(m.deliveries, &clone)
	return nil
}

func (m *MockDeliveryRepository) ListByUser(_ context.Context, userID string, limit int) ([]*domain.Delivery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.Delivery
	for _, d := range m.deliveries {
		if d.UserID == userID {
			clone := *d
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// All returns a snapshot of every recorded delivery in insertion order.
func (m *MockDeliveryRepository) All() []*domain.Delivery {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Delivery, len(m.deliveries))
	copy(out, m.deliveries)
	return out
}
