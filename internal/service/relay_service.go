package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mr-Jayed/TracON-Project1/internal/domain"
	"github.com/Mr-Jayed/TracON-Project1/internal/provider"
	"github.com/Mr-Jayed/TracON-Project1/internal/repository"
)

// Relay outcomes reported through MetricHooks.OnOutcome.
const (
	OutcomeSent     = "sent"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Limiter paces provider calls; *ratelimiter.ProviderLimiter satisfies it.
type Limiter interface {
	Wait(ctx context.Context) error
}

// MetricHooks carries the metric callbacks injected by main.
// Either may be nil.
type MetricHooks struct {
	OnOutcome  func(outcome string)
	OnProvider func(status int, latency time.Duration)
}

// RelayResult is the provider's reply to a relayed alarm.
type RelayResult struct {
	ProviderStatus int
	Body           json.RawMessage
}

// RelayService turns a trigger event into exactly one push notification.
// It holds no per-request state and is safe for concurrent use.
type RelayService struct {
	prov       provider.Provider
	repo       repository.DeliveryRepository
	limiter    Limiter
	tpl        provider.AlarmTemplate
	now        func() time.Time
	logger     *zap.Logger
	onOutcome  func(string)
	onProvider func(int, time.Duration)
}

// Option customises a RelayService.
type Option func(*RelayService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *RelayService) { s.now = now }
}

// WithLimiter throttles provider calls.
func WithLimiter(l Limiter) Option {
	return func(s *RelayService) { s.limiter = l }
}

// WithMetrics installs metric hooks.
func WithMetrics(h MetricHooks) Option {
	return func(s *RelayService) {
		if h.OnOutcome != nil {
			s.onOutcome = h.OnOutcome
		}
		if h.OnProvider != nil {
			s.onProvider = h.OnProvider
		}
	}
}

func NewRelayService(
	prov provider.Provider,
	repo repository.DeliveryRepository,
	tpl provider.AlarmTemplate,
	logger *zap.Logger,
	opts ...Option,
) *RelayService {
	s := &RelayService{
		prov:       prov,
		repo:       repo,
		tpl:        tpl,
		now:        time.Now,
		logger:     logger,
		onOutcome:  func(string) {},
		onProvider: func(int, time.Duration) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Relay validates ev and forwards it to the provider.
//
// A missing user id returns domain.ErrMissingUserID without contacting the
// provider. Otherwise exactly one provider call is made, and its reply is
// returned whatever the provider's status code was.
func (s *RelayService) Relay(ctx context.Context, ev *domain.InboundEvent) (*RelayResult, error) {
	userID, err := ev.UserID()
	if err != nil {
		s.logger.Warn("no user id found in record", eventFields(ev)...)
		s.onOutcome(OutcomeRejected)
		return nil, err
	}

	log := s.logger.With(zap.String("user_id", userID))
	log.Info("alarm triggered", eventFields(ev)...)

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			s.fail(log, err)
			return nil, &domain.TransportError{Err: err}
		}
	}

	n := provider.BuildAlarm(userID, s.now(), s.tpl)

	start := time.Now()
	res, sendErr := s.prov.Send(ctx, n)
	latency := time.Since(start)

	s.record(ctx, log, userID, n.AndroidGroup, res, sendErr)

	if sendErr != nil {
		var upErr *domain.UpstreamError
		if errors.As(sendErr, &upErr) {
			s.onProvider(upErr.StatusCode, latency)
		}
		s.fail(log, sendErr)
		return nil, sendErr
	}

	s.onProvider(res.StatusCode, latency)
	log.Info("provider responded",
		zap.Int("status", res.StatusCode),
		zap.ByteString("body", res.Body),
		zap.String("android_group", n.AndroidGroup),
		zap.Duration("latency", latency),
	)
	s.onOutcome(OutcomeSent)

	return &RelayResult{ProviderStatus: res.StatusCode, Body: res.Body}, nil
}

// Deliveries returns the most recent audit rows for userID.
func (s *RelayService) Deliveries(ctx context.Context, userID string, limit int) ([]*domain.Delivery, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *RelayService) fail(log *zap.Logger, err error) {
	log.Error("alarm relay failed", zap.Error(err))
	s.onOutcome(OutcomeFailed)
}

// record writes the audit row. A storage failure is logged and otherwise
// ignored; it never changes what the caller sees.
func (s *RelayService) record(
	ctx context.Context,
	log *zap.Logger,
	userID, group string,
	res *provider.SendResult,
	sendErr error,
) {
	d := &domain.Delivery{
		ID:        uuid.New().String(),
		UserID:    userID,
		Group:     group,
		CreatedAt: s.now().UTC(),
	}

	if res != nil {
		d.ProviderStatus = res.StatusCode
		d.ProviderID = notificationID(res.Body)
	}
	if sendErr != nil {
		msg := sendErr.Error()
		d.ErrorMessage = &msg
		var upErr *domain.UpstreamError
		if errors.As(sendErr, &upErr) {
			d.ProviderStatus = upErr.StatusCode
		}
	}

	if err := s.repo.Record(ctx, d); err != nil {
		log.Warn("failed to record delivery", zap.Error(err))
	}
}

// notificationID pulls the provider's notification id out of its reply.
// OneSignal answers {"id": "...", ...} on success and omits it on errors.
func notificationID(body json.RawMessage) *string {
	var reply struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &reply); err != nil || reply.ID == "" {
		return nil
	}
	return &reply.ID
}

func eventFields(ev *domain.InboundEvent) []zap.Field {
	if ev == nil {
		return nil
	}
	var fields []zap.Field
	if t := ev.EventType(); t != "" {
		fields = append(fields, zap.String("event_type", t))
	}
	if table := ev.TableName(); table != "" {
		fields = append(fields, zap.String("table", table))
	}
	return fields
}
