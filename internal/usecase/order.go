package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/printline/printdesk/internal/config"
	domainErrors "github.com/printline/printdesk/internal/domain/errors"
	"github.com/printline/printdesk/internal/domain/model"
	"github.com/printline/printdesk/internal/domain/repository"
	"github.com/printline/printdesk/internal/telemetry"
)

// CreateOrder carries the caller-supplied fields of a new order.
type CreateOrder struct {
	Client       string
	Manufacturer string
	Quantity     int
}

// EditOrder is a sparse field override; nil fields are left untouched.
type EditOrder struct {
	Client       *string
	Manufacturer *string
	Product      *string
	Quantity     *int
}

// OrderStore owns the in-memory working set of orders and mediates all
// mutations. The working set is loaded once from the repository at startup;
// every mutation persists first and only then updates the mirror, so a
// failed round trip leaves the mirror untouched. Mutations serialize on the
// store lock.
type OrderStore struct {
	repo           repository.OrderRepository
	metrics        *telemetry.Metrics
	logger         *slog.Logger
	defaultProduct string
	now            func() time.Time

	mu     sync.RWMutex
	orders []model.Order
}

// NewOrderStore constructs the store. Load must be called before serving.
func NewOrderStore(repo repository.OrderRepository, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) *OrderStore {
	return &OrderStore{
		repo:           repo,
		metrics:        metrics,
		logger:         logger,
		defaultProduct: cfg.DefaultProduct,
		now:            time.Now,
	}
}

// Load replaces the working set with the repository contents.
func (s *OrderStore) Load(ctx context.Context) error {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()

	s.logger.Info("order working set loaded", slog.Int("orders", len(orders)))
	return nil
}

// List returns a copy of the current working set.
func (s *OrderStore) List() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.orders)
}

// Search returns the orders whose id, client, manufacturer, or date contain
// the term, case-insensitively. An empty term matches everything.
func (s *OrderStore) Search(term string) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []model.Order
	for _, order := range s.orders {
		if order.Matches(term) {
			matched = append(matched, order.Clone())
		}
	}
	return matched
}

// Get returns one order by id.
func (s *OrderStore) Get(id string) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.find(id)
	if idx < 0 {
		return nil, domainErrors.ErrNotFound
	}
	order := s.orders[idx].Clone()
	return &order, nil
}

// Create persists a new order and prepends it to the working set. The order
// starts at the first pipeline stage with a single timeline entry.
func (s *OrderStore) Create(ctx context.Context, in CreateOrder) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := model.Order{
		ID:           id,
		Client:       in.Client,
		Manufacturer: in.Manufacturer,
		Product:      s.defaultProduct,
		Quantity:     in.Quantity,
		Status:       model.InitialStatus(),
		Date:         now,
		Timeline:     []model.TimelineEntry{{Status: model.InitialStatus(), At: now}},
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error("order create failed", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	s.orders = append([]model.Order{order}, s.orders...)
	s.metrics.OrdersCreated.Inc()

	created := order.Clone()
	return &created, nil
}

// Advance moves the order exactly one stage forward and appends a timeline
// entry. At the terminal stage it is a no-op: the unchanged order is
// returned with false.
func (s *OrderStore) Advance(ctx context.Context, id string) (*model.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.find(id)
	if idx < 0 {
		return nil, false, domainErrors.ErrNotFound
	}

	next, ok := s.orders[idx].Status.Next()
	if !ok {
		unchanged := s.orders[idx].Clone()
		return &unchanged, false, nil
	}

	order, err := s.transition(ctx, idx, next, telemetry.DirectionForward)
	if err != nil {
		return nil, false, err
	}
	return order, true, nil
}

// SetStatus jumps the order to an explicit stage, in either direction, and
// appends a timeline entry. Unlike Revert it never truncates the timeline.
func (s *OrderStore) SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrUnknownStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.find(id)
	if idx < 0 {
		return nil, domainErrors.ErrNotFound
	}

	return s.transition(ctx, idx, status, telemetry.DirectionJump)
}

// Revert undoes the most recent transition: it pops the last timeline entry
// and restores the status recorded before it. An order with only its
// initial entry is left untouched and returned with false.
func (s *OrderStore) Revert(ctx context.Context, id string) (*model.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.find(id)
	if idx < 0 {
		return nil, false, domainErrors.ErrNotFound
	}

	current := s.orders[idx]
	if len(current.Timeline) <= 1 {
		unchanged := current.Clone()
		return &unchanged, false, nil
	}

	updated := current.Clone()
	updated.Timeline = updated.Timeline[:len(updated.Timeline)-1]
	updated.Status = updated.Timeline[len(updated.Timeline)-1].Status

	if err := s.repo.Update(ctx, updated); err != nil {
		s.logger.Error("order revert failed", slog.String("id", id), slog.String("error", err.Error()))
		return nil, false, err
	}

	s.orders[idx] = updated
	s.metrics.StatusTransitions.WithLabelValues(telemetry.DirectionRevert).Inc()

	reverted := updated.Clone()
	return &reverted, true, nil
}

// Edit merges the non-nil fields onto the order, last write wins per field.
// Status and timeline are not editable through this path.
func (s *OrderStore) Edit(ctx context.Context, id string, patch EditOrder) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.find(id)
	if idx < 0 {
		return nil, domainErrors.ErrNotFound
	}

	updated := s.orders[idx].Clone()
	if patch.Client != nil {
		updated.Client = *patch.Client
	}
	if patch.Manufacturer != nil {
		updated.Manufacturer = *patch.Manufacturer
	}
	if patch.Product != nil {
		updated.Product = *patch.Product
	}
	if patch.Quantity != nil {
		updated.Quantity = *patch.Quantity
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		s.logger.Error("order edit failed", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	s.orders[idx] = updated
	edited := updated.Clone()
	return &edited, nil
}

// Delete removes the order from the repository and the working set. The
// repository delete is issued even when the id is absent from the mirror,
// so the operation stays idempotent in effect.
func (s *OrderStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("order delete failed", slog.String("id", id), slog.String("error", err.Error()))
		return err
	}

	if idx := s.find(id); idx >= 0 {
		s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
		s.metrics.OrdersDeleted.Inc()
	}
	return nil
}

// transition persists the order at idx with the new status appended to its
// timeline, then updates the mirror. Callers hold the write lock.
func (s *OrderStore) transition(ctx context.Context, idx int, status model.OrderStatus, direction string) (*model.Order, error) {
	updated := s.orders[idx].Clone()
	updated.Status = status
	updated.Timeline = append(updated.Timeline, model.TimelineEntry{Status: status, At: s.now()})

	if err := s.repo.Update(ctx, updated); err != nil {
		s.logger.Error("status transition failed",
			slog.String("id", updated.ID),
			slog.String("status", string(status)),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.orders[idx] = updated
	s.metrics.StatusTransitions.WithLabelValues(direction).Inc()

	order := updated.Clone()
	return &order, nil
}

// find returns the working-set index for id, or -1. Callers hold the lock.
func (s *OrderStore) find(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(orders []model.Order) []model.Order {
	result := make([]model.Order, len(orders))
	for i := range orders {
		result[i] = orders[i].Clone()
	}
	return result
}
