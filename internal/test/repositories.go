package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/printline/printdesk/internal/domain/model"
)

// OrderRepositoryStub is an in-memory stand-in for the persistent order
// collection.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders []model.Order
	seq    int64

	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
	NextIDErr error
}

// List returns the stored orders.
func (s *OrderRepositoryStub) List(context.Context) ([]model.Order, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, len(s.Orders))
	for i := range s.Orders {
		result[i] = s.Orders[i].Clone()
	}
	return result, nil
}

// Create appends the order.
func (s *OrderRepositoryStub) Create(_ context.Context, order model.Order) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Orders = append(s.Orders, order.Clone())
	return nil
}

// Update replaces the stored order with the same id.
func (s *OrderRepositoryStub) Update(_ context.Context, order model.Order) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		if s.Orders[i].ID == order.ID {
			s.Orders[i] = order.Clone()
			break
		}
	}
	return nil
}

// Delete removes the order when present.
func (s *OrderRepositoryStub) Delete(_ context.Context, id string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			break
		}
	}
	return nil
}

// NextID issues sequential ORD tokens.
func (s *OrderRepositoryStub) NextID(context.Context) (string, error) {
	if s.NextIDErr != nil {
		return "", s.NextIDErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("ORD%03d", s.seq), nil
}

// ChallanRepositoryStub records challan log writes in memory.
type ChallanRepositoryStub struct {
	mu      sync.Mutex
	Logged  []model.Challan
	LogErr  error
	ListErr error
}

// Log stores the challan record.
func (s *ChallanRepositoryStub) Log(_ context.Context, challan model.Challan) error {
	if s.LogErr != nil {
		return s.LogErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Logged = append(s.Logged, challan)
	return nil
}

// List returns the stored challans.
func (s *ChallanRepositoryStub) List(context.Context) ([]model.Challan, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Challan, len(s.Logged))
	copy(result, s.Logged)
	return result, nil
}
