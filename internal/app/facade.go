package app

import (
	"context"

	"github.com/printline/printdesk/internal/domain/model"
	"github.com/printline/printdesk/internal/usecase"
)

// HealthChecker reports backing-store connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// DashboardFacade aggregates the order store and challan generator behind a
// single surface consumed by the HTTP handlers.
type DashboardFacade struct {
	orders   *usecase.OrderStore
	challans *usecase.ChallanService
	health   HealthChecker
}

// NewDashboardFacade constructs DashboardFacade.
func NewDashboardFacade(orders *usecase.OrderStore, challans *usecase.ChallanService, health HealthChecker) *DashboardFacade {
	return &DashboardFacade{orders: orders, challans: challans, health: health}
}

// LoadOrders populates the working set from persistent storage.
func (f *DashboardFacade) LoadOrders(ctx context.Context) error {
	return f.orders.Load(ctx)
}

// Orders returns the working set filtered by an optional search term.
func (f *DashboardFacade) Orders(term string) []model.Order {
	if term == "" {
		return f.orders.List()
	}
	return f.orders.Search(term)
}

func (f *DashboardFacade) Order(id string) (*model.Order, error) {
	return f.orders.Get(id)
}

func (f *DashboardFacade) CreateOrder(ctx context.Context, in usecase.CreateOrder) (*model.Order, error) {
	return f.orders.Create(ctx, in)
}

func (f *DashboardFacade) AdvanceOrder(ctx context.Context, id string) (*model.Order, bool, error) {
	return f.orders.Advance(ctx, id)
}

func (f *DashboardFacade) RevertOrder(ctx context.Context, id string) (*model.Order, bool, error) {
	return f.orders.Revert(ctx, id)
}

func (f *DashboardFacade) SetOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return f.orders.SetStatus(ctx, id, status)
}

func (f *DashboardFacade) EditOrder(ctx context.Context, id string, patch usecase.EditOrder) (*model.Order, error) {
	return f.orders.Edit(ctx, id, patch)
}

func (f *DashboardFacade) DeleteOrder(ctx context.Context, id string) error {
	return f.orders.Delete(ctx, id)
}

func (f *DashboardFacade) GenerateChallan(ctx context.Context, typ model.ChallanType, orderIDs []string, photos map[string]int) (*model.ChallanDocument, error) {
	return f.challans.Generate(ctx, typ, orderIDs, photos)
}

func (f *DashboardFacade) ChallanDraft() usecase.ChallanDraft {
	return f.challans.Draft()
}

func (f *DashboardFacade) UpdateChallanDraft(draft usecase.ChallanDraft) {
	f.challans.UpdateDraft(draft)
}

func (f *DashboardFacade) ClearChallanDraft() {
	f.challans.ClearDraft()
}

func (f *DashboardFacade) Challans(ctx context.Context) ([]model.Challan, error) {
	return f.challans.History(ctx)
}

func (f *DashboardFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
