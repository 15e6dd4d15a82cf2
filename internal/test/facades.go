package test

import (
	"context"
	"time"

	"github.com/printline/printdesk/internal/domain/model"
	"github.com/printline/printdesk/internal/usecase"
)

// DashboardFacadeStub provides controllable behaviour for handler tests.
// Unset functions fall back to benign defaults.
type DashboardFacadeStub struct {
	OrdersFn      func(string) []model.Order
	OrderFn       func(string) (*model.Order, error)
	CreateFn      func(context.Context, usecase.CreateOrder) (*model.Order, error)
	AdvanceFn     func(context.Context, string) (*model.Order, bool, error)
	RevertFn      func(context.Context, string) (*model.Order, bool, error)
	SetStatusFn   func(context.Context, string, model.OrderStatus) (*model.Order, error)
	EditFn        func(context.Context, string, usecase.EditOrder) (*model.Order, error)
	DeleteFn      func(context.Context, string) error
	GenerateFn    func(context.Context, model.ChallanType, []string, map[string]int) (*model.ChallanDocument, error)
	DraftFn       func() usecase.ChallanDraft
	UpdateDraftFn func(usecase.ChallanDraft)
	ClearDraftFn  func()
	ChallansFn    func(context.Context) ([]model.Challan, error)
	HealthFn      func(context.Context) error
}

// NewOrder builds a freshly received order with a single timeline entry,
// suitable as a baseline fixture.
func NewOrder(id string) *model.Order {
	now := time.Unix(0, 0).UTC()
	return &model.Order{
		ID:           id,
		Client:       "Acme",
		Manufacturer: "M1",
		Product:      "Photo Album",
		Quantity:     50,
		Status:       model.StatusOrderReceived,
		Date:         now,
		Timeline:     []model.TimelineEntry{{Status: model.StatusOrderReceived, At: now}},
	}
}

func (s DashboardFacadeStub) Orders(term string) []model.Order {
	if s.OrdersFn != nil {
		return s.OrdersFn(term)
	}
	return []model.Order{*NewOrder("ORD001")}
}

func (s DashboardFacadeStub) Order(id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(id)
	}
	return NewOrder(id), nil
}

func (s DashboardFacadeStub) CreateOrder(ctx context.Context, in usecase.CreateOrder) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	order := NewOrder("ORD001")
	order.Client = in.Client
	order.Manufacturer = in.Manufacturer
	order.Quantity = in.Quantity
	return order, nil
}

func (s DashboardFacadeStub) AdvanceOrder(ctx context.Context, id string) (*model.Order, bool, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, id)
	}
	order := NewOrder(id)
	order.Status = model.StatusRetrievedFromMaker
	order.Timeline = append(order.Timeline, model.TimelineEntry{Status: order.Status, At: time.Unix(0, 0).UTC()})
	return order, true, nil
}

func (s DashboardFacadeStub) RevertOrder(ctx context.Context, id string) (*model.Order, bool, error) {
	if s.RevertFn != nil {
		return s.RevertFn(ctx, id)
	}
	return NewOrder(id), false, nil
}

func (s DashboardFacadeStub) SetOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	order := NewOrder(id)
	order.Status = status
	order.Timeline = append(order.Timeline, model.TimelineEntry{Status: status, At: time.Unix(0, 0).UTC()})
	return order, nil
}

func (s DashboardFacadeStub) EditOrder(ctx context.Context, id string, patch usecase.EditOrder) (*model.Order, error) {
	if s.EditFn != nil {
		return s.EditFn(ctx, id, patch)
	}
	return NewOrder(id), nil
}

func (s DashboardFacadeStub) DeleteOrder(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s DashboardFacadeStub) GenerateChallan(ctx context.Context, typ model.ChallanType, orderIDs []string, photos map[string]int) (*model.ChallanDocument, error) {
	if s.GenerateFn != nil {
		return s.GenerateFn(ctx, typ, orderIDs, photos)
	}
	return &model.ChallanDocument{
		Challan:      model.Challan{ID: "challan-1", Type: typ, OrderIDs: orderIDs, GeneratedAt: time.Unix(0, 0).UTC()},
		BusinessName: "PrintLine Studio",
		Rows:         []model.ChallanRow{{OrderID: "ORD001", Client: "Acme", Manufacturer: "M1", Product: "Photo Album", Quantity: 50}},
	}, nil
}

func (s DashboardFacadeStub) ChallanDraft() usecase.ChallanDraft {
	if s.DraftFn != nil {
		return s.DraftFn()
	}
	return usecase.ChallanDraft{}
}

func (s DashboardFacadeStub) UpdateChallanDraft(draft usecase.ChallanDraft) {
	if s.UpdateDraftFn != nil {
		s.UpdateDraftFn(draft)
	}
}

func (s DashboardFacadeStub) ClearChallanDraft() {
	if s.ClearDraftFn != nil {
		s.ClearDraftFn()
	}
}

func (s DashboardFacadeStub) Challans(ctx context.Context) ([]model.Challan, error) {
	if s.ChallansFn != nil {
		return s.ChallansFn(ctx)
	}
	return []model.Challan{{ID: "challan-1", Type: model.ChallanReceiving, OrderIDs: []string{"ORD001"}}}, nil
}

func (s DashboardFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}
