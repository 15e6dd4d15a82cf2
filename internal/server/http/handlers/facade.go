package handlers

import (
	"context"

	"github.com/printline/printdesk/internal/domain/model"
	"github.com/printline/printdesk/internal/usecase"
)

// OrderFacade encapsulates order store operations exposed via HTTP.
type OrderFacade interface {
	Orders(term string) []model.Order
	Order(id string) (*model.Order, error)
	CreateOrder(ctx context.Context, in usecase.CreateOrder) (*model.Order, error)
	AdvanceOrder(ctx context.Context, id string) (*model.Order, bool, error)
	RevertOrder(ctx context.Context, id string) (*model.Order, bool, error)
	SetOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	EditOrder(ctx context.Context, id string, patch usecase.EditOrder) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// ChallanFacade provides challan generation and selection management.
type ChallanFacade interface {
	GenerateChallan(ctx context.Context, typ model.ChallanType, orderIDs []string, photos map[string]int) (*model.ChallanDocument, error)
	ChallanDraft() usecase.ChallanDraft
	UpdateChallanDraft(draft usecase.ChallanDraft)
	ClearChallanDraft()
	Challans(ctx context.Context) ([]model.Challan, error)
}

// HealthFacade reports backing-store connectivity.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// DashboardFacade aggregates the full set of operations used across handlers.
type DashboardFacade interface {
	OrderFacade
	ChallanFacade
	HealthFacade
}
