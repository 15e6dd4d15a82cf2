package repository

import (
	"context"

	"github.com/printline/printdesk/internal/domain/model"
)

// OrderRepository describes the persistent order collection. The store only
// needs list-all plus per-document create/update/delete; filtering happens
// in memory.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) error
	Update(ctx context.Context, order model.Order) error
	Delete(ctx context.Context, id string) error
	NextID(ctx context.Context) (string, error)
}

// ChallanRepository records generated challan documents.
type ChallanRepository interface {
	Log(ctx context.Context, challan model.Challan) error
	List(ctx context.Context) ([]model.Challan, error)
}
