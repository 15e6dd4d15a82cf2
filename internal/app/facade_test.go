package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/printline/printdesk/internal/config"
	domainErrors "github.com/printline/printdesk/internal/domain/errors"
	"github.com/printline/printdesk/internal/domain/model"
	"github.com/printline/printdesk/internal/telemetry"
	testhelpers "github.com/printline/printdesk/internal/test"
	"github.com/printline/printdesk/internal/usecase"
)

type healthCheckerStub struct {
	err error
}

func (s healthCheckerStub) HealthCheck(context.Context) error {
	return s.err
}

func newTestFacade(t *testing.T, seed ...model.Order) (*DashboardFacade, *testhelpers.OrderRepositoryStub, *testhelpers.ChallanRepositoryStub) {
	t.Helper()
	orderRepo := &testhelpers.OrderRepositoryStub{Orders: seed}
	challanRepo := &testhelpers.ChallanRepositoryStub{}
	cfg := &config.Config{BusinessName: "PrintLine Studio", DefaultProduct: "Photo Album"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := usecase.NewOrderStore(orderRepo, cfg, telemetry.New(), logger)
	challans := usecase.NewChallanService(store, challanRepo, cfg, telemetry.New(), logger)
	facade := NewDashboardFacade(store, challans, healthCheckerStub{})
	if err := facade.LoadOrders(context.Background()); err != nil {
		t.Fatalf("failed to load orders: %v", err)
	}
	return facade, orderRepo, challanRepo
}

func seedOrder(id, client string) model.Order {
	at := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	return model.Order{
		ID:           id,
		Client:       client,
		Manufacturer: "M1",
		Product:      "Photo Album",
		Quantity:     50,
		Status:       model.StatusOrderReceived,
		Date:         at,
		Timeline:     []model.TimelineEntry{{Status: model.StatusOrderReceived, At: at}},
	}
}

func TestDashboardFacadeOrdersSearch(t *testing.T) {
	facade, _, _ := newTestFacade(t, seedOrder("ORD001", "Acme"), seedOrder("ORD002", "Beta Corp"))

	if got := facade.Orders(""); len(got) != 2 {
		t.Fatalf("expected full working set, got %d orders", len(got))
	}
	matches := facade.Orders("beta")
	if len(matches) != 1 || matches[0].ID != "ORD002" {
		t.Fatalf("expected single match for beta, got %+v", matches)
	}
}

func TestDashboardFacadeOrderLifecycle(t *testing.T) {
	facade, orderRepo, _ := newTestFacade(t)

	created, err := facade.CreateOrder(context.Background(), usecase.CreateOrder{Client: "Acme", Manufacturer: "M1", Quantity: 50})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != model.StatusOrderReceived || len(created.Timeline) != 1 {
		t.Fatalf("unexpected new order %+v", created)
	}

	advanced, moved, err := facade.AdvanceOrder(context.Background(), created.ID)
	if err != nil || !moved {
		t.Fatalf("advance failed: moved=%v err=%v", moved, err)
	}
	if advanced.Status != model.StatusRetrievedFromMaker {
		t.Fatalf("expected next stage, got %q", advanced.Status)
	}

	reverted, moved, err := facade.RevertOrder(context.Background(), created.ID)
	if err != nil || !moved {
		t.Fatalf("revert failed: moved=%v err=%v", moved, err)
	}
	if reverted.Status != model.StatusOrderReceived || len(reverted.Timeline) != 1 {
		t.Fatalf("expected revert to initial stage, got %+v", reverted)
	}

	if err := facade.DeleteOrder(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := facade.Order(created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if len(orderRepo.Orders) != 0 {
		t.Fatalf("expected repository to be empty, got %d orders", len(orderRepo.Orders))
	}
}

func TestDashboardFacadeChallanFlow(t *testing.T) {
	facade, _, challanRepo := newTestFacade(t, seedOrder("ORD001", "Acme"))

	facade.UpdateChallanDraft(usecase.ChallanDraft{Type: model.ChallanReceiving, OrderIDs: []string{"ORD001"}})
	if draft := facade.ChallanDraft(); draft.Type != model.ChallanReceiving {
		t.Fatalf("expected stored draft, got %+v", draft)
	}

	doc, err := facade.GenerateChallan(context.Background(), model.ChallanReceiving, []string{"ORD001"}, nil)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(doc.Rows) != 1 || doc.Rows[0].OrderID != "ORD001" {
		t.Fatalf("unexpected document rows %+v", doc.Rows)
	}

	if draft := facade.ChallanDraft(); draft.Type != "" || len(draft.OrderIDs) != 0 {
		t.Fatalf("expected draft to be cleared after generation, got %+v", draft)
	}

	logged, err := facade.Challans(context.Background())
	if err != nil {
		t.Fatalf("challan log failed: %v", err)
	}
	if len(logged) != 1 || len(challanRepo.Logged) != 1 {
		t.Fatalf("expected one logged challan, got %d", len(logged))
	}
}

func TestDashboardFacadeHealthCheck(t *testing.T) {
	facade, _, _ := newTestFacade(t)
	if err := facade.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected health error: %v", err)
	}

	down := NewDashboardFacade(nil, nil, healthCheckerStub{err: errors.New("connection refused")})
	if err := down.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected health check to propagate the error")
	}
}
