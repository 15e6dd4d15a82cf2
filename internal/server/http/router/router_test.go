package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/printline/printdesk/internal/domain/model"
	"github.com/printline/printdesk/internal/server/http/handlers"
	"github.com/printline/printdesk/internal/telemetry"
	testhelpers "github.com/printline/printdesk/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.DashboardFacadeStub{
		OrdersFn: func(string) []model.Order {
			return []model.Order{*testhelpers.NewOrder("ORD001")}
		},
	}
	engine := Setup(facade, logger, telemetry.New())

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/challans", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for challan log, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for healthz, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for metrics, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "printdesk") {
		t.Fatalf("expected exposition to carry printdesk metrics, got %q", resp.Body.String())
	}
}

var _ handlers.DashboardFacade = (*testhelpers.DashboardFacadeStub)(nil)
