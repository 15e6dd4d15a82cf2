package di

import (
	"go.uber.org/fx"

	"github.com/printline/printdesk/internal/app"
	"github.com/printline/printdesk/internal/config"
	"github.com/printline/printdesk/internal/logger"
	"github.com/printline/printdesk/internal/server/http/handlers"
	"github.com/printline/printdesk/internal/server/http/router"
	"github.com/printline/printdesk/internal/storage/postgres"
	"github.com/printline/printdesk/internal/telemetry"
	"github.com/printline/printdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		telemetry.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(
			func(s *postgres.Storage) app.HealthChecker { return s },
			func(f *app.DashboardFacade) handlers.DashboardFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
