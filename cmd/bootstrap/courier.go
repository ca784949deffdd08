package bootstrap

import (
	"log/slog"

	"courier-admin/internal/metrics"
	"courier-admin/internal/pkg/clock"
	"courier-admin/internal/pkg/config"
	"courier-admin/internal/usecase"
	"courier-admin/pkg/courier"

	"go.uber.org/fx"
)

var CourierModule = fx.Module("courier",
	fx.Provide(
		fx.Annotate(
			NewCourierClient,
			fx.As(new(usecase.CourierClient)),
		),
	),
	fx.Invoke(metrics.Register),
)

func NewCourierClient(cfg config.Config, logger *slog.Logger, clk clock.Clock) *courier.Client {
	return courier.New(courier.Config{
		ClientID:     cfg.Courier.ClientID,
		ClientSecret: cfg.Courier.ClientSecret,
		AccountID:    cfg.Courier.AccountID,
		BaseURL:      cfg.Courier.BaseURL,
		AuthURL:      cfg.Courier.AuthURL,
		UseMock:      cfg.Courier.UseMock,
	}, logger, clk)
}
