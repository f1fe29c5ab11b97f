package bootstrap

import (
	"spot-booking/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		metrics.New,
	),
)
