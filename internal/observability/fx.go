package observability

import (
	"github.com/tirtadata/tirtabill/internal/observability/metrics"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(metrics.NewHTTP),
)
