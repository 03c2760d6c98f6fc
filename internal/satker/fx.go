package satker

import (
	"github.com/tirtadata/tirtabill/internal/satker/repository"
	"github.com/tirtadata/tirtabill/internal/satker/service"
	"go.uber.org/fx"
)

var Module = fx.Module("satker.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
