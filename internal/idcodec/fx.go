package idcodec

import (
	"github.com/tirtadata/tirtabill/internal/config"
	"go.uber.org/fx"
)

func NewFromConfig(cfg config.Config) (*Codec, error) {
	return New(cfg.SqidsAlphabet, uint8(cfg.SqidsMinLength))
}

// Module provides the opaque id codec shared by all response builders.
var Module = fx.Module("idcodec",
	fx.Provide(NewFromConfig),
)
