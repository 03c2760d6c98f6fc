package service

import (
	"context"

	"github.com/tirtadata/tirtabill/internal/idcodec"
	satkerdomain "github.com/tirtadata/tirtabill/internal/satker/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	Codec *idcodec.Codec
	Repo  satkerdomain.Repository
}

type Service struct {
	log   *zap.Logger
	codec *idcodec.Codec
	repo  satkerdomain.Repository
}

func New(p Params) satkerdomain.Service {
	return &Service{
		log:   p.Log.Named("satker.service"),
		codec: p.Codec,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]satkerdomain.Response, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]satkerdomain.Response, 0, len(rows))
	for _, row := range rows {
		encoded, err := s.codec.Encode(row.ID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, satkerdomain.Response{ID: encoded, Nama: row.Nama})
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*satkerdomain.Satker, error) {
	if id == 0 {
		return nil, satkerdomain.ErrNotFound
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, satkerdomain.ErrNotFound
	}
	return row, nil
}
