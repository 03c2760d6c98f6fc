package service

import (
	"context"
	"strings"

	accountdomain "github.com/tirtadata/tirtabill/internal/account/domain"
	"github.com/tirtadata/tirtabill/internal/idcodec"
	satkerdomain "github.com/tirtadata/tirtabill/internal/satker/domain"
	"github.com/tirtadata/tirtabill/pkg/db"
	"github.com/tirtadata/tirtabill/pkg/pagination"
	"github.com/tirtadata/tirtabill/pkg/tabular"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Codec     *idcodec.Codec
	Repo      accountdomain.Repository
	SatkerSvc satkerdomain.Service
}

type Service struct {
	log       *zap.Logger
	codec     *idcodec.Codec
	repo      accountdomain.Repository
	satkerSvc satkerdomain.Service
}

func New(p Params) accountdomain.Service {
	return &Service{
		log:       p.Log.Named("account.service"),
		codec:     p.Codec,
		repo:      p.Repo,
		satkerSvc: p.SatkerSvc,
	}
}

func (s *Service) List(ctx context.Context, req accountdomain.ListRequest) (pagination.Page[accountdomain.Row], error) {
	var zero pagination.Page[accountdomain.Row]

	params := pagination.Params{Page: req.Page, Limit: req.Limit}
	if err := params.Validate(); err != nil {
		return zero, err
	}

	orders, err := pagination.ParseSort(req.Sort, accountdomain.SortableColumns)
	if err != nil {
		return zero, err
	}

	filter := accountdomain.ListFilter{
		Nosamw:  strings.TrimSpace(req.Nosamw),
		Nama:    strings.TrimSpace(req.Nama),
		IsAktif: req.IsAktif,
	}
	// For listing, an unresolvable satker id simply drops the filter, the
	// way a cleared frontend selector sends a stale token.
	if name, err := s.satkerName(ctx, req.SatkerID); err == nil {
		filter.SatkerName = name
	}

	rows, total, err := s.repo.List(ctx, filter, orders, params)
	if err != nil {
		return zero, err
	}
	return pagination.NewPage(rows, total, params), nil
}

func (s *Service) Get(ctx context.Context, nosamw string) (*accountdomain.MasterAccount, error) {
	row, err := s.repo.FindByNosamw(ctx, strings.TrimSpace(nosamw))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, accountdomain.ErrNotFound
	}
	return row, nil
}

func (s *Service) Create(ctx context.Context, req accountdomain.UpsertRequest) (*accountdomain.MasterAccount, error) {
	nosamw := strings.TrimSpace(req.Nosamw)
	if nosamw == "" {
		return nil, accountdomain.ErrInvalidNosamw
	}

	existing, err := s.repo.FindByNosamw(ctx, nosamw)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, accountdomain.ErrExists
	}

	account := &accountdomain.MasterAccount{
		Nosamw:  nosamw,
		Nama:    strings.TrimSpace(req.Nama),
		Kotama:  strings.TrimSpace(req.Kotama),
		Satker:  strings.TrimSpace(req.Satker),
		IsAktif: req.IsAktif,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		// The primary key closes the find-then-create race.
		if db.IsDuplicateKeyErr(err) {
			return nil, accountdomain.ErrExists
		}
		return nil, err
	}
	return account, nil
}

func (s *Service) Update(ctx context.Context, nosamw string, req accountdomain.UpsertRequest) (*accountdomain.MasterAccount, error) {
	account, err := s.Get(ctx, nosamw)
	if err != nil {
		return nil, err
	}

	account.Nama = strings.TrimSpace(req.Nama)
	account.Kotama = strings.TrimSpace(req.Kotama)
	account.Satker = strings.TrimSpace(req.Satker)
	account.IsAktif = req.IsAktif

	if err := s.repo.Save(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) Delete(ctx context.Context, nosamw string) error {
	if _, err := s.Get(ctx, nosamw); err != nil {
		return err
	}
	return s.repo.Delete(ctx, strings.TrimSpace(nosamw))
}

func (s *Service) ExportRoster(ctx context.Context, req accountdomain.ExportRequest) (*tabular.Table, error) {
	rows, err := s.exportRows(ctx, req)
	if err != nil {
		return nil, err
	}

	table := &tabular.Table{
		Name:   "master_tni",
		Header: []string{"urut", "nosamw", "nama", "kotama", "satker", "is_aktif", "urjlw"},
		Rows:   make([][]any, 0, len(rows)),
	}
	for i, row := range rows {
		table.Rows = append(table.Rows, []any{
			i + 1, row.Nosamw, row.Nama, row.Kotama, row.Satker, row.IsAktif, row.Urjlw,
		})
	}
	return table, nil
}

func (s *Service) ExportSummary(ctx context.Context, req accountdomain.ExportRequest) (*tabular.Table, error) {
	rows, err := s.exportRows(ctx, req)
	if err != nil {
		return nil, err
	}

	table := &tabular.Table{
		Name:   "master_tni",
		Header: []string{"No Sambungan", "Satker", "Golongan"},
		Rows:   make([][]any, 0, len(rows)),
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []any{row.Nosamw, row.Satker, row.Urjlw})
	}
	return table, nil
}

func (s *Service) exportRows(ctx context.Context, req accountdomain.ExportRequest) ([]accountdomain.Row, error) {
	filter := accountdomain.ListFilter{
		Nosamw:  strings.TrimSpace(req.Nosamw),
		Nama:    strings.TrimSpace(req.Nama),
		IsAktif: req.IsAktif,
	}

	// Unlike listing, an export that names a satker must resolve it: a
	// silently dropped filter would hand back the wrong roster.
	if strings.TrimSpace(req.SatkerID) != "" {
		name, err := s.satkerName(ctx, req.SatkerID)
		if err != nil {
			return nil, err
		}
		filter.SatkerName = name
	}

	return s.repo.ListAll(ctx, filter)
}

func (s *Service) satkerName(ctx context.Context, opaqueID string) (string, error) {
	opaqueID = strings.TrimSpace(opaqueID)
	if opaqueID == "" {
		return "", nil
	}
	satker, err := s.satkerSvc.Get(ctx, s.codec.Decode(opaqueID))
	if err != nil {
		return "", err
	}
	return satker.Nama, nil
}
