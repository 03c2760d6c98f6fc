package service

import (
	"context"
	"strings"

	billingdomain "github.com/tirtadata/tirtabill/internal/billing/domain"
	"github.com/tirtadata/tirtabill/internal/billing/tariff"
	"github.com/tirtadata/tirtabill/internal/config"
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

	Cfg       config.Config
	Log       *zap.Logger
	Codec     *idcodec.Codec
	Repo      billingdomain.Repository
	RawRepo   billingdomain.RawRepository
	SatkerSvc satkerdomain.Service
}

type Service struct {
	provider  string
	log       *zap.Logger
	codec     *idcodec.Codec
	repo      billingdomain.Repository
	rawRepo   billingdomain.RawRepository
	satkerSvc satkerdomain.Service
}

func New(p Params) billingdomain.Service {
	return &Service{
		provider:  p.Cfg.ProviderName,
		log:       p.Log.Named("billing.service"),
		codec:     p.Codec,
		repo:      p.Repo,
		rawRepo:   p.RawRepo,
		satkerSvc: p.SatkerSvc,
	}
}

func (s *Service) List(ctx context.Context, req billingdomain.ListRequest) (pagination.Page[billingdomain.Response], error) {
	var zero pagination.Page[billingdomain.Response]

	periode := strings.TrimSpace(req.Periode)
	if periode == "" {
		return zero, billingdomain.ErrPeriodeRequired
	}

	params := pagination.Params{Page: req.Page, Limit: req.Limit}
	if err := params.Validate(); err != nil {
		return zero, err
	}

	orders, err := pagination.ParseSort(req.Sort, billingdomain.SortableColumns)
	if err != nil {
		return zero, err
	}

	filter := billingdomain.ListFilter{
		Periode: periode,
		Nosamw:  strings.TrimSpace(req.Nosamw),
		Nama:    strings.TrimSpace(req.Nama),
	}

	rows, total, err := s.repo.List(ctx, filter, orders, params)
	if err != nil {
		return zero, err
	}

	content := make([]billingdomain.Response, 0, len(rows))
	for _, row := range rows {
		resp, err := s.toResponse(row)
		if err != nil {
			return zero, err
		}
		content = append(content, resp)
	}
	return pagination.NewPage(content, total, params), nil
}

func (s *Service) Get(ctx context.Context, opaqueID string) (*billingdomain.Response, error) {
	row, err := s.findByOpaqueID(ctx, opaqueID)
	if err != nil {
		return nil, err
	}
	resp, err := s.toResponse(*row)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, opaqueID string, req billingdomain.UpdateRequest) (*billingdomain.Response, error) {
	row, err := s.findByOpaqueID(ctx, opaqueID)
	if err != nil {
		return nil, err
	}

	row.MetL = req.MetL
	row.MetK = req.MetK
	row.Pakai = req.Pakai
	row.Rata2 = req.Rata2
	row.R1, row.R2, row.R3 = tariff.ComputeFloat(req.Pakai, row.T1, row.T2, row.T3)

	if err := s.repo.UpdateReading(ctx, row); err != nil {
		return nil, err
	}

	s.log.Info("reading updated",
		zap.String("nosamw", row.Nosamw),
		zap.String("periode", row.Periode),
		zap.Float64("pakai", row.Pakai),
	)
	resp, err := s.toResponse(*row)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *Service) Sync(ctx context.Context, periode string) (*billingdomain.SyncResult, error) {
	periode = strings.TrimSpace(periode)
	if periode == "" {
		return nil, billingdomain.ErrPeriodeRequired
	}

	synced, err := s.repo.SyncExists(ctx, periode)
	if err != nil {
		return nil, err
	}
	if synced {
		return nil, billingdomain.ErrAlreadySynced
	}

	records, err := s.rawRepo.JoinForPeriode(ctx, periode, s.provider)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, billingdomain.ErrNoSourceData
	}

	if err := s.repo.SaveSynced(ctx, records, periode); err != nil {
		// A concurrent sync may have won the race on the sync_log key.
		if db.IsDuplicateKeyErr(err) {
			return nil, billingdomain.ErrAlreadySynced
		}
		return nil, err
	}

	s.log.Info("periode synced",
		zap.String("periode", periode),
		zap.Int("total", len(records)),
	)
	return &billingdomain.SyncResult{Periode: periode, Total: len(records)}, nil
}

func (s *Service) ListRaw(ctx context.Context, periode string) ([]billingdomain.RawReading, error) {
	periode = strings.TrimSpace(periode)
	if periode == "" {
		return nil, billingdomain.ErrPeriodeRequired
	}
	return s.rawRepo.ListByPeriode(ctx, periode)
}

func (s *Service) RawDetail(ctx context.Context, nosamw, periode string) (*billingdomain.RawReading, error) {
	row, err := s.rawRepo.FindActive(ctx, strings.TrimSpace(nosamw), strings.TrimSpace(periode))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, billingdomain.ErrNotFound
	}
	return row, nil
}

func (s *Service) ExportDetail(ctx context.Context, req billingdomain.ExportRequest) (*tabular.Table, error) {
	periode := strings.TrimSpace(req.Periode)
	if periode == "" {
		return nil, billingdomain.ErrPeriodeRequired
	}

	satkerID := s.codec.Decode(strings.TrimSpace(req.SatkerID))
	if satkerID == 0 {
		return nil, billingdomain.ErrSatkerRequired
	}
	satker, err := s.satkerSvc.Get(ctx, satkerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindBySatker(ctx, periode, satker.Nama)
	if err != nil {
		return nil, err
	}

	table := &tabular.Table{
		Name: "rekening_tni_" + satker.Nama + "_" + periode,
		Header: []string{
			"PDAM", "Matra/Kesatuan", "Nama Satker", "Nomor Sambungan",
			"Nama", "Alamat", "Periode", "Stan lalu", "Stan kini",
			"Stan Angkat", "Pakai (m3)", "Tariff", "Tagihan", "Denda",
			"Total Tagihan", "Pemeliharaan", "Administrasi", "Kelainan",
		},
		Rows: make([][]any, 0, len(rows)),
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []any{
			row.Pdam,
			row.Matra,
			row.Satker,
			row.Nosamw,
			row.Nama,
			row.Alamat,
			row.Periode,
			int(row.MetL),
			int(row.MetK),
			0,
			int(row.Pakai),
			0,
			int(row.R1 + row.R2 + row.R3 + row.R4),
			int(row.Denda),
			int(row.Dnmet + row.R1 + row.R2 + row.R3 + row.R4 + row.Denda + row.AngSb + row.JasaSb),
			0,
			int(row.Dnmet),
			"",
		})
	}
	return table, nil
}

func (s *Service) findByOpaqueID(ctx context.Context, opaqueID string) (*billingdomain.Record, error) {
	id := s.codec.Decode(strings.TrimSpace(opaqueID))
	if id == 0 {
		return nil, billingdomain.ErrNotFound
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, billingdomain.ErrNotFound
	}
	return row, nil
}

func (s *Service) toResponse(row billingdomain.Record) (billingdomain.Response, error) {
	encoded, err := s.codec.Encode(row.ID)
	if err != nil {
		return billingdomain.Response{}, err
	}
	return billingdomain.Response{ID: encoded, Record: row}, nil
}
