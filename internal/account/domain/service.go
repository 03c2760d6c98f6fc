package domain

import (
	"context"
	"errors"

	"github.com/tirtadata/tirtabill/pkg/pagination"
	"github.com/tirtadata/tirtabill/pkg/tabular"
)

type Service interface {
	List(ctx context.Context, req ListRequest) (pagination.Page[Row], error)
	Get(ctx context.Context, nosamw string) (*MasterAccount, error)
	Create(ctx context.Context, req UpsertRequest) (*MasterAccount, error)
	Update(ctx context.Context, nosamw string, req UpsertRequest) (*MasterAccount, error)
	Delete(ctx context.Context, nosamw string) error

	// ExportRoster shapes the full matching set into the spreadsheet roster
	// (running number + all joined columns).
	ExportRoster(ctx context.Context, req ExportRequest) (*tabular.Table, error)
	// ExportSummary shapes the same set into the three-column CSV summary.
	ExportSummary(ctx context.Context, req ExportRequest) (*tabular.Table, error)
}

type ListRequest struct {
	Page   int
	Limit  int
	Sort   []string
	Nosamw string
	Nama   string
	// IsAktif defaults to true at the transport layer.
	IsAktif bool
	// SatkerID is the opaque encoded id; empty means no satker filter.
	SatkerID string
}

type UpsertRequest struct {
	Nosamw  string `json:"nosamw"`
	Nama    string `json:"nama"`
	Kotama  string `json:"kotama"`
	Satker  string `json:"satker"`
	IsAktif bool   `json:"is_aktif"`
}

type ExportRequest struct {
	Nosamw   string
	Nama     string
	IsAktif  bool
	SatkerID string
}

var (
	ErrNotFound      = errors.New("master_account_not_found")
	ErrExists        = errors.New("master_account_exists")
	ErrInvalidNosamw = errors.New("invalid_nosamw")
)
