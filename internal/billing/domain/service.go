package domain

import (
	"context"
	"errors"

	"github.com/tirtadata/tirtabill/pkg/pagination"
	"github.com/tirtadata/tirtabill/pkg/tabular"
)

type Service interface {
	List(ctx context.Context, req ListRequest) (pagination.Page[Response], error)
	Get(ctx context.Context, opaqueID string) (*Response, error)
	// Update rewrites the working reading fields and recomputes the tiered
	// charges r1..r3 from the stored rates. r4 and the *_ori snapshots are
	// deliberately left alone.
	Update(ctx context.Context, opaqueID string, req UpdateRequest) (*Response, error)
	// Sync copies one period from the raw store into rekening_tni, exactly
	// once per period.
	Sync(ctx context.Context, periode string) (*SyncResult, error)

	ListRaw(ctx context.Context, periode string) ([]RawReading, error)
	RawDetail(ctx context.Context, nosamw, periode string) (*RawReading, error)

	// ExportDetail shapes the full set for one satker and period into the
	// per-connection bill statement table.
	ExportDetail(ctx context.Context, req ExportRequest) (*tabular.Table, error)
}

type ListRequest struct {
	Periode string
	Page    int
	Limit   int
	Sort    []string
	Nosamw  string
	Nama    string
}

type UpdateRequest struct {
	Nosamw string  `json:"nosamw"`
	MetL   float64 `json:"met_l"`
	MetK   float64 `json:"met_k"`
	Pakai  float64 `json:"pakai"`
	Rata2  float64 `json:"rata2"`
}

type SyncResult struct {
	Periode string `json:"periode"`
	Total   int    `json:"total"`
}

type ExportRequest struct {
	Periode string
	// SatkerID is the opaque encoded id; required.
	SatkerID string
}

var (
	ErrNotFound        = errors.New("billing_record_not_found")
	ErrAlreadySynced   = errors.New("periode_already_synced")
	ErrNoSourceData    = errors.New("no_source_data_for_periode")
	ErrPeriodeRequired = errors.New("invalid_periode")
	ErrSatkerRequired  = errors.New("invalid_satker_id")
)
