package domain

import (
	"context"

	"github.com/tirtadata/tirtabill/pkg/pagination"
)

type ListFilter struct {
	Periode string
	Nosamw  string
	Nama    string
}

// Repository covers the denormalized rekening_tni side (coklit store).
type Repository interface {
	List(ctx context.Context, f ListFilter, orders []pagination.Order, p pagination.Params) ([]Record, int64, error)
	FindByID(ctx context.Context, id int64) (*Record, error)
	FindBySatker(ctx context.Context, periode, satkerName string) ([]Record, error)
	// UpdateReading persists the working meter fields and the first three
	// band charges; every other column stays untouched.
	UpdateReading(ctx context.Context, record *Record) error
	SyncExists(ctx context.Context, periode string) (bool, error)
	// SaveSynced inserts the projected rows and the sync_log marker in one
	// transaction so a period can never end up half-synced.
	SaveSynced(ctx context.Context, records []Record, periode string) error
}

// RawRepository covers the source side (billing store).
type RawRepository interface {
	ListByPeriode(ctx context.Context, periode string) ([]RawReading, error)
	FindActive(ctx context.Context, nosamw, periode string) (*RawReading, error)
	// JoinForPeriode runs the rekair × master_tni extraction, projecting
	// directly into the denormalized shape with *_ori duplicates and the
	// provider label.
	JoinForPeriode(ctx context.Context, periode, provider string) ([]Record, error)
}
