package domain

import (
	"context"

	"github.com/tirtadata/tirtabill/pkg/pagination"
)

// ListFilter is the conjunction of optional predicates applied to the
// master_tni × cust join. SatkerName is already resolved from the opaque id.
type ListFilter struct {
	Nosamw     string
	Nama       string
	IsAktif    bool
	SatkerName string
}

type Repository interface {
	List(ctx context.Context, f ListFilter, orders []pagination.Order, p pagination.Params) ([]Row, int64, error)
	// ListAll returns the full matching set for exports, bypassing pagination.
	ListAll(ctx context.Context, f ListFilter) ([]Row, error)
	FindByNosamw(ctx context.Context, nosamw string) (*MasterAccount, error)
	Create(ctx context.Context, account *MasterAccount) error
	Save(ctx context.Context, account *MasterAccount) error
	Delete(ctx context.Context, nosamw string) error
}
