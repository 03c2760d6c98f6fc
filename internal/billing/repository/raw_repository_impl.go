package repository

import (
	"context"
	"errors"

	billingdomain "github.com/tirtadata/tirtabill/internal/billing/domain"
	"github.com/tirtadata/tirtabill/pkg/db"
	"gorm.io/gorm"
)

type rawRepo struct {
	db *gorm.DB
}

func ProvideRaw(billing *db.BillingDB) billingdomain.RawRepository {
	return &rawRepo{db: billing.DB}
}

func (r *rawRepo) ListByPeriode(ctx context.Context, periode string) ([]billingdomain.RawReading, error) {
	var rows []billingdomain.RawReading
	err := r.db.WithContext(ctx).Where("periode = ?", periode).Find(&rows).Error
	return rows, err
}

func (r *rawRepo) FindActive(ctx context.Context, nosamw, periode string) (*billingdomain.RawReading, error) {
	var row billingdomain.RawReading
	err := r.db.WithContext(ctx).
		Where("nosamw = ?", nosamw).
		Where("periode = ?", periode).
		Where("statrek = ?", "A").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// The extraction projects straight into the denormalized shape: the current
// reading doubles as its own *_ori snapshot, and the provider label is
// stamped as a constant column.
const joinForPeriodeSQL = `
SELECT
    ? AS pdam,
    m.kotama AS matra,
    m.satker,
    r.nosamw,
    m.nama,
    r.alamat,
    r.periode,
    r.met_l,
    r.met_l AS met_l_ori,
    r.met_k,
    r.met_k AS met_k_ori,
    r.pakai,
    r.pakai AS pakai_ori,
    r.rata2,
    r.rata2 AS rata2_ori,
    r.dnmet,
    r.r1,
    r.r2,
    r.r3,
    r.r4,
    r.t1,
    r.t2,
    r.t3,
    r.t4,
    r.denda,
    r.ang_sb,
    r.jasa_sb
FROM rekair r
INNER JOIN master_tni m ON r.nosamw = m.nosamw
WHERE r.periode = ?`

func (r *rawRepo) JoinForPeriode(ctx context.Context, periode, provider string) ([]billingdomain.Record, error) {
	var rows []billingdomain.Record
	err := r.db.WithContext(ctx).Raw(joinForPeriodeSQL, provider, periode).Scan(&rows).Error
	return rows, err
}
