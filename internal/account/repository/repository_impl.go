package repository

import (
	"context"
	"errors"

	accountdomain "github.com/tirtadata/tirtabill/internal/account/domain"
	customerdomain "github.com/tirtadata/tirtabill/internal/customer/domain"
	"github.com/tirtadata/tirtabill/pkg/db"
	"github.com/tirtadata/tirtabill/pkg/pagination"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func Provide(billing *db.BillingDB) accountdomain.Repository {
	return &repo{db: billing.DB}
}

var custTable = customerdomain.Customer{}.TableName()

var joinSelect = "master_tni.nosamw, master_tni.nama, master_tni.kotama, master_tni.satker, master_tni.is_aktif, " + custTable + ".urjlw"

func (r *repo) filtered(ctx context.Context, f accountdomain.ListFilter) *gorm.DB {
	stmt := r.db.WithContext(ctx).
		Model(&accountdomain.MasterAccount{}).
		Select(joinSelect).
		Joins("INNER JOIN "+custTable+" ON master_tni.nosamw = "+custTable+".nosamw").
		Where("master_tni.is_aktif = ?", f.IsAktif)

	if f.SatkerName != "" {
		stmt = stmt.Where("master_tni.satker LIKE ?", "%"+f.SatkerName+"%")
	}
	if f.Nosamw != "" {
		stmt = stmt.Where("master_tni.nosamw = ?", f.Nosamw)
	}
	if f.Nama != "" {
		stmt = stmt.Where("master_tni.nama LIKE ?", "%"+f.Nama+"%")
	}
	return stmt
}

func (r *repo) List(ctx context.Context, f accountdomain.ListFilter, orders []pagination.Order, p pagination.Params) ([]accountdomain.Row, int64, error) {
	stmt := r.filtered(ctx, f)

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []accountdomain.Row
	if err := pagination.Apply(stmt, orders, p).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repo) ListAll(ctx context.Context, f accountdomain.ListFilter) ([]accountdomain.Row, error) {
	var rows []accountdomain.Row
	err := r.filtered(ctx, f).Scan(&rows).Error
	return rows, err
}

func (r *repo) FindByNosamw(ctx context.Context, nosamw string) (*accountdomain.MasterAccount, error) {
	var row accountdomain.MasterAccount
	err := r.db.WithContext(ctx).Where("nosamw = ?", nosamw).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *repo) Create(ctx context.Context, account *accountdomain.MasterAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *repo) Save(ctx context.Context, account *accountdomain.MasterAccount) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *repo) Delete(ctx context.Context, nosamw string) error {
	return r.db.WithContext(ctx).Where("nosamw = ?", nosamw).Delete(&accountdomain.MasterAccount{}).Error
}
