package repository

import (
	"context"
	"errors"

	billingdomain "github.com/tirtadata/tirtabill/internal/billing/domain"
	"github.com/tirtadata/tirtabill/pkg/db"
	"github.com/tirtadata/tirtabill/pkg/pagination"
	"gorm.io/gorm"
)

const insertBatchSize = 1000

type repo struct {
	db *gorm.DB
}

func Provide(coklit *db.CoklitDB) billingdomain.Repository {
	return &repo{db: coklit.DB}
}

func (r *repo) filtered(ctx context.Context, f billingdomain.ListFilter) *gorm.DB {
	stmt := r.db.WithContext(ctx).
		Model(&billingdomain.Record{}).
		Where("periode = ?", f.Periode)

	if f.Nosamw != "" {
		stmt = stmt.Where("nosamw = ?", f.Nosamw)
	}
	if f.Nama != "" {
		stmt = stmt.Where("nama LIKE ?", "%"+f.Nama+"%")
	}
	return stmt
}

func (r *repo) List(ctx context.Context, f billingdomain.ListFilter, orders []pagination.Order, p pagination.Params) ([]billingdomain.Record, int64, error) {
	stmt := r.filtered(ctx, f)

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []billingdomain.Record
	if err := pagination.Apply(stmt, orders, p).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repo) FindByID(ctx context.Context, id int64) (*billingdomain.Record, error) {
	var row billingdomain.Record
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *repo) FindBySatker(ctx context.Context, periode, satkerName string) ([]billingdomain.Record, error) {
	var rows []billingdomain.Record
	err := r.db.WithContext(ctx).
		Where("periode = ?", periode).
		Where("satker = ?", satkerName).
		Find(&rows).Error
	return rows, err
}

func (r *repo) UpdateReading(ctx context.Context, record *billingdomain.Record) error {
	return r.db.WithContext(ctx).
		Model(&billingdomain.Record{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"met_l": record.MetL,
			"met_k": record.MetK,
			"pakai": record.Pakai,
			"rata2": record.Rata2,
			"r1":    record.R1,
			"r2":    record.R2,
			"r3":    record.R3,
		}).Error
}

func (r *repo) SyncExists(ctx context.Context, periode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&billingdomain.SyncLog{}).
		Where("periode = ?", periode).
		Count(&count).Error
	return count > 0, err
}

func (r *repo) SaveSynced(ctx context.Context, records []billingdomain.Record, periode string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(records, insertBatchSize).Error; err != nil {
			return err
		}
		return tx.Create(&billingdomain.SyncLog{Periode: periode}).Error
	})
}
