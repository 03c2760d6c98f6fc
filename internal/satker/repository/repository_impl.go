package repository

import (
	"context"
	"errors"

	satkerdomain "github.com/tirtadata/tirtabill/internal/satker/domain"
	"github.com/tirtadata/tirtabill/pkg/db"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func Provide(coklit *db.CoklitDB) satkerdomain.Repository {
	return &repo{db: coklit.DB}
}

func (r *repo) List(ctx context.Context) ([]satkerdomain.Satker, error) {
	var rows []satkerdomain.Satker
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *repo) FindByID(ctx context.Context, id int64) (*satkerdomain.Satker, error) {
	var row satkerdomain.Satker
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
