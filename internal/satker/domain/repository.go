package domain

import "context"

type Repository interface {
	List(ctx context.Context) ([]Satker, error)
	FindByID(ctx context.Context, id int64) (*Satker, error)
}
