package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(ctx context.Context) ([]Response, error)
	// Get resolves a raw (already decoded) id. Other domains use it to turn
	// a satker filter into the name pattern the denormalized tables store.
	Get(ctx context.Context, id int64) (*Satker, error)
}

var ErrNotFound = errors.New("satker_not_found")
