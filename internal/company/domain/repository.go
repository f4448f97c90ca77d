package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, company *Company) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Company, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Company, error)
}
