package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, order *Order) error
	ListInvoices(ctx context.Context, db *gorm.DB) ([]InvoiceView, error)
	FindInvoiceByID(ctx context.Context, db *gorm.DB, id int64) (*InvoiceView, error)
}
