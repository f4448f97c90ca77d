package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, req CreateProductRequest) (Product, error)
	List(ctx context.Context) ([]Product, error)
}

// CreateProductRequest carries the fields for a new product. UnitPrice and
// VATRate are pointers so a missing field is distinguishable from zero.
type CreateProductRequest struct {
	Name            string           `json:"name"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	VATRate         *decimal.Decimal `json:"vat_rate"`
	QuantityInStock *int             `json:"quantity_in_stock"`
}

var (
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidUnitPrice = errors.New("invalid_unit_price")
	ErrInvalidVATRate   = errors.New("invalid_vat_rate")
	ErrInvalidStock     = errors.New("invalid_quantity_in_stock")
	ErrNotFound         = errors.New("product_not_found")
)
