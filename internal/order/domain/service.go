package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateOrderRequest) (Order, error)
	ListInvoices(ctx context.Context) ([]InvoiceView, error)
	GetInvoice(ctx context.Context, id int64) (InvoiceView, error)
}

type CreateOrderRequest struct {
	CompanyID int64 `json:"company_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

var (
	ErrInvalidCompanyID = errors.New("invalid_company_id")
	ErrInvalidProductID = errors.New("invalid_product_id")
	ErrInvalidQuantity  = errors.New("invalid_quantity")
	ErrCompanyNotFound  = errors.New("company_not_found")
	ErrProductNotFound  = errors.New("product_not_found")
	ErrInvoiceNotFound  = errors.New("invoice_not_found")
)
