package repository

import (
	"context"

	"github.com/smallbiznis/faktur/internal/order/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO orders (id, order_date, company_id, product_id, quantity, vat_amount, total_price, raw_data)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID,
		order.OrderDate,
		order.CompanyID,
		order.ProductID,
		order.Quantity,
		order.VATAmount,
		order.TotalPrice,
		order.RawData,
	).Error
}

// invoiceSelect joins orders against the CURRENT company and product rows,
// not the stored snapshot, so displayed names and prices follow later
// edits while vat_amount/total_price stay frozen.
const invoiceSelect = `
	SELECT o.id, o.order_date, o.quantity, o.vat_amount, o.total_price,
	       c.name AS company_name, c.address AS company_address,
	       p.name AS product_name, p.unit_price, p.vat_rate
	FROM orders o
	JOIN companies c ON o.company_id = c.id
	JOIN products p ON o.product_id = p.id`

func (r *repo) ListInvoices(ctx context.Context, db *gorm.DB) ([]domain.InvoiceView, error) {
	var invoices []domain.InvoiceView
	err := db.WithContext(ctx).Raw(
		invoiceSelect + `
	ORDER BY o.order_date DESC, o.id DESC`,
	).Scan(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) FindInvoiceByID(ctx context.Context, db *gorm.DB, id int64) (*domain.InvoiceView, error) {
	var invoice domain.InvoiceView
	err := db.WithContext(ctx).Raw(
		invoiceSelect+`
	WHERE o.id = ?`,
		id,
	).Scan(&invoice).Error
	if err != nil {
		return nil, err
	}
	if invoice.ID == 0 {
		return nil, nil
	}
	return &invoice, nil
}
