// Package domain contains persistence models for orders (invoices).
package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Order is a persisted invoice: one product sold to one company at a given
// quantity, with VAT and total computed from the product's price at
// creation time. VATAmount and TotalPrice are never recomputed, even if
// the product row changes later.
type Order struct {
	ID         int64           `json:"id" gorm:"primaryKey"`
	OrderDate  time.Time       `json:"order_date" gorm:"not null;index"`
	CompanyID  int64           `json:"company_id" gorm:"not null;index"`
	ProductID  int64           `json:"product_id" gorm:"not null;index"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	VATAmount  decimal.Decimal `json:"vat_amount" gorm:"column:vat_amount;type:decimal(18,6);not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(18,6);not null"`
	RawData    datatypes.JSON  `json:"raw_data" gorm:"column:raw_data;not null"`
}

// TableName sets the database table name.
func (Order) TableName() string { return "orders" }

// Snapshot is the copy of the referenced company and product captured at
// order creation and stored in raw_data for historical fidelity.
type Snapshot struct {
	Company SnapshotCompany `json:"company"`
	Product SnapshotProduct `json:"product"`
}

type SnapshotCompany struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type SnapshotProduct struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	VATRate   decimal.Decimal `json:"vat_rate"`
	Quantity  int             `json:"quantity"`
}

// InvoiceView is the denormalized read shape combining an order with its
// referenced company and product rows as they are NOW. Display fields can
// drift from the snapshot if those rows are edited later; vat_amount and
// total_price stay frozen at their creation-time values.
type InvoiceView struct {
	ID             int64           `json:"id" gorm:"column:id"`
	OrderDate      time.Time       `json:"order_date" gorm:"column:order_date"`
	Quantity       int             `json:"quantity" gorm:"column:quantity"`
	VATAmount      decimal.Decimal `json:"vat_amount" gorm:"column:vat_amount"`
	TotalPrice     decimal.Decimal `json:"total_price" gorm:"column:total_price"`
	CompanyName    string          `json:"company_name" gorm:"column:company_name"`
	CompanyAddress string          `json:"company_address" gorm:"column:company_address"`
	ProductName    string          `json:"product_name" gorm:"column:product_name"`
	UnitPrice      decimal.Decimal `json:"unit_price" gorm:"column:unit_price"`
	VATRate        decimal.Decimal `json:"vat_rate" gorm:"column:vat_rate"`
}
