// Package domain contains persistence models for catalogued products.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable catalogue entry. QuantityInStock is informational
// only; order creation does not decrement it.
type Product struct {
	ID              int64           `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" gorm:"type:text;not null"`
	UnitPrice       decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	VATRate         decimal.Decimal `json:"vat_rate" gorm:"column:vat_rate;type:decimal(5,2);not null"`
	QuantityInStock int             `json:"quantity_in_stock" gorm:"not null;default:0"`
	CreatedAt       time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }
