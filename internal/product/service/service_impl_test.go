package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/faktur/internal/clock"
	"github.com/smallbiznis/faktur/internal/product/domain"
	"github.com/smallbiznis/faktur/internal/product/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Product{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
}

func decptr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intptr(v int) *int { return &v }

func TestCreateProduct(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Create(context.Background(), domain.CreateProductRequest{
		Name:            "Widget",
		UnitPrice:       decptr("100"),
		VATRate:         decptr("18"),
		QuantityInStock: intptr(5),
	})
	require.NoError(t, err)

	assert.NotZero(t, product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.True(t, product.UnitPrice.Equal(decimal.RequireFromString("100")))
	assert.True(t, product.VATRate.Equal(decimal.RequireFromString("18")))
	assert.Equal(t, 5, product.QuantityInStock)
}

func TestCreateProduct_StockDefaultsToZero(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Create(context.Background(), domain.CreateProductRequest{
		Name:      "Widget",
		UnitPrice: decptr("100"),
		VATRate:   decptr("18"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, product.QuantityInStock)
}

func TestCreateProduct_Validation(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name string
		req  domain.CreateProductRequest
		want error
	}{
		{
			name: "empty name",
			req:  domain.CreateProductRequest{UnitPrice: decptr("100"), VATRate: decptr("18")},
			want: domain.ErrInvalidName,
		},
		{
			name: "missing unit price",
			req:  domain.CreateProductRequest{Name: "Widget", VATRate: decptr("18")},
			want: domain.ErrInvalidUnitPrice,
		},
		{
			name: "negative unit price",
			req:  domain.CreateProductRequest{Name: "Widget", UnitPrice: decptr("-1"), VATRate: decptr("18")},
			want: domain.ErrInvalidUnitPrice,
		},
		{
			name: "missing vat rate",
			req:  domain.CreateProductRequest{Name: "Widget", UnitPrice: decptr("100")},
			want: domain.ErrInvalidVATRate,
		},
		{
			name: "negative vat rate",
			req:  domain.CreateProductRequest{Name: "Widget", UnitPrice: decptr("100"), VATRate: decptr("-5")},
			want: domain.ErrInvalidVATRate,
		},
		{
			name: "negative stock",
			req:  domain.CreateProductRequest{Name: "Widget", UnitPrice: decptr("100"), VATRate: decptr("18"), QuantityInStock: intptr(-3)},
			want: domain.ErrInvalidStock,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCreateProduct_ZeroValuesAreAccepted(t *testing.T) {
	svc := newTestService(t)

	// Free items and zero-rated VAT are both legal.
	product, err := svc.Create(context.Background(), domain.CreateProductRequest{
		Name:      "Sample",
		UnitPrice: decptr("0"),
		VATRate:   decptr("0"),
	})
	require.NoError(t, err)
	assert.True(t, product.UnitPrice.IsZero())
	assert.True(t, product.VATRate.IsZero())
}

func TestListProducts_SortedByName(t *testing.T) {
	svc := newTestService(t)

	for _, name := range []string{"Zip Tie", "Anvil", "Magnet"} {
		_, err := svc.Create(context.Background(), domain.CreateProductRequest{
			Name:      name,
			UnitPrice: decptr("10"),
			VATRate:   decptr("18"),
		})
		require.NoError(t, err)
	}

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "Anvil", products[0].Name)
	assert.Equal(t, "Magnet", products[1].Name)
	assert.Equal(t, "Zip Tie", products[2].Name)
}
