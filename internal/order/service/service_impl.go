package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/faktur/internal/clock"
	companydomain "github.com/smallbiznis/faktur/internal/company/domain"
	"github.com/smallbiznis/faktur/internal/order/domain"
	"github.com/smallbiznis/faktur/internal/pricing"
	productdomain "github.com/smallbiznis/faktur/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Clock       clock.Clock
	Repo        domain.Repository
	CompanyRepo companydomain.Repository
	ProductRepo productdomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	clock       clock.Clock
	repo        domain.Repository
	companyRepo companydomain.Repository
	productRepo productdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("order.service"),
		genID:       p.GenID,
		clock:       p.Clock,
		repo:        p.Repo,
		companyRepo: p.CompanyRepo,
		productRepo: p.ProductRepo,
	}
}

// Create validates the referenced company and product, prices the order,
// and persists one order row carrying the snapshot. The whole
// read-validate-write sequence runs in a single transaction so neither
// reference can disappear between validation and insert.
func (s *Service) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if req.CompanyID <= 0 {
		return domain.Order{}, domain.ErrInvalidCompanyID
	}
	if req.ProductID <= 0 {
		return domain.Order{}, domain.ErrInvalidProductID
	}
	if req.Quantity < 1 {
		return domain.Order{}, domain.ErrInvalidQuantity
	}

	var order domain.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByID(ctx, tx, req.ProductID)
		if err != nil {
			return fmt.Errorf("find product %d: %w", req.ProductID, err)
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		company, err := s.companyRepo.FindByID(ctx, tx, req.CompanyID)
		if err != nil {
			return fmt.Errorf("find company %d: %w", req.CompanyID, err)
		}
		if company == nil {
			return domain.ErrCompanyNotFound
		}

		amounts := pricing.Compute(product.UnitPrice, req.Quantity, product.VATRate)

		snapshot := domain.Snapshot{
			Company: domain.SnapshotCompany{
				ID:      company.ID,
				Name:    company.Name,
				Address: company.Address,
			},
			Product: domain.SnapshotProduct{
				ID:        product.ID,
				Name:      product.Name,
				UnitPrice: product.UnitPrice,
				VATRate:   product.VATRate,
				Quantity:  req.Quantity,
			},
		}
		rawData, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}

		order = domain.Order{
			ID:         s.genID.Generate().Int64(),
			OrderDate:  s.clock.Now(),
			CompanyID:  company.ID,
			ProductID:  product.ID,
			Quantity:   req.Quantity,
			VATAmount:  amounts.VATAmount,
			TotalPrice: amounts.TotalPrice,
			RawData:    rawData,
		}

		return s.repo.Insert(ctx, tx, &order)
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.log.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("company_id", order.CompanyID),
		zap.Int64("product_id", order.ProductID),
		zap.String("total_price", order.TotalPrice.String()),
	)
	return order, nil
}

func (s *Service) ListInvoices(ctx context.Context) ([]domain.InvoiceView, error) {
	invoices, err := s.repo.ListInvoices(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *Service) GetInvoice(ctx context.Context, id int64) (domain.InvoiceView, error) {
	if id <= 0 {
		return domain.InvoiceView{}, domain.ErrInvoiceNotFound
	}

	invoice, err := s.repo.FindInvoiceByID(ctx, s.db, id)
	if err != nil {
		return domain.InvoiceView{}, err
	}
	if invoice == nil {
		return domain.InvoiceView{}, domain.ErrInvoiceNotFound
	}
	return *invoice, nil
}
