package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/faktur/internal/clock"
	"github.com/smallbiznis/faktur/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.ErrInvalidName
	}

	if req.UnitPrice == nil || req.UnitPrice.IsNegative() {
		return domain.Product{}, domain.ErrInvalidUnitPrice
	}
	if req.VATRate == nil || req.VATRate.IsNegative() {
		return domain.Product{}, domain.ErrInvalidVATRate
	}

	stock := 0
	if req.QuantityInStock != nil {
		if *req.QuantityInStock < 0 {
			return domain.Product{}, domain.ErrInvalidStock
		}
		stock = *req.QuantityInStock
	}

	now := s.clock.Now()
	product := domain.Product{
		ID:              s.genID.Generate().Int64(),
		Name:            name,
		UnitPrice:       *req.UnitPrice,
		VATRate:         *req.VATRate,
		QuantityInStock: stock,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		return domain.Product{}, err
	}

	s.log.Info("product created", zap.Int64("product_id", product.ID))
	return product, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return products, nil
}
