package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/faktur/internal/clock"
	"github.com/smallbiznis/faktur/internal/company/domain"
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
		log:   p.Log.Named("company.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCompanyRequest) (domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Company{}, domain.ErrInvalidName
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		return domain.Company{}, domain.ErrInvalidAddress
	}

	now := s.clock.Now()
	company := domain.Company{
		ID:        s.genID.Generate().Int64(),
		Name:      name,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &company); err != nil {
		return domain.Company{}, err
	}

	s.log.Info("company created", zap.Int64("company_id", company.ID))
	return company, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return companies, nil
}
