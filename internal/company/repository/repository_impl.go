package repository

import (
	"context"

	"github.com/smallbiznis/faktur/internal/company/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO companies (id, name, address, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		company.ID,
		company.Name,
		company.Address,
		company.CreatedAt,
		company.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Company, error) {
	var company domain.Company
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, address, created_at, updated_at
		 FROM companies WHERE id = ?`,
		id,
	).Scan(&company).Error
	if err != nil {
		return nil, err
	}
	if company.ID == 0 {
		return nil, nil
	}
	return &company, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Company, error) {
	var companies []domain.Company
	err := db.WithContext(ctx).
		Model(&domain.Company{}).
		Order("name asc, id asc").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}
