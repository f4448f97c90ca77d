package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest) (Company, error)
	List(ctx context.Context) ([]Company, error)
}

type CreateCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidAddress = errors.New("invalid_address")
	ErrNotFound       = errors.New("company_not_found")
)
