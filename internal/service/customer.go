package service

import (
	"context"

	"github.com/mfreitas/bancario/internal/domain"
)

// CustomerService owns customer records. Same shape as the bank
// registry, keyed by CPF instead of a clearing code.
type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, taxID, name string) (*domain.Customer, error) {
	return s.repo.Create(ctx, &domain.Customer{TaxID: taxID, Name: name})
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerService) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	return s.repo.GetByTaxID(ctx, taxID)
}

func (s *CustomerService) SearchByName(ctx context.Context, name string) ([]domain.Customer, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *CustomerService) Update(ctx context.Context, id int64, taxID, name string) (*domain.Customer, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.TaxID = taxID
	existing.Name = name
	return s.repo.Update(ctx, existing)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
