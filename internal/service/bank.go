package service

import (
	"context"

	"github.com/mfreitas/bancario/internal/domain"
)

// BankService owns bank records. Field-format validation (CNPJ
// checksum, required fields) happens at the request boundary; the
// service enforces existence and surfaces storage conflicts.
type BankService struct {
	repo BankRepository
}

func NewBankService(repo BankRepository) *BankService {
	return &BankService{repo: repo}
}

func (s *BankService) Create(ctx context.Context, code int, name, taxID string) (*domain.Bank, error) {
	return s.repo.Create(ctx, &domain.Bank{Code: code, Name: name, TaxID: taxID})
}

func (s *BankService) GetByID(ctx context.Context, id int64) (*domain.Bank, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BankService) GetByCode(ctx context.Context, code int) (*domain.Bank, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *BankService) SearchByName(ctx context.Context, name string) ([]domain.Bank, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *BankService) ListAll(ctx context.Context) ([]domain.Bank, error) {
	return s.repo.ListAll(ctx)
}

// Update replaces all three business fields of an existing bank.
func (s *BankService) Update(ctx context.Context, id int64, code int, name, taxID string) (*domain.Bank, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Code = code
	existing.Name = name
	existing.TaxID = taxID
	return s.repo.Update(ctx, existing)
}

func (s *BankService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
