package service

import (
	"context"

	"github.com/mfreitas/bancario/internal/domain"
)

// BranchService owns branch records. Every write resolves the bank
// reference through the bank registry before touching storage, so a
// dangling bank id is rejected up front.
type BranchService struct {
	repo  BranchRepository
	banks bankResolver
}

func NewBranchService(repo BranchRepository, banks bankResolver) *BranchService {
	return &BranchService{repo: repo, banks: banks}
}

func (s *BranchService) Create(ctx context.Context, number int, name string, bankID int64) (*domain.Branch, error) {
	if _, err := s.banks.GetByID(ctx, bankID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &domain.Branch{Number: number, Name: name, BankID: bankID})
}

func (s *BranchService) GetByID(ctx context.Context, id int64) (*domain.Branch, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BranchService) GetByNumber(ctx context.Context, number int) (*domain.Branch, error) {
	return s.repo.GetByNumber(ctx, number)
}

// ListByBank fails closed: an unknown bank is NotFound, a known bank
// with no branches is an empty list.
func (s *BranchService) ListByBank(ctx context.Context, bankID int64) ([]domain.Branch, error) {
	if _, err := s.banks.GetByID(ctx, bankID); err != nil {
		return nil, err
	}
	return s.repo.ListByBank(ctx, bankID)
}

func (s *BranchService) Update(ctx context.Context, id int64, number int, name string, bankID int64) (*domain.Branch, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.banks.GetByID(ctx, bankID); err != nil {
		return nil, err
	}
	existing.Number = number
	existing.Name = name
	existing.BankID = bankID
	return s.repo.Update(ctx, existing)
}

func (s *BranchService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
