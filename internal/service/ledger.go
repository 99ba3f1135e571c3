package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type ledgerService struct {
	ledgerRepo repository.LedgerRepository
}

func NewLedgerService(ledgerRepo repository.LedgerRepository) LedgerService {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

// CreateEntry records a manual adjustment entry outside the posting engine,
// such as an opening balance.
func (s *ledgerService) CreateEntry(ctx context.Context, userID int32, account domain.Account, source string, direction domain.Direction, amount decimal.Decimal) (*domain.LedgerEntry, error) {
	if source == "" {
		return nil, domain.ErrValidation
	}
	if direction != domain.DirectionDebit && direction != domain.DirectionCredit {
		return nil, domain.ErrValidation
	}
	entry := &domain.LedgerEntry{
		UserID:    userID,
		Account:   account,
		Source:    source,
		Direction: direction,
		Amount:    amount,
	}
	if err := s.ledgerRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, userID int32, account domain.Account) ([]domain.LedgerEntry, error) {
	return s.ledgerRepo.ListByAccount(ctx, userID, account)
}

func (s *ledgerService) ListEntriesByDateRange(ctx context.Context, userID int32, account domain.Account, from, to time.Time) ([]domain.LedgerEntry, error) {
	return s.ledgerRepo.ListByDateRange(ctx, userID, account, from, to)
}

func (s *ledgerService) GetNetBalance(ctx context.Context, userID int32, account domain.Account) (decimal.Decimal, error) {
	debit, err := s.ledgerRepo.SumByDirection(ctx, userID, account, domain.DirectionDebit)
	if err != nil {
		return decimal.Zero, err
	}
	credit, err := s.ledgerRepo.SumByDirection(ctx, userID, account, domain.DirectionCredit)
	if err != nil {
		return decimal.Zero, err
	}
	return debit.Sub(credit), nil
}
