package service

import (
	"context"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type creditorService struct {
	creditorRepo repository.CreditorRepository
}

func NewCreditorService(creditorRepo repository.CreditorRepository) CreditorService {
	return &creditorService{creditorRepo: creditorRepo}
}

func (s *creditorService) CreateCreditor(ctx context.Context, creditor *domain.Creditor) error {
	if creditor.Name == "" || creditor.Contact == "" {
		return domain.ErrValidation
	}
	return s.creditorRepo.Create(ctx, creditor)
}

func (s *creditorService) GetCreditor(ctx context.Context, userID, id int32) (*domain.Creditor, error) {
	creditor, err := s.creditorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if creditor.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return creditor, nil
}

func (s *creditorService) ListCreditors(ctx context.Context, userID int32) ([]domain.Creditor, error) {
	return s.creditorRepo.List(ctx, userID)
}

// UpdateCreditor edits the identity fields only. Due moves exclusively
// through postings.
func (s *creditorService) UpdateCreditor(ctx context.Context, userID, id int32, name, contact string) (*domain.Creditor, error) {
	creditor, err := s.GetCreditor(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		creditor.Name = name
	}
	if contact != "" {
		creditor.Contact = contact
	}
	if err := s.creditorRepo.Update(ctx, creditor); err != nil {
		return nil, err
	}
	return creditor, nil
}

func (s *creditorService) DeleteCreditor(ctx context.Context, userID, id int32) error {
	if _, err := s.GetCreditor(ctx, userID, id); err != nil {
		return err
	}
	return s.creditorRepo.Delete(ctx, id)
}
