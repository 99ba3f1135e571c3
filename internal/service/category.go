package service

import (
	"context"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type expenseCategoryService struct {
	categoryRepo repository.ExpenseCategoryRepository
}

func NewExpenseCategoryService(categoryRepo repository.ExpenseCategoryRepository) ExpenseCategoryService {
	return &expenseCategoryService{categoryRepo: categoryRepo}
}

func (s *expenseCategoryService) CreateCategory(ctx context.Context, category *domain.ExpenseCategory) error {
	if category.Name == "" {
		return domain.ErrValidation
	}
	return s.categoryRepo.Create(ctx, category)
}

func (s *expenseCategoryService) GetCategory(ctx context.Context, userID, id int32) (*domain.ExpenseCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return category, nil
}

func (s *expenseCategoryService) ListCategories(ctx context.Context, userID int32) ([]domain.ExpenseCategory, error) {
	return s.categoryRepo.List(ctx, userID)
}

func (s *expenseCategoryService) UpdateCategory(ctx context.Context, userID, id int32, name string) (*domain.ExpenseCategory, error) {
	category, err := s.GetCategory(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domain.ErrValidation
	}
	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *expenseCategoryService) DeleteCategory(ctx context.Context, userID, id int32) error {
	if _, err := s.GetCategory(ctx, userID, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
