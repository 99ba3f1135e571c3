package service

import (
	"context"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.Name == "" || customer.Mobile == "" {
		return domain.ErrValidation
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, userID, id int32) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, userID int32) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx, userID)
}

func (s *customerService) UpdateCustomer(ctx context.Context, userID, id int32, name, mobile string) (*domain.Customer, error) {
	customer, err := s.GetCustomer(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		customer.Name = name
	}
	if mobile != "" {
		customer.Mobile = mobile
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, userID, id int32) error {
	if _, err := s.GetCustomer(ctx, userID, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
