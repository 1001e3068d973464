package address

import (
	"context"

	"customer-management/internal/models"
)

// ServiceInterface defines the contract for the address service.
type ServiceInterface interface {
	Add(ctx context.Context, customerID int64, req models.AddAddressRequest) (int64, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Address, error)
	Update(ctx context.Context, id int64, req models.UpdateAddressRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Service implements the address business logic. Addresses are plain
// dependents of a customer; all rules beyond field presence live in the
// database constraints.
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new address service.
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, customerID int64, req models.AddAddressRequest) (int64, error) {
	return s.repo.Create(ctx, customerID, req)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]models.Address, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) Update(ctx context.Context, id int64, req models.UpdateAddressRequest) (int64, error) {
	return s.repo.Update(ctx, id, req)
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}
