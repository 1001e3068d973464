package customer

import (
	"context"
	"fmt"

	"customer-management/internal/models"
)

// ServiceInterface defines the contract for the customer service.
type ServiceInterface interface {
	List(ctx context.Context, search, sortField, sortOrder string, page, limit int) ([]models.Customer, error)
	Get(ctx context.Context, id int64) (*models.CustomerDetail, error)
	Create(ctx context.Context, req models.CreateCustomerRequest) (int64, error)
	Update(ctx context.Context, id int64, req models.UpdateCustomerRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Service implements the customer business logic.
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new customer service.
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// List normalizes the raw query parameters and fetches one page of the
// aggregated customer listing. Unknown sort fields and orders silently fall
// back to id ascending; missing page/limit fall back to 1/10. Explicit
// non-positive values are passed through unchanged.
func (s *Service) List(ctx context.Context, search, sortField, sortOrder string, page, limit int) ([]models.Customer, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	params := ListParams{
		Search: search,
		Sort:   ParseSortField(sortField),
		Order:  ParseSortOrder(sortOrder),
		Page:   page,
		Limit:  limit,
	}

	customers, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("service.List: %w", err)
	}
	return customers, nil
}

// Get retrieves a single customer with its address count. The count comes
// from the same aggregation the listing uses, so the two views cannot drift.
func (s *Service) Get(ctx context.Context, id int64) (*models.CustomerDetail, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.CustomerDetail{
		Customer:       *c,
		OnlyOneAddress: c.AddressesCount == 1,
	}, nil
}

func (s *Service) Create(ctx context.Context, req models.CreateCustomerRequest) (int64, error) {
	return s.repo.Create(ctx, req)
}

func (s *Service) Update(ctx context.Context, id int64, req models.UpdateCustomerRequest) (int64, error) {
	return s.repo.Update(ctx, id, req)
}

// Delete removes the customer and all of its addresses.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}
