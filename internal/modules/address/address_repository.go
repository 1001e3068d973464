package address

import (
	"context"
	"errors"
	"fmt"

	"customer-management/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines methods for interacting with address storage.
type RepositoryInterface interface {
	Create(ctx context.Context, customerID int64, req models.AddAddressRequest) (int64, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Address, error)
	Update(ctx context.Context, id int64, req models.UpdateAddressRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// Create inserts an address for an existing customer. The foreign key on
// customer_id is enforced, so inserting against a missing customer surfaces
// as ErrNotFound.
func (r *Repository) Create(ctx context.Context, customerID int64, req models.AddAddressRequest) (int64, error) {
	var id int64
	query := `
		INSERT INTO addresses (customer_id, address_details, city, state, pin_code)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.QueryRow(ctx, query, customerID, req.AddressDetails, req.City, req.State, req.PinCode).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, models.ErrNotFound
		}
		return 0, fmt.Errorf("repository.Create: %w", err)
	}
	return id, nil
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]models.Address, error) {
	query := `
		SELECT id, customer_id, address_details, city, state, pin_code
		FROM addresses
		WHERE customer_id = $1
		ORDER BY id`
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("repository.ListByCustomer: %w", err)
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.AddressDetails, &a.City, &a.State, &a.PinCode); err != nil {
			return nil, fmt.Errorf("repository.ListByCustomer: %w", err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.ListByCustomer: %w", err)
	}
	return addresses, nil
}

func (r *Repository) Update(ctx context.Context, id int64, req models.UpdateAddressRequest) (int64, error) {
	query := `
		UPDATE addresses
		SET address_details = $1, city = $2, state = $3, pin_code = $4
		WHERE id = $5`
	cmdTag, err := r.db.Exec(ctx, query, req.AddressDetails, req.City, req.State, req.PinCode, id)
	if err != nil {
		return 0, fmt.Errorf("repository.Update: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, models.ErrNotFound
	}
	return cmdTag.RowsAffected(), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, models.ErrNotFound
	}
	return cmdTag.RowsAffected(), nil
}

// isForeignKeyViolation reports whether err is a Postgres foreign_key_violation (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
