package customer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"customer-management/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListParams carries the normalized query parameters for the customer listing.
type ListParams struct {
	Search string
	Sort   SortField
	Order  SortOrder
	Page   int
	Limit  int
}

// Offset is the row offset implied by Page and Limit. Page and Limit are not
// validated for positivity, so a non-positive page yields a negative offset
// that the database rejects; the caller surfaces that as a generic fault.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// RepositoryInterface defines methods for interacting with customer storage.
type RepositoryInterface interface {
	List(ctx context.Context, params ListParams) ([]models.Customer, error)
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
	Create(ctx context.Context, req models.CreateCustomerRequest) (int64, error)
	Update(ctx context.Context, id int64, req models.UpdateCustomerRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// aggregateSelect is shared by List and FindByID so the listing and the
// detail view count addresses identically.
const aggregateSelect = `
	SELECT c.id, c.first_name, c.last_name, c.phone_number, COUNT(a.id) AS addresses_count
	FROM customers c
	LEFT JOIN addresses a ON a.customer_id = c.id`

// buildListQuery assembles the aggregation query for the listing. A search
// string that parses as a number is treated as an exact id lookup; any other
// non-empty search becomes a case-insensitive substring match across the
// customer columns and the joined address columns.
func buildListQuery(params ListParams) (string, []any) {
	var sb strings.Builder
	sb.WriteString(aggregateSelect)

	var args []any
	trimmed := strings.TrimSpace(params.Search)
	if trimmed != "" {
		if id, err := strconv.ParseFloat(trimmed, 64); err == nil {
			args = append(args, id)
			sb.WriteString(" WHERE c.id = $1")
		} else {
			args = append(args, "%"+params.Search+"%")
			sb.WriteString(` WHERE (c.first_name ILIKE $1 OR c.last_name ILIKE $1 OR c.phone_number ILIKE $1
		OR a.city ILIKE $1 OR a.state ILIKE $1 OR a.pin_code ILIKE $1)`)
		}
	}

	sb.WriteString(" GROUP BY c.id")
	fmt.Fprintf(&sb, " ORDER BY %s %s", params.Sort.Column(), params.Order.Direction())
	fmt.Fprintf(&sb, " LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	return sb.String(), args
}

func (r *Repository) List(ctx context.Context, params ListParams) ([]models.Customer, error) {
	query, args := buildListQuery(params)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository.List: %w", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.AddressesCount); err != nil {
			return nil, fmt.Errorf("repository.List: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List: %w", err)
	}
	return customers, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	c := &models.Customer{}
	query := aggregateSelect + ` WHERE c.id = $1 GROUP BY c.id`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.AddressesCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return c, nil
}

func (r *Repository) Create(ctx context.Context, req models.CreateCustomerRequest) (int64, error) {
	var id int64
	query := `
		INSERT INTO customers (first_name, last_name, phone_number)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.db.QueryRow(ctx, query, req.FirstName, req.LastName, req.PhoneNumber).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrConflict
		}
		return 0, fmt.Errorf("repository.Create: %w", err)
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, id int64, req models.UpdateCustomerRequest) (int64, error) {
	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, phone_number = $3
		WHERE id = $4`
	cmdTag, err := r.db.Exec(ctx, query, req.FirstName, req.LastName, req.PhoneNumber, id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrConflict
		}
		return 0, fmt.Errorf("repository.Update: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, models.ErrNotFound
	}
	return cmdTag.RowsAffected(), nil
}

// Delete removes a customer and its addresses as one transaction: addresses
// first, then the customer. A failure at either step rolls back the whole
// cascade, so a customer can never be left orphaned of a half-deleted
// address set.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository.Delete: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM addresses WHERE customer_id = $1`, id); err != nil {
		return 0, fmt.Errorf("repository.Delete: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, models.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository.Delete: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
