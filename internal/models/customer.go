package models

// Customer is the canonical customer record as returned by the listing API.
// AddressesCount is computed at query time, never stored.
type Customer struct {
	ID             int64  `json:"id" db:"id"`
	FirstName      string `json:"first_name" db:"first_name"`
	LastName       string `json:"last_name" db:"last_name"`
	PhoneNumber    string `json:"phone_number" db:"phone_number"`
	AddressesCount int64  `json:"addresses_count" db:"addresses_count"`
}

// CustomerDetail is the single-customer view. OnlyOneAddress is derived
// from AddressesCount so the detail page can decide whether the last
// address may be removed.
type CustomerDetail struct {
	Customer
	OnlyOneAddress bool `json:"only_one_address"`
}

// CreateCustomerRequest defines the shape of the request body for creating a new customer.
type CreateCustomerRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// UpdateCustomerRequest defines the shape of the request body for updating a customer.
// All fields are required; the update replaces the record in place.
type UpdateCustomerRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}
