package models

type Address struct {
	ID             int64  `json:"id" db:"id"`
	CustomerID     int64  `json:"customer_id" db:"customer_id"`
	AddressDetails string `json:"address_details" db:"address_details"`
	City           string `json:"city" db:"city"`
	State          string `json:"state" db:"state"`
	PinCode        string `json:"pin_code" db:"pin_code"`
}

// AddAddressRequest defines the shape of the request body for creating a new address.
// The owning customer comes from the URL, not the body.
type AddAddressRequest struct {
	AddressDetails string `json:"address_details" validate:"required"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	PinCode        string `json:"pin_code" validate:"required"`
}

// UpdateAddressRequest defines the shape of the request body for updating an address.
type UpdateAddressRequest struct {
	AddressDetails string `json:"address_details" validate:"required"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	PinCode        string `json:"pin_code" validate:"required"`
}
