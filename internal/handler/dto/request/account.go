package request

import (
	"courier-admin/internal/domain/account"
)

type AddressRequest struct {
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

func (a AddressRequest) ToDomain() account.Address {
	return account.Address{
		Name:       a.Name,
		Phone:      a.Phone,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

type CreateAccountRequest struct {
	Role    string         `json:"role" binding:"required"`
	Name    string         `json:"name" binding:"required"`
	Phone   string         `json:"phone,omitempty"`
	Address AddressRequest `json:"address"`
}

type UpdateAccountRequest struct {
	Role    string         `json:"role" binding:"required"`
	Name    string         `json:"name" binding:"required"`
	Phone   string         `json:"phone,omitempty"`
	Address AddressRequest `json:"address"`
}
