package response

import (
	"time"

	"courier-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AddressResponse struct {
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type AccountResponse struct {
	ID        uuid.UUID       `json:"id"`
	Role      string          `json:"role"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	Address   AddressResponse `json:"address"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func FromAccountView(rm *readmodel.AccountView) *AccountResponse {
	return &AccountResponse{
		ID:    rm.ID,
		Role:  rm.Role,
		Name:  rm.Name,
		Phone: rm.Phone,
		Address: AddressResponse{
			Name:       rm.Address.Name,
			Phone:      rm.Address.Phone,
			Street:     rm.Address.Street,
			City:       rm.Address.City,
			State:      rm.Address.State,
			PostalCode: rm.Address.PostalCode,
			Country:    rm.Address.Country,
		},
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromAccountViews(rms []*readmodel.AccountView) []*AccountResponse {
	resp := make([]*AccountResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromAccountView(rm)
	}
	return resp
}
