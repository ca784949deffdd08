package account

import (
	"strings"

	"courier-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNameRequired = errs.New("account name is required")

// Address is a structured postal address. Name and Phone are optional
// per-address contact overrides used when the party at the address differs
// from the account holder.
type Address struct {
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// RenderLine flattens the address to the single-line text form the courier
// provider expects. Empty components are omitted.
func (a Address) RenderLine() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.PostalCode, a.Country} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Account is a customer or warehouse managed by the operator. Quotes
// reference accounts but snapshot their addresses at composition time.
type Account struct {
	ID      uuid.UUID
	Role    Role
	Name    string
	Phone   string
	Address Address
}

func New(role Role, name, phone string, addr Address) (*Account, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	return &Account{
		ID:      uuid.New(),
		Role:    role,
		Name:    strings.TrimSpace(name),
		Phone:   strings.TrimSpace(phone),
		Address: addr,
	}, nil
}

// ContactPhone resolves the phone to declare to the courier for this
// account's address: the address-level override wins over the account phone.
func (a *Account) ContactPhone() string {
	if p := strings.TrimSpace(a.Address.Phone); p != "" {
		return p
	}
	return strings.TrimSpace(a.Phone)
}

// ContactName resolves the name to declare to the courier for this
// account's address.
func (a *Account) ContactName() string {
	if n := strings.TrimSpace(a.Address.Name); n != "" {
		return n
	}
	return a.Name
}
