package account

import "courier-admin/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid account role")

type Role string

const (
	RoleCustomer  Role = "CUSTOMER"
	RoleWarehouse Role = "WAREHOUSE"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleWarehouse:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
