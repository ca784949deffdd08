package usecase

import (
	"errors"
	"strings"

	"courier-admin/internal/pkg/config"
	"courier-admin/internal/pkg/jwt"
	"courier-admin/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

// Operator is the authenticated admin identity. There is a single operator
// account, configured through the environment; its id is derived from the
// email so it stays stable across restarts.
type Operator struct {
	ID    uuid.UUID
	Email string
}

type AuthUseCase interface {
	Login(email, plainPassword string) (string, *Operator, error)
	CurrentOperator(operatorID uuid.UUID, email string) *Operator
}

type authUseCaseImpl struct {
	operator   config.OperatorConfig
	jwtService *jwt.Service
}

func NewAuthUseCase(operator config.OperatorConfig, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		operator:   operator,
		jwtService: jwtService,
	}
}

func OperatorID(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(email)))
}

func (a *authUseCaseImpl) Login(email, plainPassword string) (string, *Operator, error) {
	if !strings.EqualFold(email, a.operator.Email) {
		return "", nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(a.operator.PasswordHash, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	op := &Operator{ID: OperatorID(a.operator.Email), Email: a.operator.Email}

	token, err := a.jwtService.GenerateToken(op.ID, op.Email)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, op, nil
}

func (a *authUseCaseImpl) CurrentOperator(operatorID uuid.UUID, email string) *Operator {
	return &Operator{ID: operatorID, Email: email}
}
