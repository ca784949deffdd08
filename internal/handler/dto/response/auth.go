package response

import (
	"github.com/google/uuid"
)

type LoginResponse struct {
	OperatorID uuid.UUID `json:"operatorId"`
	Email      string    `json:"email"`
}

type CurrentOperatorResponse struct {
	OperatorID uuid.UUID `json:"operatorId"`
	Email      string    `json:"email"`
}
