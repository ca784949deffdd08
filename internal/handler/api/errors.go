package api

import (
	"errors"
	"net/http"

	"courier-admin/internal/domain/account"
	"courier-admin/internal/domain/delivery"
	"courier-admin/internal/domain/item"
	"courier-admin/internal/domain/quote"
	"courier-admin/internal/handler/httperr"
	"courier-admin/internal/usecase"
	"courier-admin/pkg/courier"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase and domain errors to HTTP responses. Courier
// provider failures are relayed as 502 with the provider's body untouched,
// so the operator sees exactly what the provider said.
func respondError(c *gin.Context, err error) {
	var apiErr *courier.APIError
	if errors.As(err, &apiErr) {
		relayProviderError(c, apiErr.Body)
		return
	}
	var authErr *courier.AuthError
	if errors.As(err, &authErr) {
		relayProviderError(c, authErr.Body)
		return
	}

	switch {
	case errors.Is(err, courier.ErrNotConfigured):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Courier provider is not configured", nil)

	case errors.Is(err, usecase.ErrAccountNotFound),
		errors.Is(err, usecase.ErrItemNotFound),
		errors.Is(err, usecase.ErrQuoteNotFound),
		errors.Is(err, usecase.ErrDeliveryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)

	case errors.Is(err, usecase.ErrAccountReferenced),
		errors.Is(err, usecase.ErrQuoteReferenced),
		errors.Is(err, usecase.ErrQuoteAlreadyPriced):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)

	case errors.Is(err, usecase.ErrCustomerRole),
		errors.Is(err, usecase.ErrWarehouseRole),
		errors.Is(err, account.ErrInvalidRole),
		errors.Is(err, account.ErrNameRequired),
		errors.Is(err, item.ErrNameRequired),
		errors.Is(err, item.ErrInvalidPrice),
		errors.Is(err, quote.ErrUnknownItem),
		errors.Is(err, quote.ErrInvalidQuantity):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)

	case errors.Is(err, delivery.ErrQuoteNotPriced),
		errors.Is(err, delivery.ErrMissingPickupAddress),
		errors.Is(err, delivery.ErrMissingDropoffAddress),
		errors.Is(err, delivery.ErrMissingPickupPhone),
		errors.Is(err, delivery.ErrMissingDropoffPhone):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func relayProviderError(c *gin.Context, body []byte) {
	if len(body) == 0 {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": gin.H{"message": "Courier provider error"}})
		return
	}
	c.Data(http.StatusBadGateway, "application/json", body)
	c.Abort()
}
