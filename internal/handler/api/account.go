package api

import (
	"net/http"

	reqdto "courier-admin/internal/handler/dto/request"
	resdto "courier-admin/internal/handler/dto/response"
	"courier-admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
}

func NewAccountHandler(accountUseCase usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{accountUseCase: accountUseCase}
}

// @Summary Create account
// @Description Create a customer or warehouse account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAccountRequest true "Account to create"
// @Success 201 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Router /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req reqdto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.accountUseCase.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAccountView(view))
}

// @Summary Get account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} resdto.AccountResponse
// @Failure 404 {object} httperr.Response
// @Router /accounts/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.accountUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountView(view))
}

// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} resdto.AccountResponse
// @Router /accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	views, err := h.accountUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountViews(views))
}

// @Summary Update account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body reqdto.UpdateAccountRequest true "Account fields"
// @Success 200 {object} resdto.AccountResponse
// @Failure 404 {object} httperr.Response
// @Router /accounts/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.accountUseCase.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountView(view))
}

// @Summary Delete account
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.accountUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseIDParam reads the :id path parameter as a UUID, responding 400 itself
// when the value does not parse.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return uuid.Nil, false
	}
	return id, true
}
