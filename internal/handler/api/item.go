package api

import (
	"net/http"

	reqdto "courier-admin/internal/handler/dto/request"
	resdto "courier-admin/internal/handler/dto/response"
	"courier-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	itemUseCase usecase.ItemUseCase
}

func NewItemHandler(itemUseCase usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{itemUseCase: itemUseCase}
}

// @Summary Create item
// @Description Add a catalog item
// @Tags items
// @Accept json
// @Produce json
// @Param request body reqdto.CreateItemRequest true "Item to create"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.itemUseCase.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Get item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.itemUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {array} resdto.ItemResponse
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	views, err := h.itemUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Update item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Item fields"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.itemUseCase.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Delete item
// @Tags items
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.itemUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
