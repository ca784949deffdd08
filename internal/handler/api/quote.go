package api

import (
	"net/http"

	reqdto "courier-admin/internal/handler/dto/request"
	resdto "courier-admin/internal/handler/dto/response"
	"courier-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteUseCase usecase.QuoteUseCase
}

func NewQuoteHandler(quoteUseCase usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{quoteUseCase: quoteUseCase}
}

// @Summary Create quote
// @Description Compose a draft quote from a customer, a warehouse and item lines
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.CreateQuoteRequest true "Quote to compose"
// @Success 201 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req reqdto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.quoteUseCase.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromQuoteView(view))
}

// @Summary Get quote
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} httperr.Response
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.quoteUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary List quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} resdto.QuoteListResponse
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	items, err := h.quoteUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteListItems(items))
}

// @Summary Request provider quote
// @Description Ask the courier provider to price the quote
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} map[string]any
// @Router /quotes/{id}/provider-quote [post]
func (h *QuoteHandler) RequestProviderQuote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.quoteUseCase.RequestProviderQuote(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Delete draft quote
// @Tags quotes
// @Param id path string true "Quote ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.quoteUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
