package api

import (
	"errors"
	"net/http"

	reqdto "courier-admin/internal/handler/dto/request"
	resdto "courier-admin/internal/handler/dto/response"
	"courier-admin/internal/handler/middleware"
	"courier-admin/internal/pkg/config"
	"courier-admin/internal/pkg/cookie"
	"courier-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	jwtCfg      config.JWTConfig
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtCfg config.JWTConfig, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		jwtCfg:      jwtCfg,
		cookieCfg:   cookieCfg,
	}
}

// @Summary Operator login
// @Description Login with the operator email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, operator, err := h.authUseCase.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieCfg, token, h.jwtCfg.Duration)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		OperatorID: operator.ID,
		Email:      operator.Email,
	})
}

// @Summary Operator logout
// @Description Clear the operator session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current operator
// @Description Get the authenticated operator identity
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CurrentOperatorResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Operator not authenticated",
		})
		return
	}
	email, _ := middleware.GetOperatorEmail(c)

	operator := h.authUseCase.CurrentOperator(operatorID, email)
	c.JSON(http.StatusOK, resdto.CurrentOperatorResponse{
		OperatorID: operator.ID,
		Email:      operator.Email,
	})
}
