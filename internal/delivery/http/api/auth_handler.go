package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public, protected *gin.RouterGroup, loginLimiter gin.HandlerFunc, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/auth/login", loginLimiter, handler.Login)

	protected.GET("/auth/verify", handler.Verify)
	protected.PUT("/auth/change-password", handler.ChangePassword)
}

// Login godoc
// @Summary      Admin login
// @Description  Exchange email and password for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      domain.LoginRequest  true  "Credentials"
// @Success      200  {object}  domain.LoginResult
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Verify godoc
// @Summary      Verify token
// @Description  Confirm the bearer token is still valid and return its account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	user, err := h.authUC.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "user": user})
}

// ChangePassword godoc
// @Summary      Change admin password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        passwords  body      domain.ChangePasswordRequest  true  "Current and new password"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req domain.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.authUC.ChangePassword(c.Request.Context(), userID, req); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Password updated successfully")
}
