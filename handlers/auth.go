package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vedicjivan/middleware"
	"vedicjivan/services/user"
	"vedicjivan/utils"
)

type AuthHandler struct {
	Users user.UserService
}

func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// RegisterHandler creates an account and issues the first token pair.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	tokens, err := h.Users.Register(c.Request.Context(), user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to register", err.Error())
		return
	}

	c.JSON(http.StatusCreated, tokens)
}

// LoginHandler authenticates credentials and issues a token pair.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	tokens, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to log in", err.Error())
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// RefreshHandler exchanges a refresh token for a new token pair.
func (h *AuthHandler) RefreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	tokens, err := h.Users.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, user.ErrInvalidToken) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to refresh token", err.Error())
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// MeHandler returns the authenticated user's profile.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)
	if usr == nil {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}
	c.JSON(http.StatusOK, usr)
}
