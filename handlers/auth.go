package handlers

import (
	"net/http"

	"tourbook/models"
	"tourbook/services/user"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Users user.UserService
}

func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// SignupHandler handles POST /api/auth/signup.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.Users.Signup(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "id": u.ID})
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.Users.Login(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Info("Login failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.Users.Logout(c.Request.Context(), actor); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// MeHandler handles GET /api/auth/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	u, err := h.Users.GetUser(c.Request.Context(), actor, actor.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateUserHandler handles PUT /api/auth/:id.
func (h *AuthHandler) UpdateUserHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.Users.UpdateUser(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// ForgotPasswordHandler handles POST /api/auth/forgot-password.
func (h *AuthHandler) ForgotPasswordHandler(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Users.ForgotPassword(c.Request.Context(), req); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, a reset code has been sent"})
}

// ResetPasswordHandler handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPasswordHandler(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Users.ResetPassword(c.Request.Context(), req); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// GetAllUsersHandler handles GET /api/admin/users.
func (h *AuthHandler) GetAllUsersHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	users, err := h.Users.GetAllUsers(c.Request.Context(), actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}
