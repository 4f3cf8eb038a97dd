package dto

import (
	"github.com/campaign-tracker/backend/internal/domain/entity"
)

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest is the payload for POST /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// AdminResponse is the account payload embedded in the login response.
type AdminResponse struct {
	ID                  string `json:"id"`
	Username            string `json:"username"`
	DisplayName         string `json:"displayName"`
	Role                string `json:"role"`
	ForcePasswordChange bool   `json:"forcePasswordChange"`
}

// LoginResponse is the payload returned on successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// ToAdminResponse converts an Admin entity to an AdminResponse.
func ToAdminResponse(admin *entity.Admin) AdminResponse {
	return AdminResponse{
		ID:                  admin.ID.String(),
		Username:            admin.Username,
		DisplayName:         admin.DisplayName,
		Role:                string(admin.Role),
		ForcePasswordChange: admin.ForcePasswordChange,
	}
}
