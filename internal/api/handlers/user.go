package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"vinyl-store/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler() *UserHandler {
	return &UserHandler{userService: services.NewUserService()}
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	BirthDate *string `json:"birthDate"`
	Avatar    *string `json:"avatar"`
}

type SetAdminRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// GetProfile returns the caller's profile with reviews and purchases,
// without the internal id.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(200, omitID(user))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	update := services.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
		Avatar:    req.Avatar,
	}

	user, err := h.userService.UpdateProfile(userID, update)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(200, omitID(user))
}

// DeleteProfile removes the caller's account together with their reviews
// and purchase records.
func (h *UserHandler) DeleteProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	if err := h.userService.DeleteProfile(userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(200, gin.H{"message": "User deleted successfully"})
}

// SetAdmin toggles the admin flag on the account with the given email.
// Admin only.
func (h *UserHandler) SetAdmin(c *gin.Context) {
	var req SetAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, err := h.userService.ToggleAdmin(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(200, gin.H{
		"message":     "Admin status updated",
		"updatedUser": user,
	})
}
