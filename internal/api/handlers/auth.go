package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vinyl-store/internal/config"
	"vinyl-store/internal/models"
	"vinyl-store/internal/oauth"
	"vinyl-store/internal/services"
	"vinyl-store/internal/sessions"
)

type AuthHandler struct {
	authService *services.AuthService
	registry    sessions.Registry
	google      *oauth.GoogleProvider
	cfg         *config.Config
}

func NewAuthHandler(cfg *config.Config, registry sessions.Registry) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(cfg),
		registry:    registry,
		google:      oauth.NewGoogleProvider(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL),
		cfg:         cfg,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLogin redirects to the Google consent screen.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie("oauth_state", state, 600, "/", "", false, true)
	c.Redirect(302, h.google.AuthURL(state))
}

// GoogleCallback exchanges the authorization code, finds or creates the
// account and returns a bearer token.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(400, gin.H{"error": "Missing authorization code"})
		return
	}

	expectedState, err := c.Cookie("oauth_state")
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(401, gin.H{"error": "Invalid OAuth state"})
		return
	}

	accessToken, err := h.google.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(401, gin.H{"error": "OAuth code exchange failed"})
		return
	}

	profile, err := h.google.FetchProfile(c.Request.Context(), accessToken)
	if err != nil {
		c.JSON(401, gin.H{"error": "Failed to fetch Google profile"})
		return
	}

	user, err := h.authService.FindOrCreate(profile.Email, profile.FirstName, profile.LastName, profile.Avatar)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create user"})
		return
	}

	h.completeLogin(c, user)
}

// Login authenticates a locally created account by email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, err := h.authService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid credentials"})
		return
	}

	h.completeLogin(c, user)
}

// Logout ends the caller's session; the bearer token stops working even
// though it has not expired.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetUint("user_id")

	if err := h.registry.Remove(c.Request.Context(), userID); err != nil {
		c.JSON(500, gin.H{"error": "Failed to logout"})
		return
	}

	c.JSON(200, gin.H{"message": "Logged out successfully"})
}

// ActiveUsers lists the currently registered sessions.
func (h *AuthHandler) ActiveUsers(c *gin.Context) {
	active, err := h.registry.All(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to list active users"})
		return
	}

	c.JSON(200, active)
}

func (h *AuthHandler) completeLogin(c *gin.Context, user *models.User) {
	// Keep the original login time when the account is already active.
	existing, err := h.registry.Find(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to register session"})
		return
	}
	if existing == nil {
		session := sessions.Session{
			UserID:     user.ID,
			Email:      user.Email,
			IsAdmin:    user.IsAdmin,
			LoggedInAt: time.Now(),
		}
		if err := h.registry.Add(c.Request.Context(), session); err != nil {
			c.JSON(500, gin.H{"error": "Failed to register session"})
			return
		}
	}

	token, _, err := h.authService.GenerateToken(user)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(200, gin.H{
		"accessToken": token,
		"message":     "Login successful",
		"isAdmin":     user.IsAdmin,
	})
}
