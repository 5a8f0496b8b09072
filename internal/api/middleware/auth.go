package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"vinyl-store/internal/config"
	"vinyl-store/internal/models"
	"vinyl-store/internal/sessions"
)

// AuthMiddleware validates the bearer token and requires a live session in
// the registry. A token that is still cryptographically valid is rejected
// once its account has logged out.
func AuthMiddleware(cfg *config.Config, registry sessions.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := authenticate(c, cfg, registry)
		if !ok {
			c.JSON(401, gin.H{"error": "User is not authorized"})
			c.Abort()
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// OptionalAuthMiddleware authenticates when it can and continues
// anonymously otherwise.
func OptionalAuthMiddleware(cfg *config.Config, registry sessions.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if principal, ok := authenticate(c, cfg, registry); ok {
			setPrincipal(c, principal)
		}
		c.Next()
	}
}

// RequireAdmin re-reads the account row so a freshly revoked admin flag
// takes effect immediately, token claims notwithstanding.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var user models.User
		if err := models.DB.First(&user, userID).Error; err != nil || !user.IsAdmin {
			c.JSON(403, gin.H{"error": "Only admins are allowed to access this route"})
			c.Abort()
			return
		}

		c.Next()
	}
}

type principal struct {
	UserID  uint
	Email   string
	IsAdmin bool
}

func setPrincipal(c *gin.Context, p principal) {
	c.Set("user_id", p.UserID)
	c.Set("email", p.Email)
	c.Set("is_admin", p.IsAdmin)
}

func authenticate(c *gin.Context, cfg *config.Config, registry sessions.Registry) (principal, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return principal{}, false
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return principal{}, false
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWT.Secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return principal{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return principal{}, false
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return principal{}, false
	}
	userID := uint(sub)

	// Valid token, but the session must still be registered as active.
	session, err := registry.Find(c.Request.Context(), userID)
	if err != nil || session == nil {
		return principal{}, false
	}

	email, _ := claims["email"].(string)
	isAdmin, _ := claims["isAdmin"].(bool)

	return principal{UserID: userID, Email: email, IsAdmin: isAdmin}, true
}
