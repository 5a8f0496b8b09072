package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vinyl-store/internal/config"
	"vinyl-store/internal/models"
)

type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	cost := s.cfg.Security.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// Authenticate verifies local credentials and returns the user. Accounts
// created through OAuth have no password hash and cannot log in locally.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := models.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" || !s.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// FindOrCreate returns the account for the given email, creating it from
// the OAuth profile data on first login. An existing account's profile is
// not overwritten.
func (s *AuthService) FindOrCreate(email, firstName, lastName, avatar string) (*models.User, error) {
	var user models.User
	err := models.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Avatar:    avatar,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateDefaultAdmin seeds the configured admin account when the users
// table is empty, so a fresh deployment has an administrator before the
// first OAuth login.
func (s *AuthService) CreateDefaultAdmin() error {
	if s.cfg.DefaultAdmin.Email == "" {
		return nil
	}

	var count int64
	models.DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := s.HashPassword(s.cfg.DefaultAdmin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        s.cfg.DefaultAdmin.Email,
		PasswordHash: hashedPassword,
		IsAdmin:      true,
	}
	return models.DB.Create(admin).Error
}

// GenerateToken generates a JWT token for the user
func (s *AuthService) GenerateToken(user *models.User) (string, time.Time, error) {
	expiresIn, err := time.ParseDuration(s.cfg.JWT.ExpiresIn)
	if err != nil {
		expiresIn = 24 * time.Hour
	}

	expiresAt := time.Now().Add(expiresIn)

	claims := jwt.MapClaims{
		"sub":     user.ID,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
		"iss":     s.cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}
