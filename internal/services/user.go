package services

import (
	"errors"

	"gorm.io/gorm"

	"vinyl-store/internal/models"
)

type UserService struct{}

func NewUserService() *UserService {
	return &UserService{}
}

// ProfileUpdate carries the optional profile fields; nil means unchanged.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	BirthDate *string
	Avatar    *string
}

// GetProfile returns the account with its reviews and purchase history.
func (s *UserService) GetProfile(id uint) (*models.User, error) {
	var user models.User
	if err := models.DB.Preload("Reviews").Preload("Purchases").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial profile update.
func (s *UserService) UpdateProfile(id uint, update ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := models.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.BirthDate != nil {
		user.BirthDate = *update.BirthDate
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}

	if err := models.DB.Save(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// DeleteProfile deletes the account; reviews and purchases go with it via
// the foreign-key cascades.
func (s *UserService) DeleteProfile(id uint) error {
	var user models.User
	if err := models.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return models.DB.Delete(&user).Error
}

// ToggleAdmin flips the admin flag for the account with the given email.
func (s *UserService) ToggleAdmin(email string) (*models.User, error) {
	var user models.User
	if err := models.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.IsAdmin = !user.IsAdmin
	if err := models.DB.Save(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByID returns the bare account row.
func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := models.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
