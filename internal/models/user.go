package models

import (
	"time"
)

type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"type:varchar(255)"` // empty for OAuth-only accounts
	FirstName    string     `json:"firstName" gorm:"type:varchar(255)"`
	LastName     string     `json:"lastName" gorm:"type:varchar(255)"`
	BirthDate    string     `json:"birthDate" gorm:"type:date"`
	Avatar       string     `json:"avatar" gorm:"type:varchar(500)"`
	IsAdmin      bool       `json:"isAdmin" gorm:"default:false"`
	Reviews      []Review   `json:"reviews,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Purchases    []Purchase `json:"purchases,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
