package models

import (
	"time"
)

// Review holds one rating/comment per (user, vinyl) pair; the composite
// unique index backs the upsert semantics.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Rating    int       `json:"rating" gorm:"not null"` // 1-10
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_reviews_user_vinyl"`
	VinylID   uint      `json:"vinylId" gorm:"not null;uniqueIndex:idx_reviews_user_vinyl"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Vinyl     *Vinyl    `json:"vinyl,omitempty" gorm:"foreignKey:VinylID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
