package models

import (
	"time"
)

type Vinyl struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"type:varchar(255);not null;index"`
	AuthorName  string  `json:"authorName" gorm:"type:varchar(255);not null;index"`
	Description string  `json:"description" gorm:"type:text;not null"`
	Price       float64 `json:"price" gorm:"not null"`
	ImageURL    string  `json:"imageUrl" gorm:"type:varchar(500)"`
	// AverageScore is a cached aggregate, recomputed after every review
	// mutation; clamped to [0, 9.99] and rounded to two decimals.
	AverageScore float64    `json:"averageScore" gorm:"default:0"`
	Reviews      []Review   `json:"reviews,omitempty" gorm:"foreignKey:VinylID;constraint:OnDelete:CASCADE"`
	PurchasedBy  []Purchase `json:"purchasedBy,omitempty" gorm:"foreignKey:VinylID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
