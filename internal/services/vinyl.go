package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vinyl-store/internal/models"
)

type VinylService struct{}

func NewVinylService() *VinylService {
	return &VinylService{}
}

// VinylQuery is the parsed listing query; Page is 1-based.
type VinylQuery struct {
	Page       int
	Limit      int
	Name       string
	AuthorName string
	SortBy     string
	SortOrder  string
}

// sortColumns is the allow-list of sortable fields.
var sortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"authorName": "author_name",
	"price":      "price",
}

// List returns a page of the catalog. Name and author filters combine as
// LIKE substring conditions. Each vinyl carries a one-review preview; when
// the caller is authenticated (userID != 0) the preview skips the caller's
// own review.
func (s *VinylService) List(query VinylQuery, userID uint) ([]models.Vinyl, error) {
	tx := models.DB.Model(&models.Vinyl{}).Preload("Reviews")

	if query.Name != "" {
		tx = tx.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.AuthorName != "" {
		tx = tx.Where("author_name LIKE ?", "%"+query.AuthorName+"%")
	}

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = "id"
	}
	order := "ASC"
	if query.SortOrder == "DESC" {
		order = "DESC"
	}
	tx = tx.Order(fmt.Sprintf("%s %s", column, order))

	offset := (query.Page - 1) * query.Limit

	var vinyls []models.Vinyl
	if err := tx.Offset(offset).Limit(query.Limit).Find(&vinyls).Error; err != nil {
		return nil, err
	}

	for i := range vinyls {
		vinyls[i].Reviews = reviewPreview(vinyls[i].Reviews, userID)
	}

	return vinyls, nil
}

// reviewPreview keeps at most one review, excluding the viewer's own.
func reviewPreview(reviews []models.Review, userID uint) []models.Review {
	preview := make([]models.Review, 0, 1)
	for _, review := range reviews {
		if userID != 0 && review.UserID == userID {
			continue
		}
		preview = append(preview, review)
		break
	}
	return preview
}

type CreateVinylData struct {
	Name        string
	AuthorName  string
	Description string
	Price       float64
	ImageURL    string
}

func (s *VinylService) Create(data CreateVinylData) (*models.Vinyl, error) {
	vinyl := &models.Vinyl{
		Name:        data.Name,
		AuthorName:  data.AuthorName,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
	}
	if err := models.DB.Create(vinyl).Error; err != nil {
		return nil, err
	}
	return vinyl, nil
}

// UpdateVinylData carries the optional fields; nil means unchanged.
type UpdateVinylData struct {
	Name        *string
	AuthorName  *string
	Description *string
	Price       *float64
	ImageURL    *string
}

func (s *VinylService) Update(id uint, data UpdateVinylData) (*models.Vinyl, error) {
	var vinyl models.Vinyl
	if err := models.DB.First(&vinyl, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVinylNotFound
		}
		return nil, err
	}

	if data.Name != nil {
		vinyl.Name = *data.Name
	}
	if data.AuthorName != nil {
		vinyl.AuthorName = *data.AuthorName
	}
	if data.Description != nil {
		vinyl.Description = *data.Description
	}
	if data.Price != nil {
		vinyl.Price = *data.Price
	}
	if data.ImageURL != nil {
		vinyl.ImageURL = *data.ImageURL
	}

	if err := models.DB.Save(&vinyl).Error; err != nil {
		return nil, err
	}

	return &vinyl, nil
}

func (s *VinylService) Delete(id uint) error {
	var vinyl models.Vinyl
	if err := models.DB.First(&vinyl, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVinylNotFound
		}
		return err
	}

	result := models.DB.Delete(&vinyl)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVinylNotFound
	}

	return nil
}

// FindByID returns the catalog row.
func (s *VinylService) FindByID(id uint) (*models.Vinyl, error) {
	var vinyl models.Vinyl
	if err := models.DB.First(&vinyl, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVinylNotFound
		}
		return nil, err
	}
	return &vinyl, nil
}
