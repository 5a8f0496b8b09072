package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"vinyl-store/internal/models"
)

type ReviewService struct{}

func NewReviewService() *ReviewService {
	return &ReviewService{}
}

// ReviewDisplay is the listing shape: review plus its owner and vinyl ids.
type ReviewDisplay struct {
	ID      uint   `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	UserID  uint   `json:"userId"`
	VinylID uint   `json:"vinylId"`
}

// AddOrUpdate upserts the review keyed by (user, vinyl): an existing review
// keeps its id and gets the new rating and comment. The vinyl's average is
// recomputed afterward.
func (s *ReviewService) AddOrUpdate(vinylID, userID uint, rating int, comment string) (*models.Review, error) {
	var vinyl models.Vinyl
	if err := models.DB.First(&vinyl, vinylID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVinylNotFound
		}
		return nil, err
	}

	var user models.User
	if err := models.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var review models.Review
	err := models.DB.Where("user_id = ? AND vinyl_id = ?", userID, vinylID).First(&review).Error
	switch {
	case err == nil:
		review.Rating = rating
		review.Comment = comment
		if err := models.DB.Save(&review).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		review = models.Review{
			Rating:  rating,
			Comment: comment,
			UserID:  userID,
			VinylID: vinylID,
		}
		if err := models.DB.Create(&review).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.RecomputeAverage(vinylID); err != nil {
		return nil, err
	}

	return &review, nil
}

// ListByVinyl returns all reviews for the vinyl.
func (s *ReviewService) ListByVinyl(vinylID uint) ([]ReviewDisplay, error) {
	var vinyl models.Vinyl
	if err := models.DB.First(&vinyl, vinylID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVinylNotFound
		}
		return nil, err
	}

	var reviews []models.Review
	if err := models.DB.Where("vinyl_id = ?", vinylID).Find(&reviews).Error; err != nil {
		return nil, err
	}

	display := make([]ReviewDisplay, 0, len(reviews))
	for _, review := range reviews {
		display = append(display, ReviewDisplay{
			ID:      review.ID,
			Rating:  review.Rating,
			Comment: review.Comment,
			UserID:  review.UserID,
			VinylID: review.VinylID,
		})
	}
	return display, nil
}

// Delete removes the review with the given id, but only if it belongs to
// the named vinyl. The vinyl's average is recomputed afterward.
func (s *ReviewService) Delete(vinylID, reviewID uint) error {
	var vinyl models.Vinyl
	if err := models.DB.Preload("Reviews").First(&vinyl, vinylID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVinylNotFound
		}
		return err
	}

	var review *models.Review
	for i := range vinyl.Reviews {
		if vinyl.Reviews[i].ID == reviewID {
			review = &vinyl.Reviews[i]
			break
		}
	}
	if review == nil {
		return ErrReviewNotFound
	}

	result := models.DB.Delete(review)
	if result.Error != nil {
		return result.Error
	}
	// Zero rows means the review vanished between lookup and delete.
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}

	return s.RecomputeAverage(vinylID)
}

// RecomputeAverage refreshes the vinyl's cached average score from its
// remaining reviews. With no reviews left the cached value is untouched.
func (s *ReviewService) RecomputeAverage(vinylID uint) error {
	var reviews []models.Review
	if err := models.DB.Where("vinyl_id = ?", vinylID).Find(&reviews).Error; err != nil {
		return err
	}

	if len(reviews) == 0 {
		return nil
	}

	var total int
	for _, review := range reviews {
		total += review.Rating
	}

	average := float64(total) / float64(len(reviews))
	average = math.Min(math.Max(average, 0), 9.99)
	average = math.Round(average*100) / 100

	return models.DB.Model(&models.Vinyl{}).
		Where("id = ?", vinylID).
		Update("average_score", average).Error
}
