package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"vinyl-store/internal/services"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler() *ReviewHandler {
	return &ReviewHandler{reviewService: services.NewReviewService()}
}

type CreateReviewRequest struct {
	VinylID uint   `json:"vinylId" binding:"required,min=1"`
	Rating  int    `json:"rating" binding:"required,min=1,max=10"`
	Comment string `json:"comment" binding:"required"`
}

// Create adds a review, or replaces the caller's previous review of the
// same record.
func (h *ReviewHandler) Create(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	review, err := h.reviewService.AddOrUpdate(req.VinylID, userID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVinylNotFound):
			c.JSON(404, gin.H{"error": "Vinyl record not found"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(404, gin.H{"error": "User not found"})
		default:
			c.JSON(500, gin.H{"error": "Failed to save review"})
		}
		return
	}

	c.JSON(201, review)
}

func (h *ReviewHandler) ListByVinyl(c *gin.Context) {
	vinylID, err := parseIDParam(c, "vinylId")
	if err != nil {
		return
	}

	reviews, err := h.reviewService.ListByVinyl(vinylID)
	if err != nil {
		if errors.Is(err, services.ErrVinylNotFound) {
			c.JSON(404, gin.H{"error": "Vinyl record not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to list reviews"})
		return
	}

	c.JSON(200, reviews)
}

// Delete removes a review from a record. Admin only. The review must
// belong to the record named in the path.
func (h *ReviewHandler) Delete(c *gin.Context) {
	vinylID, err := parseIDParam(c, "vinylId")
	if err != nil {
		return
	}
	reviewID, err := parseIDParam(c, "reviewId")
	if err != nil {
		return
	}

	if err := h.reviewService.Delete(vinylID, reviewID); err != nil {
		switch {
		case errors.Is(err, services.ErrVinylNotFound):
			c.JSON(404, gin.H{"error": "Vinyl record not found"})
		case errors.Is(err, services.ErrReviewNotFound):
			c.JSON(404, gin.H{"error": "Review not found"})
		default:
			c.JSON(500, gin.H{"error": "Failed to delete review"})
		}
		return
	}

	c.JSON(200, gin.H{"message": "Review deleted successfully"})
}
