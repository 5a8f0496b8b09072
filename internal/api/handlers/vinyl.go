package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"vinyl-store/internal/services"
)

type VinylHandler struct {
	vinylService *services.VinylService
}

func NewVinylHandler() *VinylHandler {
	return &VinylHandler{vinylService: services.NewVinylService()}
}

type CreateVinylRequest struct {
	Name        string   `json:"name" binding:"required"`
	AuthorName  string   `json:"authorName" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	ImageURL    string   `json:"image"`
}

type UpdateVinylRequest struct {
	Name        *string  `json:"name"`
	AuthorName  *string  `json:"authorName"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	ImageURL    *string  `json:"image"`
}

// List returns a page of the catalog. Anonymous callers get a larger
// default page size than authenticated ones.
func (h *VinylHandler) List(c *gin.Context) {
	_, authenticated := c.Get("user_id")

	query := services.VinylQuery{
		Page:       1,
		Limit:      1000,
		Name:       c.Query("name"),
		AuthorName: c.Query("authorName"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  "ASC",
	}
	if authenticated || query.Name != "" || query.AuthorName != "" {
		query.Limit = 10
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		query.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		query.Limit = limit
	}
	if strings.EqualFold(c.Query("sortOrder"), "DESC") {
		query.SortOrder = "DESC"
	}

	viewerID := c.GetUint("user_id")
	vinyls, err := h.vinylService.List(query, viewerID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to list vinyl records"})
		return
	}

	c.JSON(200, vinyls)
}

func (h *VinylHandler) Create(c *gin.Context) {
	var req CreateVinylRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	vinyl, err := h.vinylService.Create(services.CreateVinylData{
		Name:        req.Name,
		AuthorName:  req.AuthorName,
		Description: req.Description,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create vinyl record"})
		return
	}

	c.JSON(201, vinyl)
}

func (h *VinylHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	var req UpdateVinylRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	vinyl, err := h.vinylService.Update(id, services.UpdateVinylData{
		Name:        req.Name,
		AuthorName:  req.AuthorName,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrVinylNotFound) {
			c.JSON(404, gin.H{"error": "Vinyl record not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to update vinyl record"})
		return
	}

	c.JSON(200, vinyl)
}

func (h *VinylHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	if err := h.vinylService.Delete(id); err != nil {
		if errors.Is(err, services.ErrVinylNotFound) {
			c.JSON(404, gin.H{"error": "Vinyl record not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to delete vinyl record"})
		return
	}

	c.JSON(200, gin.H{"message": "Vinyl record deleted successfully"})
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid id"})
		return 0, err
	}
	return uint(id), nil
}
