package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"vinyl-store/internal/config"
	"vinyl-store/internal/events"
	"vinyl-store/internal/payment"
	"vinyl-store/internal/services"
)

type PaymentHandler struct {
	purchaseService *services.PurchaseService
}

func NewPaymentHandler(cfg *config.Config, gateway payment.Gateway, bus *events.Bus) *PaymentHandler {
	return &PaymentHandler{purchaseService: services.NewPurchaseService(cfg, gateway, bus)}
}

type PurchaseRequest struct {
	VinylID uint `json:"vinylId" binding:"required,min=1"`
	Count   int  `json:"count" binding:"required,min=1"`
}

// Purchase records the purchase and charges the payment gateway.
func (h *PaymentHandler) Purchase(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, err := h.purchaseService.Purchase(c.Request.Context(), userID, req.VinylID, req.Count)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVinylNotFound):
			c.JSON(404, gin.H{"error": "Vinyl record not found"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(404, gin.H{"error": "User not found"})
		default:
			c.JSON(500, gin.H{"error": "Payment failed"})
		}
		return
	}

	c.JSON(201, result)
}
