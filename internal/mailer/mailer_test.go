package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vinyl-store/internal/events"
	"vinyl-store/internal/models"
)

func TestBuildPurchaseConfirmation(t *testing.T) {
	event := events.PurchaseCompleted{
		User:       models.User{Email: "buyer@example.com", FirstName: "Ada"},
		VinylName:  "Kind of Blue",
		Count:      2,
		TotalPrice: 59.98,
	}

	subject, text, html := BuildPurchaseConfirmation(event)

	assert.Equal(t, "Purchase Confirmation for Kind of Blue", subject)

	assert.Contains(t, text, "Kind of Blue")
	assert.Contains(t, text, "2")
	assert.Contains(t, text, "59.98")

	assert.Contains(t, html, "Kind of Blue")
	assert.Contains(t, html, "59.98")
	assert.Contains(t, html, "Ada")
	assert.Contains(t, html, "Purchase Confirmation")
}
