package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"vinyl-store/internal/config"
	"vinyl-store/internal/events"
	"vinyl-store/internal/models"
	"vinyl-store/internal/payment"
	"vinyl-store/internal/util"
)

// PurchaseService runs the purchase flow: validate, record in the ledger,
// charge the gateway, emit the purchase-completed event.
type PurchaseService struct {
	cfg     *config.Config
	gateway payment.Gateway
	bus     *events.Bus
	logger  *zap.Logger
}

func NewPurchaseService(cfg *config.Config, gateway payment.Gateway, bus *events.Bus) *PurchaseService {
	return &PurchaseService{
		cfg:     cfg,
		gateway: gateway,
		bus:     bus,
		logger:  util.GetLogger(),
	}
}

type PurchaseResult struct {
	Message         string `json:"message"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// Purchase buys count copies of a vinyl for the account. The ledger is
// updated before the gateway is charged and is not rolled back on a gateway
// failure; that ordering is long-standing behavior and is pinned by tests.
func (s *PurchaseService) Purchase(ctx context.Context, userID, vinylID uint, count int) (*PurchaseResult, error) {
	var vinyl models.Vinyl
	if err := models.DB.First(&vinyl, vinylID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVinylNotFound
		}
		return nil, err
	}

	totalPrice := vinyl.Price * float64(count)

	if err := s.updateLedger(userID, &vinyl, count); err != nil {
		return nil, err
	}

	var user models.User
	if err := models.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	util.PaymentAttemptsTotal.Inc()

	result, err := s.gateway.Charge(ctx, payment.ChargeRequest{
		AmountMinor:  payment.MinorUnits(vinyl.Price, count),
		Currency:     s.cfg.Stripe.Currency,
		Description:  fmt.Sprintf("Payment for vinyl %s", vinyl.Name),
		ReceiptEmail: user.Email,
		Metadata: map[string]string{
			"vinylId": strconv.FormatUint(uint64(vinylID), 10),
			"userId":  strconv.FormatUint(uint64(userID), 10),
		},
	})
	if err != nil {
		util.PaymentFailedTotal.Inc()
		return nil, fmt.Errorf("payment gateway charge: %w", err)
	}

	util.PurchasesTotal.Inc()

	s.logger.Info("vinyl purchased",
		zap.Uint("user_id", userID),
		zap.Uint("vinyl_id", vinylID),
		zap.Int("count", count),
		zap.Float64("total_price", totalPrice),
		zap.String("payment_intent", result.TransactionID))

	s.bus.PublishPurchaseCompleted(events.PurchaseCompleted{
		User:       user,
		VinylName:  vinyl.Name,
		Count:      count,
		TotalPrice: totalPrice,
	})

	return &PurchaseResult{
		Message:         "Vinyl purchased successfully",
		PaymentIntentID: result.TransactionID,
	}, nil
}

// updateLedger merges the purchase into the (user, vinyl) row, creating it
// on first purchase. MoneySpent is recomputed from the current price for
// the whole accumulated amount, so a price change rewrites the historical
// total as well; deliberate behavior, see the Purchase model.
func (s *PurchaseService) updateLedger(userID uint, vinyl *models.Vinyl, count int) error {
	var user models.User
	if err := models.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	var purchase models.Purchase
	err := models.DB.Where("user_id = ? AND vinyl_id = ?", userID, vinyl.ID).First(&purchase).Error
	switch {
	case err == nil:
		purchase.Amount += count
		purchase.MoneySpent = vinyl.Price * float64(purchase.Amount)
		return models.DB.Save(&purchase).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		purchase = models.Purchase{
			UserID:     userID,
			VinylID:    vinyl.ID,
			Amount:     count,
			MoneySpent: vinyl.Price * float64(count),
		}
		return models.DB.Create(&purchase).Error
	default:
		return err
	}
}
