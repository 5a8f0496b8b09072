// Package payment wraps the external payment gateway behind a small
// interface so the purchase flow can be exercised without network access.
package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// ChargeRequest describes a synchronous charge. Amount is expressed in minor
// currency units (cents).
type ChargeRequest struct {
	AmountMinor  int64
	Currency     string
	Description  string
	ReceiptEmail string
	Metadata     map[string]string
}

// ChargeResult carries the gateway transaction identifier.
type ChargeResult struct {
	TransactionID string
}

// Gateway charges a fixed payment method and confirms synchronously. There
// is no retry and no compensation path; a failure propagates to the caller.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// MinorUnits converts a price and quantity to minor currency units without
// accumulating float error (19.99 * 100 is not representable exactly as a
// float64).
func MinorUnits(price float64, count int) int64 {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(int64(count))).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
