package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// MockGateway accepts every charge and fabricates a transaction id. Used
// when no Stripe key is configured (local development) and by tests.
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) Charge(_ context.Context, _ ChargeRequest) (*ChargeResult, error) {
	return &ChargeResult{
		TransactionID: fmt.Sprintf("pi_mock_%s", uuid.New().String()[:8]),
	}, nil
}
