package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/plazanorte/directory-api/internal/dto"
)

// PaymentClient abstracts the external payment provider. The checkout flow is
// a thin pass-through; session creation and webhooks live provider-side.
type PaymentClient interface {
	CreateCheckout(ctx context.Context, req dto.CheckoutRequest, requestID string) (dto.CheckoutSession, error)
}

// CheckoutService validates checkout requests before handing them to the
// payment provider.
type CheckoutService struct {
	client PaymentClient
}

// NewCheckoutService creates a new instance of CheckoutService.
func NewCheckoutService(client PaymentClient) *CheckoutService {
	return &CheckoutService{client: client}
}

// CreateSession validates and forwards a checkout request.
func (s *CheckoutService) CreateSession(ctx context.Context, req dto.CheckoutRequest, requestID string) (dto.CheckoutSession, error) {
	if strings.TrimSpace(req.PlanID) == "" {
		return dto.CheckoutSession{}, ValidationError{Message: "planId is required"}
	}
	if strings.TrimSpace(req.Customer.Name) == "" {
		return dto.CheckoutSession{}, ValidationError{Message: "customer name is required"}
	}
	if _, err := cleanEmail(req.Customer.Email); err != nil {
		return dto.CheckoutSession{}, err
	}

	session, err := s.client.CreateCheckout(ctx, req, requestID)
	if err != nil {
		return dto.CheckoutSession{}, fmt.Errorf("create checkout session: %w", err)
	}
	return session, nil
}
