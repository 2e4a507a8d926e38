package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/plazanorte/directory-api/internal/dto"
)

// HTTPPaymentClient posts checkout sessions to the payment provider.
type HTTPPaymentClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewHTTPPaymentClient builds a payment client with a bounded default client.
func NewHTTPPaymentClient(client *http.Client, baseURL, apiKey string) *HTTPPaymentClient {
	if baseURL == "" {
		panic("payment baseURL must not be empty")
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPPaymentClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// CreateCheckout posts the checkout payload and decodes the session response.
func (c *HTTPPaymentClient) CreateCheckout(ctx context.Context, payload dto.CheckoutRequest, requestID string) (dto.CheckoutSession, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return dto.CheckoutSession{}, fmt.Errorf("failed to marshal checkout payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return dto.CheckoutSession{}, fmt.Errorf("failed to create provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return dto.CheckoutSession{}, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return dto.CheckoutSession{}, fmt.Errorf("provider error: %s", extractProviderError(resp.Body))
	}

	var session dto.CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil && err != io.EOF {
		return dto.CheckoutSession{}, fmt.Errorf("could not decode provider response: %w", err)
	}
	if session.CheckoutURL == "" {
		return dto.CheckoutSession{}, fmt.Errorf("provider returned no checkout url")
	}
	return session, nil
}

func extractProviderError(body io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return "unexpected provider response"
}
