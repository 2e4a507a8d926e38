package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plazanorte/directory-api/internal/dto"
	middlewarepkg "github.com/plazanorte/directory-api/internal/middleware"
	"github.com/plazanorte/directory-api/internal/service"
)

// CheckoutHandler exposes the checkout pass-through endpoint.
type CheckoutHandler struct {
	service *service.CheckoutService
}

// NewCheckoutHandler creates a new handler instance.
func NewCheckoutHandler(service *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// Create handles POST /api/checkout.
func (h *CheckoutHandler) Create(c echo.Context) error {
	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return ErrorCode(c, http.StatusBadRequest, "invalid_payload", "invalid request body")
	}

	session, err := h.service.CreateSession(c.Request().Context(), req, middlewarepkg.RequestIDFromContext(c))
	if err != nil {
		var verr service.ValidationError
		if errors.As(err, &verr) {
			return ErrorCode(c, http.StatusBadRequest, "invalid_payload", verr.Message)
		}
		log.Printf("create checkout session failed: %v", err)
		return Error(c, http.StatusBadGateway, "payment provider unavailable")
	}
	return Success(c, http.StatusCreated, "checkout session created", session)
}
