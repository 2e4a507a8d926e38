package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plazanorte/directory-api/internal/dto"
	"github.com/plazanorte/directory-api/internal/service"
)

// LeadsHandler exposes the lead and contact form endpoints.
type LeadsHandler struct {
	service *service.LeadService
}

// NewLeadsHandler creates a new handler instance.
func NewLeadsHandler(service *service.LeadService) *LeadsHandler {
	return &LeadsHandler{service: service}
}

// SubmitLead handles POST /api/leads.
func (h *LeadsHandler) SubmitLead(c echo.Context) error {
	var req dto.LeadRequest
	if err := c.Bind(&req); err != nil {
		return ErrorCode(c, http.StatusBadRequest, "invalid_payload", "invalid request body")
	}

	lead, err := h.service.SubmitLead(c.Request().Context(), req)
	if err != nil {
		var verr service.ValidationError
		if errors.As(err, &verr) {
			return ErrorCode(c, http.StatusBadRequest, "invalid_payload", verr.Message)
		}
		log.Printf("submit lead failed: %v", err)
		return Error(c, http.StatusInternalServerError, "failed to store lead")
	}
	return Success(c, http.StatusCreated, "lead received", lead)
}

// SubmitContact handles POST /api/contact.
func (h *LeadsHandler) SubmitContact(c echo.Context) error {
	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return ErrorCode(c, http.StatusBadRequest, "invalid_payload", "invalid request body")
	}

	msg, err := h.service.SubmitContact(c.Request().Context(), req)
	if err != nil {
		var verr service.ValidationError
		if errors.As(err, &verr) {
			return ErrorCode(c, http.StatusBadRequest, "invalid_payload", verr.Message)
		}
		log.Printf("submit contact failed: %v", err)
		return Error(c, http.StatusInternalServerError, "failed to store message")
	}
	return Success(c, http.StatusCreated, "message received", msg)
}
