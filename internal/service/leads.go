package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/plazanorte/directory-api/internal/dto"
	"github.com/plazanorte/directory-api/internal/entity"
	"github.com/plazanorte/directory-api/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)

const defaultPhoneRegion = "BR"

// ValidationError indicates that a submitted form payload is invalid.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// LeadService validates and persists lead and contact submissions.
type LeadService struct {
	repo   repository.LeadsRepository
	region string
	now    func() time.Time
}

// NewLeadService creates a new instance of LeadService.
func NewLeadService(repo repository.LeadsRepository) *LeadService {
	return &LeadService{repo: repo, region: defaultPhoneRegion, now: time.Now}
}

// SubmitLead validates the payload and stores a new lead.
func (s *LeadService) SubmitLead(ctx context.Context, req dto.LeadRequest) (*entity.Lead, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ValidationError{Message: "name is required"}
	}
	email, err := cleanEmail(req.Email)
	if err != nil {
		return nil, err
	}

	lead := &entity.Lead{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     normalizePhone(req.Phone, s.region),
		Company:   strings.TrimSpace(req.Company),
		Message:   strings.TrimSpace(req.Message),
		Source:    strings.TrimSpace(req.Source),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.InsertLead(ctx, lead); err != nil {
		return nil, fmt.Errorf("store lead: %w", err)
	}
	return lead, nil
}

// SubmitContact validates the payload and stores a new contact message.
func (s *LeadService) SubmitContact(ctx context.Context, req dto.ContactRequest) (*entity.ContactMessage, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ValidationError{Message: "name is required"}
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ValidationError{Message: "message is required"}
	}
	email, err := cleanEmail(req.Email)
	if err != nil {
		return nil, err
	}

	msg := &entity.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Subject:   strings.TrimSpace(req.Subject),
		Message:   message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.InsertContact(ctx, msg); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}
	return msg, nil
}

func cleanEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", ValidationError{Message: "email is required"}
	}
	if !emailPattern.MatchString(email) {
		return "", ValidationError{Message: "email is invalid"}
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	if ascii, err := idna.Lookup.ToASCII(domain); err != nil || ascii == "" {
		return "", ValidationError{Message: "email domain is invalid"}
	}
	return email, nil
}

// normalizePhone formats parseable numbers as E.164; anything else is stored
// as submitted. Phones are optional on lead forms.
func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return raw
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
