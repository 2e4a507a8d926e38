package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/plazanorte/directory-api/internal/entity"
	"github.com/plazanorte/directory-api/internal/service"
)

type fakeLeadsRepo struct {
	lead    *entity.Lead
	contact *entity.ContactMessage
	err     error
}

func (f *fakeLeadsRepo) InsertLead(ctx context.Context, lead *entity.Lead) error {
	f.lead = lead
	return f.err
}

func (f *fakeLeadsRepo) InsertContact(ctx context.Context, msg *entity.ContactMessage) error {
	f.contact = msg
	return f.err
}

func postJSON(t *testing.T, handlerFn echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handlerFn(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestLeadsHandler_SubmitLead_Success(t *testing.T) {
	repo := &fakeLeadsRepo{}
	handler := NewLeadsHandler(service.NewLeadService(repo))

	rec := postJSON(t, handler.SubmitLead, "/api/leads",
		`{"name":"Ana","email":"ana@example.com","phone":"(51) 98888-7777","source":"landing"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", rec.Code, rec.Body.String())
	}
	if repo.lead == nil {
		t.Fatalf("expected lead stored")
	}
	if repo.lead.ID == "" {
		t.Fatalf("expected generated id")
	}
	if repo.lead.Phone != "+5551988887777" {
		t.Fatalf("expected phone normalized to E.164, got %q", repo.lead.Phone)
	}
}

func TestLeadsHandler_SubmitLead_InvalidEmail(t *testing.T) {
	repo := &fakeLeadsRepo{}
	handler := NewLeadsHandler(service.NewLeadService(repo))

	rec := postJSON(t, handler.SubmitLead, "/api/leads", `{"name":"Ana","email":"not-an-email"}`)

	if rec.Code != http.StatusBadRequest || decodeCode(t, rec) != "invalid_payload" {
		t.Fatalf("expected 400 invalid_payload, got %d %s", rec.Code, rec.Body.String())
	}
	if repo.lead != nil {
		t.Fatalf("expected nothing stored")
	}
}

func TestLeadsHandler_SubmitContact_Success(t *testing.T) {
	repo := &fakeLeadsRepo{}
	handler := NewLeadsHandler(service.NewLeadService(repo))

	rec := postJSON(t, handler.SubmitContact, "/api/contact",
		`{"name":"Bia","email":"bia@example.com","message":"Olá"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", rec.Code, rec.Body.String())
	}
	if repo.contact == nil || repo.contact.Message != "Olá" {
		t.Fatalf("expected contact stored, got %+v", repo.contact)
	}
}

func TestLeadsHandler_SubmitContact_MissingMessage(t *testing.T) {
	repo := &fakeLeadsRepo{}
	handler := NewLeadsHandler(service.NewLeadService(repo))

	rec := postJSON(t, handler.SubmitContact, "/api/contact", `{"name":"Bia","email":"bia@example.com"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Message != "message is required" {
		t.Fatalf("unexpected message: %q", payload.Message)
	}
}
