package repository

import (
	"context"
	"fmt"

	"github.com/plazanorte/directory-api/internal/entity"
)

// LeadsRepository persists lead and contact form submissions, the only write
// path of the API.
type LeadsRepository interface {
	InsertLead(ctx context.Context, lead *entity.Lead) error
	InsertContact(ctx context.Context, msg *entity.ContactMessage) error
}

// MySQLLeadsRepository implements LeadsRepository over the MySQL pool.
type MySQLLeadsRepository struct {
	db Querier
}

// NewMySQLLeadsRepository wires a MySQL backed repository.
func NewMySQLLeadsRepository(db Querier) *MySQLLeadsRepository {
	return &MySQLLeadsRepository{db: db}
}

// InsertLead stores one lead submission.
func (r *MySQLLeadsRepository) InsertLead(ctx context.Context, lead *entity.Lead) error {
	if lead == nil {
		return fmt.Errorf("lead payload is nil")
	}
	err := r.db.Exec(ctx,
		"INSERT INTO leads (id, name, email, phone, company, message, source, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Company, lead.Message, lead.Source, lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// InsertContact stores one contact message.
func (r *MySQLLeadsRepository) InsertContact(ctx context.Context, msg *entity.ContactMessage) error {
	if msg == nil {
		return fmt.Errorf("contact payload is nil")
	}
	err := r.db.Exec(ctx,
		"INSERT INTO contact_messages (id, name, email, subject, message, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
