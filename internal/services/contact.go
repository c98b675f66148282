package services

import (
	"context"
	"fmt"

	"sendaboop-backend/internal/email"
	"sendaboop-backend/internal/models"
)

// ContactService relays contact form submissions to the site owner
type ContactService struct {
	mailer email.Sender
	to     string
}

// NewContactService creates a new contact service
func NewContactService(mailer email.Sender, to string) *ContactService {
	return &ContactService{
		mailer: mailer,
		to:     to,
	}
}

// Relay validates and forwards one contact form message
func (s *ContactService) Relay(ctx context.Context, msg models.ContactRequest) error {
	switch {
	case msg.Name == "":
		return &ValidationError{Field: "name", Message: "Missing required fields"}
	case msg.Email == "":
		return &ValidationError{Field: "email", Message: "Missing required fields"}
	case msg.Comments == "":
		return &ValidationError{Field: "comments", Message: "Missing required fields"}
	}

	if !emailPattern.MatchString(msg.Email) {
		return &ValidationError{Field: "email", Message: "Invalid email format"}
	}

	subject := fmt.Sprintf("Contact Form: Message from %s", msg.Name)
	if err := s.mailer.Send(ctx, s.to, subject, email.ContactEmail(msg)); err != nil {
		return &DeliveryError{Op: "contact", Err: err}
	}

	return nil
}
