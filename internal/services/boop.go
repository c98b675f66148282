package services

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"unicode/utf8"

	"sendaboop-backend/internal/email"
	"sendaboop-backend/internal/models"
	"sendaboop-backend/internal/registry"
	"sendaboop-backend/internal/token"

	"github.com/rs/zerolog/log"
)

const maxMessageLength = 280

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BoopService implements the double-opt-in boop flow: a sender's request
// produces a verification email, and only redeeming the emailed token
// delivers the boop to the recipient.
type BoopService struct {
	codec   *token.Codec
	used    registry.Store
	mailer  email.Sender
	baseURL string
}

// NewBoopService creates a new boop service
func NewBoopService(codec *token.Codec, used registry.Store, mailer email.Sender, baseURL string) *BoopService {
	return &BoopService{
		codec:   codec,
		used:    used,
		mailer:  mailer,
		baseURL: baseURL,
	}
}

// ConfirmResult is what the UI needs to render the success screen
type ConfirmResult struct {
	RecipientName string
	DogID         string
}

// RequestSend validates the submitted boop, wraps it in a verification
// token and emails the verification link to the sender. Nothing reaches
// the recipient yet, and the token is not revealed to the caller.
func (s *BoopService) RequestSend(ctx context.Context, req models.SendBoopRequest) error {
	if err := validateBoop(req); err != nil {
		return err
	}

	signed, tokenID, err := s.codec.Issue(req)
	if err != nil {
		return fmt.Errorf("failed to create verification token: %w", err)
	}

	verificationURL := fmt.Sprintf("%s/verify?token=%s", s.baseURL, url.QueryEscape(signed))
	subject := fmt.Sprintf("Verify your boop to %s", req.RecipientName)

	if err := s.mailer.Send(ctx, req.SenderEmail, subject, email.VerificationEmail(req, verificationURL)); err != nil {
		return &DeliveryError{Op: "verification", Err: err}
	}

	log.Info().
		Str("token_id", tokenID).
		Str("dog_id", req.Dog.ID).
		Msg("Verification email sent")

	return nil
}

// ConfirmSend redeems a verification token and delivers the boop.
//
// The ordering is the crux: after the token verifies, the jti is claimed
// in the registry with a single insert-if-absent before any email goes
// out, so two racing redemptions cannot both pass. A failed recipient
// delivery removes the jti again so the still-unexpired token can be
// retried. The sender confirmation afterwards is best effort only.
func (s *BoopService) ConfirmSend(ctx context.Context, signed string) (*ConfirmResult, error) {
	claims, err := s.codec.Verify(signed)
	if err != nil {
		return nil, err
	}

	inserted, err := s.used.Add(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark token used: %w", err)
	}
	if !inserted {
		return nil, ErrTokenAlreadyUsed
	}

	boop := claims.Boop()

	subject := fmt.Sprintf("%s sent you a Boop! 🐾", boop.SenderName)
	if err := s.mailer.Send(ctx, boop.RecipientEmail, subject, email.RecipientEmail(boop)); err != nil {
		// Roll back the commit so the sender can retry with the same token
		if rmErr := s.used.Remove(ctx, claims.ID); rmErr != nil {
			log.Error().Err(rmErr).Str("token_id", claims.ID).Msg("Failed to roll back used token")
		}
		return nil, &DeliveryError{Op: "recipient", Err: err}
	}

	confirmSubject := fmt.Sprintf("Your Boop to %s was sent! 🎉", boop.RecipientName)
	if err := s.mailer.Send(ctx, boop.SenderEmail, confirmSubject, email.SenderConfirmationEmail(boop)); err != nil {
		// The recipient already got their boop; never fail or roll back here
		log.Warn().Err(err).Str("token_id", claims.ID).Msg("Failed to send sender confirmation")
	}

	log.Info().
		Str("token_id", claims.ID).
		Str("dog_id", boop.Dog.ID).
		Msg("Boop delivered")

	return &ConfirmResult{
		RecipientName: boop.RecipientName,
		DogID:         boop.Dog.ID,
	}, nil
}

func validateBoop(req models.SendBoopRequest) error {
	switch {
	case req.Dog.ID == "" || req.Dog.URL == "":
		return &ValidationError{Field: "dog", Message: "Missing required fields"}
	case req.SenderName == "":
		return &ValidationError{Field: "senderName", Message: "Missing required fields"}
	case req.SenderEmail == "":
		return &ValidationError{Field: "senderEmail", Message: "Missing required fields"}
	case req.RecipientName == "":
		return &ValidationError{Field: "recipientName", Message: "Missing required fields"}
	case req.RecipientEmail == "":
		return &ValidationError{Field: "recipientEmail", Message: "Missing required fields"}
	}

	if !emailPattern.MatchString(req.SenderEmail) {
		return &ValidationError{Field: "senderEmail", Message: "Invalid email format"}
	}
	if !emailPattern.MatchString(req.RecipientEmail) {
		return &ValidationError{Field: "recipientEmail", Message: "Invalid email format"}
	}

	if utf8.RuneCountInString(req.Message) > maxMessageLength {
		return &ValidationError{Field: "message", Message: "Message is too long"}
	}

	return nil
}
