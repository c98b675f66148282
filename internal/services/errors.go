package services

import (
	"errors"
	"fmt"
)

// ErrTokenAlreadyUsed means the token's jti was already redeemed
var ErrTokenAlreadyUsed = errors.New("token already used")

// ValidationError reports a rejected input field. It is returned before
// any token is issued or email sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DeliveryError reports a failed handoff to the email transport
type DeliveryError struct {
	Op  string // which send failed: "verification", "recipient", "contact"
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to send %s email: %v", e.Op, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
