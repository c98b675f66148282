package token

import (
	"errors"
	"fmt"
	"time"

	"sendaboop-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Validity is how long a verification token can be redeemed after issue
const Validity = 24 * time.Hour

var (
	// ErrExpired means the signature verified but the token is past its expiry
	ErrExpired = errors.New("token expired")
	// ErrInvalid means the signature failed or the payload is malformed
	ErrInvalid = errors.New("invalid token")
)

// Claims is the signed payload of a verification token: the full pending
// boop plus the registered temporal claims. The jti is the replay key.
type Claims struct {
	Dog            models.Dog `json:"dog"`
	SenderName     string     `json:"senderName"`
	SenderEmail    string     `json:"senderEmail"`
	RecipientName  string     `json:"recipientName"`
	RecipientEmail string     `json:"recipientEmail"`
	Message        string     `json:"message,omitempty"`
	jwt.RegisteredClaims
}

// Boop returns the pending send carried by the token
func (c *Claims) Boop() models.SendBoopRequest {
	return models.SendBoopRequest{
		Dog:            c.Dog,
		SenderName:     c.SenderName,
		SenderEmail:    c.SenderEmail,
		RecipientName:  c.RecipientName,
		RecipientEmail: c.RecipientEmail,
		Message:        c.Message,
	}
}

// checkShape validates required claims after the signature has verified.
// No field is trusted before this passes.
func (c *Claims) checkShape() error {
	switch {
	case c.ID == "":
		return errors.New("missing jti")
	case c.ExpiresAt == nil:
		return errors.New("missing exp")
	case c.IssuedAt == nil:
		return errors.New("missing iat")
	case c.Dog.ID == "" || c.Dog.URL == "":
		return errors.New("missing dog")
	case c.SenderName == "" || c.SenderEmail == "":
		return errors.New("missing sender")
	case c.RecipientName == "" || c.RecipientEmail == "":
		return errors.New("missing recipient")
	}
	return nil
}

// Codec signs and verifies verification tokens
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec creates a codec signing with the given shared secret
func NewCodec(secret string) *Codec {
	return &Codec{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue signs the pending boop into a compact URL-safe token and returns
// the token along with its fresh jti. The caller must have validated the
// request fields already.
func (c *Codec) Issue(req models.SendBoopRequest) (string, string, error) {
	tokenID := uuid.New().String()
	now := c.now()

	claims := Claims{
		Dog:            req.Dog,
		SenderName:     req.SenderName,
		SenderEmail:    req.SenderEmail,
		RecipientName:  req.RecipientName,
		RecipientEmail: req.RecipientEmail,
		Message:        req.Message,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Validity)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, tokenID, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Expiry is detected structurally from the exp claim, never by matching
// error text. Whether the token was already redeemed is the caller's
// concern; the codec does not see the used-token registry.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalid
	}

	if err := claims.checkShape(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return claims, nil
}
