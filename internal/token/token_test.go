package token

import (
	"testing"
	"time"

	"sendaboop-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() models.SendBoopRequest {
	return models.SendBoopRequest{
		Dog: models.Dog{
			ID:  "corgi",
			URL: "https://example.com/corgi.jpg",
			Alt: "Adorable corgi looking at camera",
		},
		SenderName:     "Alice",
		SenderEmail:    "alice@example.com",
		RecipientName:  "Bob",
		RecipientEmail: "bob@example.com",
		Message:        "boop!",
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")
	req := testRequest()

	signed, tokenID, err := codec.Issue(req)
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.NotEmpty(t, tokenID)

	claims, err := codec.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, tokenID, claims.ID)
	assert.Equal(t, req, claims.Boop())
	assert.Equal(t, Validity, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestVerifyExpired(t *testing.T) {
	codec := NewCodec("test-secret")
	base := time.Now()
	codec.now = func() time.Time { return base }

	signed, _, err := codec.Issue(testRequest())
	require.NoError(t, err)

	// Just inside the window it still verifies
	codec.now = func() time.Time { return base.Add(Validity - time.Minute) }
	_, err = codec.Verify(signed)
	require.NoError(t, err)

	// Past the window it is expired, never merely invalid
	codec.now = func() time.Time { return base.Add(Validity + time.Minute) }
	_, err = codec.Verify(signed)
	require.ErrorIs(t, err, ErrExpired)
	require.NotErrorIs(t, err, ErrInvalid)
}

func TestVerifyWrongKey(t *testing.T) {
	signed, _, err := NewCodec("secret-a").Issue(testRequest())
	require.NoError(t, err)

	_, err = NewCodec("secret-b").Verify(signed)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyMalformed(t *testing.T) {
	codec := NewCodec("test-secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalid, "token %q", tok)
	}
}

func TestVerifyTampered(t *testing.T) {
	codec := NewCodec("test-secret")

	signed, _, err := codec.Issue(testRequest())
	require.NoError(t, err)

	tampered := []byte(signed)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = codec.Verify(string(tampered))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsMissingClaims(t *testing.T) {
	secret := "test-secret"
	codec := NewCodec(secret)
	now := time.Now()

	// Signed with the right key but without a jti or sender
	claims := Claims{
		Dog: models.Dog{ID: "corgi", URL: "https://example.com/corgi.jpg"},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsUnsignedAlg(t *testing.T) {
	codec := NewCodec("test-secret")
	now := time.Now()

	claims := Claims{
		Dog:            models.Dog{ID: "corgi", URL: "https://example.com/corgi.jpg"},
		SenderName:     "Alice",
		SenderEmail:    "alice@example.com",
		RecipientName:  "Bob",
		RecipientEmail: "bob@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "some-id",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Verify(unsigned)
	require.ErrorIs(t, err, ErrInvalid)
}
