package registry

import "context"

// Store tracks consumed verification token ids to enforce at-most-once
// redemption. Entries only stay relevant for the token's own 24h lifetime.
type Store interface {
	// Add records the id and reports whether it was newly inserted.
	// It must be atomic with respect to concurrent Add calls for the
	// same id: of two racing callers exactly one sees true.
	Add(ctx context.Context, tokenID string) (bool, error)

	// Contains reports whether the id has been recorded
	Contains(ctx context.Context, tokenID string) (bool, error)

	// Remove forgets the id so the token can be redeemed again
	Remove(ctx context.Context, tokenID string) error
}
