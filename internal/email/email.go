package email

import "context"

// Sender delivers a single HTML email. One attempt, no retries; the
// transport's own timeout bounds the call.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}
