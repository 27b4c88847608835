package ports

import "context"

// Mailer is the transactional email collaborator. Send delivers one message and
// returns the provider message id; callers log every attempt regardless of
// outcome.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) (providerMessageID string, err error)
}
