package account

import "context"

// VerificationMailSender delivers the verification token to a freshly
// created account. Delivery is best-effort, the caller never rolls back
// account creation on a send failure.
type VerificationMailSender interface {
	SendVerificationMail(ctx context.Context, a Account) error
}

type ResetMailSender interface {
	SendResetMail(ctx context.Context, a Account, token ResetToken) error
}

// EventPublisher announces lifecycle changes to stream subscribers.
// Implementations must not block request handling.
type EventPublisher interface {
	PublishAccountCreated(ctx context.Context, a Account)
	PublishAccountDeleted(ctx context.Context, publicID PublicID)
}
