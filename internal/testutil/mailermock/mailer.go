package mailermock

import (
	"context"

	"staff-leave-portal/internal/mailer"
)

// Mailer is a function-backed mock that satisfies mailer.Mailer and
// records every payload it was asked to send.
type Mailer struct {
	SendFn func(ctx context.Context, p mailer.Payload) error
	Sent   []mailer.Payload
}

func (m *Mailer) Send(ctx context.Context, p mailer.Payload) error {
	m.Sent = append(m.Sent, p)
	if m.SendFn != nil {
		return m.SendFn(ctx, p)
	}
	return nil
}

// Last returns the most recent payload, or a zero value if none was sent.
func (m *Mailer) Last() mailer.Payload {
	if len(m.Sent) == 0 {
		return mailer.Payload{}
	}
	return m.Sent[len(m.Sent)-1]
}
