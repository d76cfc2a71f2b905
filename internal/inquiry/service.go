package inquiry

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kumaraguru-geo/geo-portal-api/internal/mail"
	"github.com/kumaraguru-geo/geo-portal-api/internal/obs"
)

// Service renders both email documents for a submission and dispatches them.
type Service struct {
	Mail        mail.Sender
	OfficeEmail string
	Logger      zerolog.Logger
	// Now overrides the clock in tests.
	Now func() time.Time
}

// Submit renders the staff notification and submitter confirmation, then
// dispatches them sequentially: staff first, confirmation only after the
// staff send succeeded. A confirmation failure after a delivered staff
// notification still reports an error, so client retries may produce a
// duplicate staff email.
func (s *Service) Submit(q Inquiry) error {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	rc := renderContext{
		Timestamp: displayTimestamp(now),
		Reference: uuid.NewString(),
	}

	staff, err := q.staff(rc)
	if err != nil {
		return err
	}
	confirm, err := q.confirmation(rc)
	if err != nil {
		return err
	}
	staff.To = s.OfficeEmail
	confirm.To = q.SubmitterEmail()

	if err := s.dispatch("staff", staff); err != nil {
		return fmt.Errorf("staff notification: %w", err)
	}
	if err := s.dispatch("confirmation", confirm); err != nil {
		return fmt.Errorf("submitter confirmation: %w", err)
	}

	s.Logger.Info().
		Str("type", q.Kind()).
		Str("reference", rc.Reference).
		Msg("inquiry dispatched")
	return nil
}

func (s *Service) dispatch(kind string, msg mail.Message) error {
	start := time.Now()
	err := s.Mail.Send(msg)
	if obs.MailDispatchLatency != nil {
		obs.MailDispatchLatency.WithLabelValues(kind).Observe(obs.DurationMillis(time.Since(start)))
	}
	if obs.MailDispatchTotal != nil {
		result := "ok"
		if err != nil {
			result = "error"
		}
		obs.MailDispatchTotal.WithLabelValues(kind, result).Inc()
	}
	return err
}
