package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prospecta/internal/mailer"
	"github.com/prospecta/internal/model"
)

type settingsStore interface {
	Load(ctx context.Context) (*model.Settings, error)
}

type contactStore interface {
	List(ctx context.Context) ([]model.Contact, error)
	ReplaceAll(ctx context.Context, contacts []model.Contact) error
}

// Service runs dispatch passes: one authenticated transport session per run,
// one message per pending contact, one whole-collection write at the end.
// Runs are strictly sequential; the surrounding surface never overlaps them.
type Service struct {
	settings settingsStore
	contacts contactStore
	dial     mailer.DialFunc
	logger   *slog.Logger
}

func New(settings settingsStore, contacts contactStore, dial mailer.DialFunc, logger *slog.Logger) *Service {
	if dial == nil {
		dial = mailer.Dial
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{settings: settings, contacts: contacts, dial: dial, logger: logger}
}

// Result is the per-run aggregate. It is reported, never persisted; only the
// per-contact sent flags survive the run.
type Result struct {
	Sent   int
	Errors int
}

// Summary returns the user-visible one-line outcome.
func (r Result) Summary() string {
	return fmt.Sprintf("Sent: %d | Errors: %d", r.Sent, r.Errors)
}

// Run executes one dispatch pass over every currently-pending contact.
//
// Settings are read fresh so credential and template edits take effect
// immediately. Preconditions (credentials, template, relay connection) abort
// the run with nothing attempted and nothing persisted. After that, each
// send outcome is local to its contact: a success flips the contact's sent
// flag, a failure leaves it pending for the next run. Once a contact's flag
// is true, this path never sets it back to false. The full collection is
// written back in one go regardless of how many messages went out, so a
// re-run after a fully successful pass is a data-level no-op.
func (s *Service) Run(ctx context.Context) (Result, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load settings: %w", err)
	}
	if !settings.HasCredentials() {
		return Result{}, ErrMissingCredentials
	}
	if err := mailer.ValidateTemplate(settings.Template); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBadTemplate, err)
	}

	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load contacts: %w", err)
	}

	session, err := s.dial(mailer.Config{
		Host:     settings.SMTPHost,
		Port:     settings.SMTPPort,
		Username: settings.FromAddress,
		Password: settings.Password,
	})
	if err != nil {
		return Result{}, &ConnectionError{Err: err}
	}

	var result Result
	for i := range contacts {
		c := &contacts[i]
		if c.Sent {
			continue
		}

		body, err := mailer.Render(settings.Template, mailer.ContactFields(*c))
		if err != nil {
			result.Errors++
			continue
		}
		subject := "Propuesta para " + c.Name

		if err := session.Send(settings.FromAddress, c.Email, subject, body); err != nil {
			s.logger.Warn("dispatch: send failed", "to", c.Email, "err", err)
			result.Errors++
			continue
		}
		c.Sent = true
		result.Sent++
	}

	session.Close()

	if err := s.contacts.ReplaceAll(ctx, contacts); err != nil {
		return result, fmt.Errorf("persist contacts: %w", err)
	}

	s.logger.Info("dispatch: run complete", "sent", result.Sent, "errors", result.Errors)
	return result, nil
}
