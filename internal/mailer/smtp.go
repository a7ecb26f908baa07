package mailer

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"
)

// connectTimeout bounds the dial and every subsequent command on the session,
// so an unreachable or stalled relay fails fast instead of hanging a run.
const connectTimeout = 20 * time.Second

// Well-known submission ports. 465 is implicit TLS from the first byte; 587
// is plaintext upgraded in place via STARTTLS. Any other port is used as
// configured, without upgrade.
const (
	portImplicitTLS = 465
	portSubmission  = 587
)

// Config holds what Dial needs to establish one authenticated session.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Session is one authenticated connection to a mail relay, reused for every
// message in a dispatch run. A Send failure is local to that message and
// leaves the session usable.
type Session interface {
	Send(from, to, subject, body string) error
	Close()
}

// DialFunc opens a transport session. The dispatch engine takes one of these
// so tests can substitute a fake relay.
type DialFunc func(Config) (Session, error)

type session struct {
	client *smtp.Client
	conn   net.Conn
}

// Dial connects to the relay, negotiates TLS according to the configured
// port, and authenticates. Any failure along the way tears the connection
// down and is returned; no session is handed out half-open.
func Dial(cfg Config) (Session, error) {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	tlsConfig := &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	var (
		conn net.Conn
		err  error
	)
	if cfg.Port == portImplicitTLS {
		conn, err = tls.DialWithDialer(&net.Dialer{Timeout: connectTimeout}, "tcp", addr, tlsConfig)
	} else {
		conn, err = net.DialTimeout("tcp", addr, connectTimeout)
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smtp greeting: %w", err)
	}

	if cfg.Port == portSubmission {
		if err := client.StartTLS(tlsConfig); err != nil {
			client.Close()
			return nil, fmt.Errorf("starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	if err := client.Auth(auth); err != nil {
		client.Close()
		return nil, fmt.Errorf("auth: %w", err)
	}

	return &session{client: client, conn: conn}, nil
}

// Send delivers one plain-text message over the session. On failure the
// transaction is reset so the next message can still be attempted.
func (s *session) Send(from, to, subject, body string) error {
	s.conn.SetDeadline(time.Now().Add(connectTimeout))

	if err := s.trySend(from, to, subject, body); err != nil {
		// Clear the aborted transaction; the session stays open for the
		// remaining recipients.
		if rstErr := s.client.Reset(); rstErr != nil {
			slog.Debug("mailer: reset after failed send", "err", rstErr)
		}
		return err
	}
	return nil
}

func (s *session) trySend(from, to, subject, body string) error {
	if err := s.client.Mail(from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := s.client.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}
	w, err := s.client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write([]byte(formatMessage(from, to, subject, body))); err != nil {
		w.Close()
		return fmt.Errorf("write message: %w", err)
	}
	return w.Close()
}

// Close tears the session down, best-effort. The run's outcome is already
// decided by the per-message results, so failures here are only logged.
func (s *session) Close() {
	if err := s.client.Quit(); err != nil {
		slog.Debug("mailer: quit failed", "err", err)
		s.client.Close()
	}
}

// formatMessage builds the RFC 5322 plain-text message.
func formatMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		from, to, mime.QEncoding.Encode("utf-8", subject), body,
	)
}
