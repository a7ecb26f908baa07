package mailer

import (
	"strings"
	"testing"
)

func TestFormatMessage(t *testing.T) {
	result := formatMessage("me@example.org", "acme@example.org", "Propuesta para Acme", "Hola Acme.")

	cases := []struct {
		name string
		want string
	}{
		{"from header", "From: me@example.org\r\n"},
		{"to header", "To: acme@example.org\r\n"},
		{"subject header", "Subject: Propuesta para Acme\r\n"},
		{"mime header", "MIME-Version: 1.0\r\n"},
		{"content type header", "Content-Type: text/plain; charset=UTF-8\r\n"},
		{"body", "\r\n\r\nHola Acme."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !strings.Contains(result, tc.want) {
				t.Errorf("expected %q in message, got:\n%s", tc.want, result)
			}
		})
	}
}

func TestFormatMessageEncodesNonASCIISubject(t *testing.T) {
	result := formatMessage("me@example.org", "acme@example.org", "Propuesta para Cafetería", "body")

	if strings.Contains(result, "Subject: Propuesta para Cafetería\r\n") {
		t.Errorf("non-ASCII subject should be Q-encoded, got:\n%s", result)
	}
	if !strings.Contains(result, "=?utf-8?q?") {
		t.Errorf("expected Q-encoded subject, got:\n%s", result)
	}
}
