package model

// Settings holds the outbound transport credentials and the message template.
// There is exactly one settings record; it is re-read at the start of every
// dispatch run so edits take effect immediately.
type Settings struct {
	FromAddress string `json:"email_origen"`
	Password    string `json:"password"`
	SMTPHost    string `json:"smtp_servidor"`
	SMTPPort    int    `json:"smtp_puerto"`
	Template    string `json:"plantilla"`
}

// DefaultTemplate is the message template seeded on first access.
const DefaultTemplate = "Hola {nombre_empresa},\n\nSomos una agencia que ayuda a negocios como {nombre_empresa} ({sector}) a tener presencia online en {ciudad}.\n\nUn saludo."

// DefaultSettings returns the settings seeded when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		SMTPHost: "smtp.gmail.com",
		SMTPPort: 587,
		Template: DefaultTemplate,
	}
}

// HasCredentials reports whether both the sender address and password are
// set. Dispatch must not start without them.
func (s *Settings) HasCredentials() bool {
	return s.FromAddress != "" && s.Password != ""
}
