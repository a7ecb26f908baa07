package mailer

import (
	"fmt"
	"regexp"

	"github.com/prospecta/internal/model"
)

// placeholderRe matches {token} substitution points in a message template.
var placeholderRe = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Render substitutes {token} placeholders in the template with the
// corresponding field value. A field that exists but is empty renders as an
// empty string; a token with no corresponding field is an unresolvable
// placeholder and yields an error.
func Render(tmpl string, fields map[string]string) (string, error) {
	var unknown string
	out := placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		token := match[1 : len(match)-1]
		value, ok := fields[token]
		if !ok && unknown == "" {
			unknown = token
		}
		return value
	})
	if unknown != "" {
		return "", fmt.Errorf("template: unknown placeholder {%s}", unknown)
	}
	return out, nil
}

// ValidateTemplate checks that every placeholder in the template resolves to
// a contact field. The template is shared across a whole batch, so a bad
// template is one batch-wide error, not one error per recipient.
func ValidateTemplate(tmpl string) error {
	_, err := Render(tmpl, ContactFields(model.Contact{}))
	return err
}

// ContactFields maps template placeholders to the fields of one contact.
func ContactFields(c model.Contact) map[string]string {
	return map[string]string{
		"nombre_empresa":  c.Name,
		"nombre_contacto": c.ContactName,
		"sector":          c.Sector,
		"ciudad":          c.City,
	}
}
