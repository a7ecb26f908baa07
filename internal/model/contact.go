package model

// Contact is one prospective business contact. Contacts have no separate
// identifier: a contact's position in the stored collection is its id, so a
// held index is invalidated by any delete.
type Contact struct {
	Name        string `json:"nombre"`
	Email       string `json:"email"`
	Sector      string `json:"sector"`
	City        string `json:"ciudad"`
	ContactName string `json:"nombre_contacto,omitempty"`
	Sent        bool   `json:"enviado"`
}

// Pending returns the contacts that have not been sent to yet, preserving
// collection order. The result is derived on every call, never stored.
func Pending(contacts []Contact) []Contact {
	var pending []Contact
	for _, c := range contacts {
		if !c.Sent {
			pending = append(pending, c)
		}
	}
	return pending
}
