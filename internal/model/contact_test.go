package model

import "testing"

func TestPendingFiltersAndPreservesOrder(t *testing.T) {
	contacts := []Contact{
		{Name: "Acme", Sent: true},
		{Name: "Burgos SL"},
		{Name: "Cadiz y Cia", Sent: true},
		{Name: "Duero SA"},
	}

	pending := Pending(contacts)
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	if pending[0].Name != "Burgos SL" || pending[1].Name != "Duero SA" {
		t.Errorf("unexpected order: %+v", pending)
	}
}

func TestPendingEmpty(t *testing.T) {
	if got := Pending(nil); len(got) != 0 {
		t.Errorf("expected no pending contacts, got %+v", got)
	}
	if got := Pending([]Contact{{Name: "Acme", Sent: true}}); len(got) != 0 {
		t.Errorf("expected no pending contacts, got %+v", got)
	}
}

func TestHasCredentials(t *testing.T) {
	cases := []struct {
		name     string
		settings Settings
		want     bool
	}{
		{"both set", Settings{FromAddress: "me@example.org", Password: "x"}, true},
		{"missing password", Settings{FromAddress: "me@example.org"}, false},
		{"missing address", Settings{Password: "x"}, false},
		{"defaults", *DefaultSettings(), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.settings.HasCredentials(); got != tc.want {
				t.Errorf("HasCredentials() = %v, want %v", got, tc.want)
			}
		})
	}
}
