package mailer

import (
	"strings"
	"testing"

	"github.com/prospecta/internal/model"
)

func TestRenderSubstitutesFields(t *testing.T) {
	cases := []struct {
		name   string
		tmpl   string
		fields map[string]string
		want   string
	}{
		{
			name:   "single placeholder",
			tmpl:   "Hola {nombre_empresa}",
			fields: map[string]string{"nombre_empresa": "Acme"},
			want:   "Hola Acme",
		},
		{
			name: "repeated placeholder",
			tmpl: "{nombre_empresa} y {nombre_empresa}",
			fields: map[string]string{
				"nombre_empresa": "Acme",
			},
			want: "Acme y Acme",
		},
		{
			name: "all contact fields",
			tmpl: "{nombre_empresa} ({sector}) en {ciudad}, att. {nombre_contacto}",
			fields: map[string]string{
				"nombre_empresa":  "Acme",
				"sector":          "hosteleria",
				"ciudad":          "Madrid",
				"nombre_contacto": "Ana",
			},
			want: "Acme (hosteleria) en Madrid, att. Ana",
		},
		{
			name:   "empty field renders as empty string",
			tmpl:   "Hola {nombre_contacto}.",
			fields: map[string]string{"nombre_contacto": ""},
			want:   "Hola .",
		},
		{
			name:   "no placeholders",
			tmpl:   "Un saludo.",
			fields: map[string]string{"nombre_empresa": "Acme"},
			want:   "Un saludo.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Render(tc.tmpl, tc.fields)
			if err != nil {
				t.Fatalf("Render returned an error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderUnknownPlaceholder(t *testing.T) {
	_, err := Render("Hola {empresa_nombre}", map[string]string{"nombre_empresa": "Acme"})
	if err == nil {
		t.Fatal("expected an error for unknown placeholder")
	}
	if !strings.Contains(err.Error(), "empresa_nombre") {
		t.Errorf("error should name the bad placeholder, got: %v", err)
	}
}

func TestValidateTemplate(t *testing.T) {
	cases := []struct {
		name    string
		tmpl    string
		wantErr bool
	}{
		{"default template", model.DefaultTemplate, false},
		{"all known placeholders", "{nombre_empresa} {nombre_contacto} {sector} {ciudad}", false},
		{"plain text", "sin marcadores", false},
		{"unknown placeholder", "Hola {empresa}", true},
		{"one bad among good", "{nombre_empresa} {typo}", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTemplate(tc.tmpl)
			if tc.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestContactFields(t *testing.T) {
	c := model.Contact{Name: "Acme", ContactName: "Ana", Sector: "retail", City: "Sevilla"}
	fields := ContactFields(c)

	want := map[string]string{
		"nombre_empresa":  "Acme",
		"nombre_contacto": "Ana",
		"sector":          "retail",
		"ciudad":          "Sevilla",
	}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("fields[%q] = %q, want %q", k, fields[k], v)
		}
	}
}
