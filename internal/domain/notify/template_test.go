package notify

import (
	"strings"
	"testing"
)

func TestTemplateStoreRendersSeededTemplates(t *testing.T) {
	store := NewTemplateStore()

	data := TemplateData{
		Name:             "Maria",
		Title:            "Casamento Silva",
		Date:             "15/10/2026",
		StartTime:        "18:00",
		EndTime:          "23:00",
		Location:         "Salão Principal",
		ParticipantCount: 120,
	}

	for _, name := range []string{TemplateInvite, TemplateReminder} {
		body, err := store.Render(name, data)
		if err != nil {
			t.Fatalf("Render(%s) error: %v", name, err)
		}
		for _, want := range []string{"Maria", "Casamento Silva", "15/10/2026", "18:00", "23:00", "Salão Principal", "120"} {
			if !strings.Contains(body, want) {
				t.Errorf("Render(%s) missing %q in %q", name, want, body)
			}
		}
	}
}

func TestTemplateStoreUnknownTemplate(t *testing.T) {
	store := NewTemplateStore()
	if _, err := store.Render("no_such_template", TemplateData{}); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestTemplateStoreRegisterInvalid(t *testing.T) {
	store := NewTemplateStore()
	if err := store.Register("broken", "{{.Name"); err == nil {
		t.Fatalf("expected parse error for malformed template")
	}
}
