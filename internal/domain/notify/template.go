package notify

import (
	"fmt"
	"strings"
	"sync"
	"text/template"
)

// Template names used by the notification services.
const (
	TemplateInvite   = "event_invite"
	TemplateReminder = "event_reminder"
)

// TemplateData carries the event snapshot fields substituted into a message body.
type TemplateData struct {
	Name             string // recipient name
	Title            string
	Date             string
	StartTime        string
	EndTime          string
	Location         string
	ParticipantCount int
}

// TemplateStore compiles and renders the named message templates.
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
}

// NewTemplateStore seeds the store with the default invite and reminder bodies.
func NewTemplateStore() *TemplateStore {
	store := &TemplateStore{templates: make(map[string]*template.Template)}
	_ = store.Register(TemplateInvite,
		"Olá, {{.Name}}! Você foi escalado para o evento \"{{.Title}}\" em {{.Date}}, das {{.StartTime}} às {{.EndTime}}, no local: {{.Location}}. Convidados: {{.ParticipantCount}}.")
	_ = store.Register(TemplateReminder,
		"Olá, {{.Name}}! Lembrete: o evento \"{{.Title}}\" acontece amanhã ({{.Date}}), das {{.StartTime}} às {{.EndTime}}, no local: {{.Location}}. Convidados: {{.ParticipantCount}}.")
	return store
}

// Register adds or replaces a template definition.
func (s *TemplateStore) Register(name, body string) error {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[name] = tmpl
	return nil
}

// Render executes the named template with the provided data.
func (s *TemplateStore) Render(name string, data TemplateData) (string, error) {
	s.mu.RLock()
	tmpl, ok := s.templates[name]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return out.String(), nil
}
