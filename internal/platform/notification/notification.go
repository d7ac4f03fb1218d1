// Package notification renders guardian messages from templates and hands
// them to a Sender.
package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Template IDs used by the guardian and activity flows.
const (
	TemplateGuardianVerify      = "guardian-verify"
	TemplateMedicineTaken       = "medicine-taken"
	TemplateAppointmentAttended = "appointment-attended"
	TemplateActivityCompleted   = "activity-completed"
)

// Message is a rendered outbound email.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ---------------------------------------------------------------------------
// Template Engine
// ---------------------------------------------------------------------------

// Template defines a reusable notification template.
type Template struct {
	ID      string
	Subject string
	Body    string
}

// TemplateEngine manages notification templates and renders them with data.
type TemplateEngine struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewTemplateEngine creates a TemplateEngine with the built-in templates pre-registered.
func NewTemplateEngine() *TemplateEngine {
	e := &TemplateEngine{
		templates: make(map[string]*Template),
	}
	e.registerBuiltIn()
	return e
}

func (e *TemplateEngine) registerBuiltIn() {
	builtIn := []Template{
		{
			ID:      TemplateGuardianVerify,
			Subject: "MedCare: please verify your guardian email",
			Body:    "Hello,\n\n{{first_name}} has added you as their guardian on MedCare. Open the link below to confirm this email address:\n\n{{link}}\n\nStay Healthy,\nMedCare Team",
		},
		{
			ID:      TemplateMedicineTaken,
			Subject: "MedCare Alert: {{first_name}} Update",
			Body:    "Hello,\n\nThis is a notification that {{first_name}} has just taken their medicine: {{item}}.\n\nStay Healthy,\nMedCare Team",
		},
		{
			ID:      TemplateAppointmentAttended,
			Subject: "MedCare Alert: {{first_name}} Update",
			Body:    "Hello,\n\nThis is a notification that {{first_name}} has successfully attended their appointment with {{item}}.\n\nStay Healthy,\nMedCare Team",
		},
		{
			ID:      TemplateActivityCompleted,
			Subject: "Activity Completed: {{first_name}} finished a task!",
			Body:    "{{first_name}} just completed a health activity:\n\n{{item}}\nCategory: {{category}}\n\nGreat job supporting them!",
		},
	}
	for i := range builtIn {
		t := builtIn[i]
		e.templates[t.ID] = &t
	}
}

// RegisterTemplate adds or replaces a template in the engine.
func (e *TemplateEngine) RegisterTemplate(t Template) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[t.ID] = &t
}

// Render looks up a template by ID and performs {{key}} replacement using the
// supplied data map. Keys present in the template but absent from data are left
// as-is.
func (e *TemplateEngine) Render(templateID string, data map[string]string) (subject, body string, err error) {
	e.mu.RLock()
	t, ok := e.templates[templateID]
	e.mu.RUnlock()
	if !ok {
		return "", "", fmt.Errorf("template %q not found", templateID)
	}

	subject = t.Subject
	body = t.Body
	for k, v := range data {
		placeholder := "{{" + k + "}}"
		subject = strings.ReplaceAll(subject, placeholder, v)
		body = strings.ReplaceAll(body, placeholder, v)
	}
	return subject, body, nil
}

// ---------------------------------------------------------------------------
// Notifier
// ---------------------------------------------------------------------------

// Notifier renders templates and passes the result to its Sender.
type Notifier struct {
	sender Sender
	tpl    *TemplateEngine
	from   string
}

func NewNotifier(sender Sender, tpl *TemplateEngine, from string) *Notifier {
	if tpl == nil {
		tpl = NewTemplateEngine()
	}
	return &Notifier{sender: sender, tpl: tpl, from: from}
}

// SendTemplate renders templateID with data and delivers it to recipient. The
// rendered message is returned even when delivery fails.
func (n *Notifier) SendTemplate(ctx context.Context, templateID, recipient string, data map[string]string) (*Message, error) {
	if recipient == "" {
		return nil, errors.New("recipient is required")
	}
	subject, body, err := n.tpl.Render(templateID, data)
	if err != nil {
		return nil, err
	}

	msg := &Message{From: n.from, To: recipient, Subject: subject, Body: body}
	if err := n.sender.Send(ctx, *msg); err != nil {
		return msg, fmt.Errorf("send %s to %s: %w", templateID, recipient, err)
	}
	return msg, nil
}

// ---------------------------------------------------------------------------
// Senders
// ---------------------------------------------------------------------------

// LogSender writes each message to the structured log instead of a mail
// transport.
type LogSender struct {
	logger zerolog.Logger
}

func NewLogSender(logger zerolog.Logger) *LogSender {
	return &LogSender{logger: logger.With().Str("component", "notification").Logger()}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info().
		Str("from", msg.From).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("body_bytes", len(msg.Body)).
		Msg("email dispatched")
	return nil
}

// MockSender is a test double that records every message.
type MockSender struct {
	mu         sync.Mutex
	sent       []Message
	ShouldFail bool
}

func (m *MockSender) Send(_ context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ShouldFail {
		return errors.New("mock sender failure")
	}
	m.sent = append(m.sent, msg)
	return nil
}

// Sent returns a copy of the recorded messages.
func (m *MockSender) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}
