package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"
)

const defaultEmailJSURL = "https://api.emailjs.com/api/v1.0/email/send"

type Config struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	BaseURL    string
}

// New picks a provider by kind. Unknown kinds fall back to the log
// provider so a misconfigured deployment still records what it would
// have sent.
func New(kind string, cfg Config) Mailer {
	switch kind {
	case "", "stub", "log":
		return logMailer{}
	case "noop":
		return noopMailer{}
	case "fail":
		return failMailer{}
	case "emailjs":
		if cfg.ServiceID == "" || cfg.TemplateID == "" || cfg.PublicKey == "" {
			return logMailer{}
		}
		url := cfg.BaseURL
		if url == "" {
			url = defaultEmailJSURL
		}
		return &emailJSMailer{
			cfg:    cfg,
			url:    url,
			client: &http.Client{Timeout: 5 * time.Second},
		}
	default:
		return logMailer{}
	}
}

type logMailer struct{}

func (logMailer) Send(ctx context.Context, p Payload) error {
	log.Printf("send email to %s: status=%q comments=%q", p.ToEmail, p.Status, p.Comments)
	return nil
}

type noopMailer struct{}

func (noopMailer) Send(ctx context.Context, p Payload) error { return nil }

type failMailer struct{}

func (failMailer) Send(ctx context.Context, p Payload) error {
	return errors.New("mailer failure")
}

type emailJSMailer struct {
	cfg    Config
	url    string
	client *http.Client
}

type emailJSRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	TemplateParams Payload `json:"template_params"`
}

func (m *emailJSMailer) Send(ctx context.Context, p Payload) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:      m.cfg.ServiceID,
		TemplateID:     m.cfg.TemplateID,
		UserID:         m.cfg.PublicKey,
		TemplateParams: p,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return errors.New("email provider rejected request")
	}
	return nil
}
