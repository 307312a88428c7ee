package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"logistics_api/internal/model"
)

// DefaultEndpoint is the MailChannels transactional send API
const DefaultEndpoint = "https://api.mailchannels.net/tx/v1/send"

// Config holds the relay endpoint and the fixed recipient/sender addresses
type Config struct {
	Endpoint  string
	ToEmail   string
	ToName    string
	FromEmail string
	FromName  string
}

// Mailer relays contact-form enquiries by email
type Mailer interface {
	SendEnquiry(ctx context.Context, enquiry model.Enquiry) error
}

// Client is an HTTP client for the MailChannels send API
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// UpstreamError carries a non-success response from the mail provider,
// with the upstream body preserved for the caller to surface.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("mail provider returned status %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a mail relay client
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

// SendEnquiry formats the enquiry as a plain-text email and posts it to the
// provider. A non-2xx provider response is returned as an *UpstreamError.
func (c *Client) SendEnquiry(ctx context.Context, enquiry model.Enquiry) error {
	payload := sendRequest{
		Personalizations: []personalization{
			{To: []address{{Email: c.cfg.ToEmail, Name: c.cfg.ToName}}},
		},
		From:    address{Email: c.cfg.FromEmail, Name: c.cfg.FromName},
		Subject: fmt.Sprintf("New Inquiry from %s", enquiry.Name),
		Content: []content{
			{Type: "text/plain", Value: formatEnquiryText(enquiry)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach mail provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return nil
}

func formatEnquiryText(e model.Enquiry) string {
	return fmt.Sprintf(`
New Website Inquiry:

Name: %s
Phone: %s
Pickup: %s
Drop: %s
Message: %s

-----------------------------------
Sent from Ecity Logistics Website
`, e.Name, e.Phone, orNA(e.Pickup), orNA(e.Drop), orNA(e.Message))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
