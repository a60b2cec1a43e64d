package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"go.uber.org/zap"
)

const resendEmailsURL = "https://api.resend.com/emails"

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey   string
	from     string
	endpoint string
	http     *http.Client
}

// NewResendClient returns nil when apiKey is empty; email is optional.
func NewResendClient(apiKey, from string) *ResendClient {
	if apiKey == "" {
		return nil
	}
	return &ResendClient{
		apiKey:   apiKey,
		from:     from,
		endpoint: resendEmailsURL,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// WithEndpoint points the client at another base URL (tests, proxies).
func (r *ResendClient) WithEndpoint(url string) *ResendClient {
	r.endpoint = url
	return r
}

type resendEmail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (r *ResendClient) send(ctx context.Context, email resendEmail) error {
	if email.From == "" {
		email.From = r.from
	}

	jsonPayload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		config.Log.Warn("[resend] api rejected email",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}
	return nil
}

// ProofMailer notifies customers about proofs.
type ProofMailer interface {
	SendProofReadyEmail(ctx context.Context, data ProofReadyEmailData) error
}

var (
	mailerMu    sync.RWMutex
	proofMailer ProofMailer
)

func SetProofMailer(m ProofMailer) {
	mailerMu.Lock()
	defer mailerMu.Unlock()
	proofMailer = m
}

// GetProofMailer returns nil when email is not configured.
func GetProofMailer() ProofMailer {
	mailerMu.RLock()
	defer mailerMu.RUnlock()
	return proofMailer
}

// InitProofMailer wires the Resend client when RESEND_API_KEY is set.
func InitProofMailer(app config.AppConfig) {
	client := NewResendClient(app.ResendAPIKey, app.ResendFromEmail)
	if client == nil {
		config.Log.Warn("RESEND_API_KEY not set, proof emails are disabled")
		return
	}
	SetProofMailer(client)
}
