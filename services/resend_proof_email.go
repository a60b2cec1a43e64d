package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"go.uber.org/zap"
)

// ProofReadyEmailData holds data for the proof-ready email
type ProofReadyEmailData struct {
	CustomerName  string
	CustomerEmail string
	OrderNumber   string
	Notes         string
	ProofURLs     []string
	ReviewURL     string
}

// SendProofReadyEmail tells the customer their proofs are waiting for approval.
func (r *ResendClient) SendProofReadyEmail(ctx context.Context, data ProofReadyEmailData) error {
	err := r.send(ctx, resendEmail{
		To:      data.CustomerEmail,
		Subject: fmt.Sprintf("Your proof for order #%s is ready", data.OrderNumber),
		HTML:    buildProofReadyHTML(data),
	})
	if err != nil {
		return err
	}

	config.Log.Info("[resend] proof email sent",
		zap.String("to", data.CustomerEmail),
		zap.String("order", data.OrderNumber))
	return nil
}

func buildProofReadyHTML(data ProofReadyEmailData) string {
	var links strings.Builder
	for i, u := range data.ProofURLs {
		links.WriteString(fmt.Sprintf(
			`<li style="margin: 4px 0;"><a href="%s" style="color: #3b82f6;">Proof %d</a></li>`,
			html.EscapeString(u), i+1))
	}

	notes := ""
	if strings.TrimSpace(data.Notes) != "" {
		notes = fmt.Sprintf(
			`<p style="margin: 16px 0; padding: 12px; background: #f3f4f6; border-radius: 8px; font-size: 14px; color: #374151;">%s</p>`,
			html.EscapeString(data.Notes))
	}

	review := ""
	if data.ReviewURL != "" {
		review = fmt.Sprintf(
			`<p style="margin: 24px 0;"><a href="%s" style="background: #3b82f6; color: #ffffff; padding: 12px 20px; border-radius: 8px; text-decoration: none; font-weight: 600;">Review your proof</a></p>`,
			html.EscapeString(data.ReviewURL))
	}

	name := data.CustomerName
	if strings.TrimSpace(name) == "" {
		name = "there"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Proof ready - #%s</title></head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; background: #030140;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 600px; margin: auto; background: #ffffff; padding: 24px; border-radius: 12px;">
    <tr><td>
      <h1 style="margin: 0 0 12px; font-size: 22px; color: #111827;">Hi %s, your proof is ready!</h1>
      <p style="margin: 0; font-size: 14px; color: #4b5563;">We've finished the design proof for order <strong>#%s</strong>. Take a look and approve it or request changes.</p>
      %s
      <ul style="padding-left: 20px; font-size: 14px;">%s</ul>
      %s
      <p style="margin: 24px 0 0; font-size: 12px; color: #9ca3af;">Sticker Shuttle</p>
    </td></tr>
  </table>
</body>
</html>`,
		html.EscapeString(data.OrderNumber),
		html.EscapeString(name),
		html.EscapeString(data.OrderNumber),
		notes,
		links.String(),
		review,
	)
}
