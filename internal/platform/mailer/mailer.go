// Package mailer delivers sign-in tokens to users.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resendlabs/resend-go"
)

// ResendMailer sends sign-in tokens through the Resend API.
type ResendMailer struct {
	client    *resend.Client
	fromEmail string
}

// NewResendMailer creates a mailer backed by the Resend API.
func NewResendMailer(apiKey, fromEmail string) *ResendMailer {
	return &ResendMailer{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

// SendSignInToken mails the sign-in token to the address.
func (m *ResendMailer) SendSignInToken(ctx context.Context, email, token string) error {
	params := &resend.SendEmailRequest{
		From:    m.fromEmail,
		To:      []string{email},
		Subject: "Your DevSnap sign-in code",
		Html: fmt.Sprintf(`
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Sign in to DevSnap</h2>
				<p>Your sign-in code is:</p>
				<div style="background-color: #f4f4f4; padding: 20px; text-align: center; font-size: 16px; font-family: monospace; word-break: break-all; margin: 20px 0;">
					%s
				</div>
				<p style="color: #666;">This code expires shortly. If you didn't request it, you can ignore this email.</p>
				<hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">
				<p style="color: #999; font-size: 12px;">DevSnap - Capture and share your dev environment</p>
			</div>
		`, token),
	}

	_, err := m.client.Emails.Send(params)
	return err
}

// LogMailer writes tokens to the log instead of sending mail. Used in
// development when no Resend API key is configured.
type LogMailer struct{}

// SendSignInToken logs the token.
func (LogMailer) SendSignInToken(ctx context.Context, email, token string) error {
	slog.Info("sign-in token issued (mail delivery disabled)", "email", email, "token", token)
	return nil
}
