package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/sirupsen/logrus"
)

// Mailer sends the account verification email over plain SMTP. It is a
// best-effort side effect: callers fire it in a goroutine and a failure must
// never fail the request that triggered it.
type Mailer struct {
	Host   string
	Port   string
	User   string
	Pass   string
	From   string
	AppURL string
	Log    *logrus.Logger
}

// Enabled reports whether SMTP settings are present. Without them emails are
// skipped and the server keeps running, like the original transporter-less
// mode.
func (m *Mailer) Enabled() bool {
	return m != nil && m.Host != ""
}

// SendVerification emails the verification link for the given account id.
// Errors are logged by the caller; nothing is retried.
func (m *Mailer) SendVerification(name, email, accountID string) error {
	link := fmt.Sprintf("%s/verify/%s", m.AppURL, accountID)
	body := fmt.Sprintf("Hi %s, please verify your email by visiting %s", name, link)

	msg := []byte("From: " + m.From + "\r\n" +
		"To: " + email + "\r\n" +
		"Subject: Verify Your Shine Sparkle Account\r\n" +
		"\r\n" + body + "\r\n")

	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{email}, msg)
}

// SendVerificationAsync runs SendVerification in the background, swallowing
// failures after logging them.
func (m *Mailer) SendVerificationAsync(name, email, accountID string) {
	if !m.Enabled() {
		return
	}
	go func() {
		if err := m.SendVerification(name, email, accountID); err != nil {
			m.Log.WithError(err).Warn("verification email not sent")
		}
	}()
}
