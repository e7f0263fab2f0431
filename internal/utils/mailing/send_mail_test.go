package mailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailConfigEnabled(t *testing.T) {
	assert.False(t, MailConfig{}.Enabled())
	assert.False(t, MailConfig{SMTPHost: "smtp.example.com"}.Enabled())
	assert.True(t, MailConfig{SMTPHost: "smtp.example.com", SMTPPort: "587", SMTPEmail: "barn@example.com"}.Enabled())
}

func TestWelcomeBodyEscapesName(t *testing.T) {
	body := WelcomeBody("<b>Ana</b>", "https://barnmonitor.vercel.app")
	assert.Contains(t, body, "&lt;b&gt;Ana&lt;/b&gt;")
	assert.Contains(t, body, `href="https://barnmonitor.vercel.app"`)

	assert.NotContains(t, WelcomeBody("Ana", ""), "href")
}

func TestSendMailBadPort(t *testing.T) {
	m := NewMailer(MailConfig{SMTPHost: "localhost", SMTPPort: "smtp", SMTPEmail: "barn@example.com"})
	assert.Error(t, m.SendMail("ana@example.com", WelcomeSubject(), "hi"))
}
