package mailing

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailConfigConfigured(t *testing.T) {
	assert.False(t, MailConfig{}.Configured())
	assert.False(t, MailConfig{SMTPHost: "smtp.mail.com"}.Configured())
	assert.True(t, MailConfig{SMTPHost: "smtp.mail.com", SMTPPort: "587", SMTPEmail: "noreply@mail.com"}.Configured())
}

func TestNewMessageHeaders(t *testing.T) {
	msg := newMessage(MailConfig{SMTPEmail: "noreply@mail.com", SMTPSender: "Recipes"}, "jane@mail.com", "Hello", "<p>hi</p>")

	assert.Equal(t, []string{"jane@mail.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "noreply@mail.com")
}

func TestWelcomeBodyEscapes(t *testing.T) {
	body, err := WelcomeBody(WelcomeData{FirstName: "<Jane>", UserName: "jane", AppURL: "https://recipes.test"})
	require.NoError(t, err)
	assert.Contains(t, body, "&lt;Jane&gt;")
	assert.Contains(t, body, "https://recipes.test")
}
