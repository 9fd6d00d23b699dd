package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSendGrid struct {
	sent []*mail.SGMailV3
	resp *rest.Response
	err  error
}

func (r *recordingSendGrid) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	r.sent = append(r.sent, email)
	return r.resp, r.err
}

func newTestSendGridMailer(client sendGridClient, sandbox bool) *SendGridMailer {
	m := NewSendGridMailer(SendGridConfig{
		APIKey:      "SG.test",
		FromEmail:   "noreply@example.com",
		FromName:    "Interview Booking",
		SandboxMode: sandbox,
		CodeTTL:     15 * time.Minute,
	}, zap.NewNop())
	m.client = client
	return m
}

func TestSendGridMailerSend(t *testing.T) {
	client := &recordingSendGrid{resp: &rest.Response{StatusCode: http.StatusAccepted}}
	m := newTestSendGridMailer(client, false)

	require.NoError(t, m.Send(context.Background(), "a@dal.ca", "123456"))
	require.Len(t, client.sent, 1)

	msg := client.sent[0]
	assert.Equal(t, "noreply@example.com", msg.From.Address)
	assert.Equal(t, "a@dal.ca", msg.Personalizations[0].To[0].Address)
	require.Len(t, msg.Content, 2)
	assert.Contains(t, msg.Content[0].Value, "123456")
	assert.Contains(t, msg.Content[0].Value, "15 minutes")
	assert.Nil(t, msg.MailSettings)
}

func TestSendGridMailerSandbox(t *testing.T) {
	client := &recordingSendGrid{resp: &rest.Response{StatusCode: http.StatusOK}}
	m := newTestSendGridMailer(client, true)

	require.NoError(t, m.Send(context.Background(), "a@dal.ca", "123456"))
	require.NotNil(t, client.sent[0].MailSettings)
	require.NotNil(t, client.sent[0].MailSettings.SandboxMode)
	assert.True(t, *client.sent[0].MailSettings.SandboxMode.Enable)
}

func TestSendGridMailerFailures(t *testing.T) {
	client := &recordingSendGrid{resp: &rest.Response{StatusCode: http.StatusUnauthorized, Body: "bad key"}}
	err := newTestSendGridMailer(client, false).Send(context.Background(), "a@dal.ca", "123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	client = &recordingSendGrid{err: errors.New("dial tcp: timeout")}
	err = newTestSendGridMailer(client, false).Send(context.Background(), "a@dal.ca", "123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestLogMailerNeverFails(t *testing.T) {
	assert.NoError(t, NewLogMailer(nil).Send(context.Background(), "a@dal.ca", "123456"))
}
