package email

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	sent   []*mail.SGMailV3
	status int
	err    error
}

func (f *fakeClient) SendWithContext(_ context.Context, m *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, m)
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status}, nil
}

func TestNewEmailServiceRequiresConfig(t *testing.T) {
	_, err := NewEmailService("", "hello@venra.com")
	assert.Error(t, err)

	s, err := NewEmailService("SG.key", "hello@venra.com")
	require.NoError(t, err)
	assert.NotNil(t, s.client)
}

func TestSendEmail(t *testing.T) {
	client := &fakeClient{status: 202}
	s := &EmailService{client: client, from: "hello@venra.com", fromName: "Venra"}

	require.NoError(t, s.SendEmail(context.Background(), "ops@venra.com", "New lead", "text", "<p>html</p>"))
	require.Len(t, client.sent, 1)

	m := client.sent[0]
	assert.Equal(t, "hello@venra.com", m.From.Address)
	assert.Equal(t, "New lead", m.Subject)
	require.Len(t, m.Personalizations, 1)
	assert.Equal(t, "ops@venra.com", m.Personalizations[0].To[0].Address)
	require.Len(t, m.Content, 2)
	assert.Equal(t, "text", m.Content[0].Value)
}

func TestSendEmailFailures(t *testing.T) {
	s := &EmailService{client: &fakeClient{status: 401}, from: "hello@venra.com"}
	assert.ErrorContains(t, s.SendEmail(context.Background(), "a@b.co", "s", "t", "h"), "401")

	s.client = &fakeClient{err: errors.New("dial tcp: timeout")}
	assert.ErrorContains(t, s.SendEmail(context.Background(), "a@b.co", "s", "t", "h"), "timeout")
}
