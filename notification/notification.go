// Package notification alerts the operator when a lead joins the waitlist.
package notification

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/venra/site/email"
	"github.com/venra/site/lead"
	"github.com/venra/site/sms"
)

// Channels reported to the observer.
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

type smsSender interface {
	Send(phoneNumber, body string) (string, error)
}

type emailSender interface {
	SendEmail(ctx context.Context, to, subject, text, html string) error
}

// Observer receives the outcome of every alert.
type Observer interface {
	ObserveAlert(channel string, err error)
}

// Config selects the alert channels. A channel is enabled when its
// credentials and recipient are all set.
type Config struct {
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromNumber  string
	AlertPhone        string
	SendGridAPIKey    string
	SendGridFromEmail string
	AlertEmail        string
	Timeout           time.Duration
}

// NotificationService sends lead alerts in the background. The zero of
// *NotificationService (nil) is a valid service that sends nothing.
type NotificationService struct {
	smsService   smsSender
	emailService emailSender
	alertPhone   string
	alertEmail   string
	timeout      time.Duration
	logger       *zap.Logger
	observer     Observer

	wg sync.WaitGroup
}

// NewNotificationService creates a new notification service. It fails only
// when no channel is configured.
func NewNotificationService(cfg Config, logger *zap.Logger, observer Observer) (*NotificationService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	n := &NotificationService{
		alertPhone: cfg.AlertPhone,
		alertEmail: cfg.AlertEmail,
		timeout:    cfg.Timeout,
		logger:     logger,
		observer:   observer,
	}
	if n.timeout <= 0 {
		n.timeout = 15 * time.Second
	}

	if cfg.AlertPhone != "" {
		smsService, err := sms.NewSMSService(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
		if err != nil {
			logger.Warn("SMS lead alerts not available", zap.Error(err))
		} else {
			n.smsService = smsService
		}
	}

	if cfg.AlertEmail != "" {
		emailService, err := email.NewEmailService(cfg.SendGridAPIKey, cfg.SendGridFromEmail)
		if err != nil {
			logger.Warn("email lead alerts not available", zap.Error(err))
		} else {
			n.emailService = emailService
		}
	}

	if n.smsService == nil && n.emailService == nil {
		return nil, fmt.Errorf("no notification services available - check configuration")
	}
	return n, nil
}

// NotifyNewLead sends the alerts without blocking the caller. Failures are
// logged and reported to the observer only.
func (n *NotificationService) NotifyNewLead(l lead.Lead) {
	if n == nil {
		return
	}
	if n.smsService != nil {
		n.wg.Add(1)
		go func() {
			defer n.wg.Done()
			_, err := n.smsService.Send(n.alertPhone, smsBody(l))
			n.report(ChannelSMS, err)
		}()
	}
	if n.emailService != nil {
		n.wg.Add(1)
		go func() {
			defer n.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
			defer cancel()
			text, body := emailBodies(l)
			err := n.emailService.SendEmail(ctx, n.alertEmail, "New Venra waitlist signup: "+l.CommunityName, text, body)
			n.report(ChannelEmail, err)
		}()
	}
}

// Close waits for pending alerts.
func (n *NotificationService) Close() {
	if n == nil {
		return
	}
	n.wg.Wait()
}

func (n *NotificationService) report(channel string, err error) {
	if n.observer != nil {
		n.observer.ObserveAlert(channel, err)
	}
	if err != nil {
		n.logger.Warn("lead alert failed", zap.String("channel", channel), zap.Error(err))
		return
	}
	n.logger.Debug("lead alert sent", zap.String("channel", channel))
}

func homes(l lead.Lead) string {
	if l.HOASize == nil {
		return "size not given"
	}
	return strconv.Itoa(*l.HOASize) + " homes"
}

func smsBody(l lead.Lead) string {
	return fmt.Sprintf("New Venra waitlist signup: %s, %s (%s). %s %s",
		l.Name, l.CommunityName, homes(l), l.Phone, l.Email)
}

func emailBodies(l lead.Lead) (string, string) {
	text := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nCommunity: %s\nSize: %s\n",
		l.Name, l.Email, l.Phone, l.CommunityName, homes(l))

	body := fmt.Sprintf(`<h2>New waitlist signup</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Community:</strong> %s</p>
<p><strong>Size:</strong> %s</p>`,
		html.EscapeString(l.Name), html.EscapeString(l.Email), html.EscapeString(l.Phone),
		html.EscapeString(l.CommunityName), homes(l))
	return text, body
}
