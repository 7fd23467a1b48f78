package sms

import (
	"fmt"

	"github.com/twilio/twilio-go"
	Api "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator is the part of the Twilio API the service uses.
type messageCreator interface {
	CreateMessage(params *Api.CreateMessageParams) (*Api.ApiV2010Message, error)
}

type SMSService struct {
	api  messageCreator
	from string
}

// NewSMSService creates a new SMS service instance
func NewSMSService(accountSid, authToken, fromNumber string) (*SMSService, error) {
	if accountSid == "" || authToken == "" || fromNumber == "" {
		return nil, fmt.Errorf("missing Twilio configuration")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &SMSService{
		api:  client.Api,
		from: fromNumber,
	}, nil
}

// Send sends body to phoneNumber and returns the message SID.
func (s *SMSService) Send(phoneNumber, body string) (string, error) {
	params := &Api.CreateMessageParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(s.from)
	params.SetBody(body)

	msg, err := s.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("failed to send SMS: %w", err)
	}
	if msg == nil || msg.Sid == nil {
		return "", nil
	}
	return *msg.Sid, nil
}
