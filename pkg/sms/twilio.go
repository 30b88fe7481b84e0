package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const twilioBaseURL = "https://api.twilio.com/2010-04-01"

// TwilioProvider sends SMS through the Twilio Messages REST API.
type TwilioProvider struct {
	accountSID string
	authToken  string
	httpClient *http.Client
}

// NewTwilioProvider creates a Twilio-backed SMS provider.
func NewTwilioProvider(accountSID, authToken string) *TwilioProvider {
	return &TwilioProvider{
		accountSID: accountSID,
		authToken:  authToken,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type twilioMessageResponse struct {
	SID         string `json:"sid"`
	Status      string `json:"status"`
	DateCreated string `json:"date_created"`
	ErrorCode   *int   `json:"error_code"`
	Message     string `json:"message"`
}

// SendSMS posts a message to Twilio and returns its SID and status.
func (p *TwilioProvider) SendSMS(ctx context.Context, to, from, body string) (*SMSResult, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioBaseURL, p.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(p.accountSID, p.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call twilio: %w", err)
	}
	defer resp.Body.Close()

	var msg twilioMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return nil, fmt.Errorf("failed to decode twilio response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("twilio returned status %d: %s", resp.StatusCode, msg.Message)
	}

	created, _ := time.Parse(time.RFC1123Z, msg.DateCreated)
	return &SMSResult{
		SID:         msg.SID,
		Status:      msg.Status,
		DateCreated: created,
	}, nil
}
