package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client talks to the external consultation scheduling provider. The
// provider returns an opaque booking URL which the app opens in a new
// browsing context; no scheduling data flows back into this system.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *logrus.Logger
}

func NewClient(baseURL, apiKey string, log *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

type bookingRequest struct {
	User      string `json:"user"`
	ChildName string `json:"child_name,omitempty"`
	Topic     string `json:"topic,omitempty"`
}

type bookingResponse struct {
	BookingURL string `json:"booking_url"`
}

// CreateBookingLink requests a consultation booking link for the given
// account. Unlike the AI bridge there is no fallback text to show instead,
// so failures surface as errors for the handler to report.
func (c *Client) CreateBookingLink(ctx context.Context, user, childName, topic string) (string, error) {
	body, err := json.Marshal(bookingRequest{User: user, ChildName: childName, Topic: topic})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).Warn("scheduling request failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.log.WithField("status", resp.StatusCode).Warn("scheduling provider returned non-OK status")
		return "", fmt.Errorf("scheduling provider status %d", resp.StatusCode)
	}

	var out bookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.BookingURL == "" {
		return "", fmt.Errorf("scheduling provider returned no booking URL")
	}
	return out.BookingURL, nil
}
