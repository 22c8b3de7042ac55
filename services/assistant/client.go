package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

// User-facing fallback replies. A rate-limited gateway gets the distinguished
// contact-staff message; every other failure collapses to the generic one so
// the conversation can continue.
const (
	GenericFallbackReply = "I'm sorry, I couldn't answer that right now. Please try again in a little while."
	RateLimitReply       = "We are receiving a lot of questions at the moment. Please contact the facility staff directly."
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "assistant_requests_total",
	Help: "Outbound AI gateway requests by outcome.",
}, []string{"outcome"})

// ChildContext is the small fixed set of child fields threaded into each
// question so the gateway can personalize its answer.
type ChildContext struct {
	Name      string `json:"child_name"`
	Age       int    `json:"child_age"`
	Gender    string `json:"child_gender,omitempty"`
	Birthdate string `json:"child_birthdate,omitempty"`
}

// Client is a thin bridge to the conversational AI gateway: one blocking
// request per call, no retries, no streaming. It keeps no conversation state
// of its own; the caller threads the conversation id through.
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
		http:    &http.Client{Timeout: 60 * time.Second},
		log:     log,
	}
}

type askRequest struct {
	Query          string       `json:"query"`
	ConversationID string       `json:"conversation_id,omitempty"`
	User           string       `json:"user"`
	Inputs         ChildContext `json:"inputs"`
	ResponseMode   string       `json:"response_mode"`
}

type askResponse struct {
	Answer         string `json:"answer"`
	ConversationID string `json:"conversation_id"`
}

// Ask sends one question and returns the answer text plus the (possibly new)
// conversation id to remember for the next turn. Failures never surface as
// errors: they map to a fallback reply with the caller's conversation id
// returned unchanged.
func (c *Client) Ask(ctx context.Context, query, conversationID, user string, child ChildContext) (reply, convID string) {
	body, err := json.Marshal(askRequest{
		Query:          query,
		ConversationID: conversationID,
		User:           user,
		Inputs:         child,
		ResponseMode:   "blocking",
	})
	if err != nil {
		requestsTotal.WithLabelValues("error").Inc()
		return GenericFallbackReply, conversationID
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat-messages", bytes.NewReader(body))
	if err != nil {
		requestsTotal.WithLabelValues("error").Inc()
		return GenericFallbackReply, conversationID
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).Warn("assistant request failed")
		requestsTotal.WithLabelValues("error").Inc()
		return GenericFallbackReply, conversationID
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.log.Warn("assistant rate limited")
		requestsTotal.WithLabelValues("rate_limited").Inc()
		return RateLimitReply, conversationID
	}
	if resp.StatusCode != http.StatusOK {
		c.log.WithField("status", resp.StatusCode).Warn("assistant returned non-OK status")
		requestsTotal.WithLabelValues("error").Inc()
		return GenericFallbackReply, conversationID
	}

	var out askResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.WithError(err).Warn("assistant response decode failed")
		requestsTotal.WithLabelValues("error").Inc()
		return GenericFallbackReply, conversationID
	}
	if out.Answer == "" {
		requestsTotal.WithLabelValues("empty").Inc()
		return GenericFallbackReply, out.ConversationID
	}

	requestsTotal.WithLabelValues("ok").Inc()
	return out.Answer, out.ConversationID
}
