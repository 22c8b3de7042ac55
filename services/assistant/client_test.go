package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addness-teambase/kyonodekita-sub002/logger"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", logger.New("error")), srv
}

func TestAskSuccess(t *testing.T) {
	var got askRequest
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat-messages", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(askResponse{Answer: "Try a regular bedtime.", ConversationID: "conv-42"})
	})

	reply, convID := client.Ask(context.Background(), "My child won't sleep", "", "account-1",
		ChildContext{Name: "Aoi", Age: 3, Gender: "girl", Birthdate: "2021-02-10"})

	assert.Equal(t, "Try a regular bedtime.", reply)
	assert.Equal(t, "conv-42", convID)
	assert.Equal(t, "My child won't sleep", got.Query)
	assert.Equal(t, "account-1", got.User)
	assert.Equal(t, "Aoi", got.Inputs.Name)
	assert.Equal(t, 3, got.Inputs.Age)
	assert.Equal(t, "blocking", got.ResponseMode)
}

func TestAskThreadsConversationID(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "conv-42", req.ConversationID)
		json.NewEncoder(w).Encode(askResponse{Answer: "ok", ConversationID: "conv-42"})
	})

	_, convID := client.Ask(context.Background(), "and naps?", "conv-42", "account-1", ChildContext{})
	assert.Equal(t, "conv-42", convID)
}

func TestAskRateLimitedReturnsStaffRedirect(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	reply, convID := client.Ask(context.Background(), "question", "conv-1", "account-1", ChildContext{})
	assert.Equal(t, RateLimitReply, reply, "429 maps to the staff-redirect message, not the generic fallback")
	assert.Equal(t, "conv-1", convID, "conversation id is returned unchanged on failure")
}

func TestAskServerErrorReturnsGenericFallback(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	reply, convID := client.Ask(context.Background(), "question", "conv-1", "account-1", ChildContext{})
	assert.Equal(t, GenericFallbackReply, reply)
	assert.Equal(t, "conv-1", convID)
}

func TestAskNetworkErrorReturnsGenericFallback(t *testing.T) {
	client, srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	reply, convID := client.Ask(context.Background(), "question", "", "account-1", ChildContext{})
	assert.Equal(t, GenericFallbackReply, reply)
	assert.Equal(t, "", convID)
}
