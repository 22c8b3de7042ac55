package scheduling

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

func TestCreateBookingLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bookings", r.URL.Path)
		var req bookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "account-1", req.User)
		assert.Equal(t, "Aoi", req.ChildName)
		json.NewEncoder(w).Encode(bookingResponse{BookingURL: "https://booking.example.com/abc123"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", logger.New("error"))
	url, err := client.CreateBookingLink(context.Background(), "account-1", "Aoi", "sleep consultation")
	require.NoError(t, err)
	assert.Equal(t, "https://booking.example.com/abc123", url)
}

func TestCreateBookingLinkProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", logger.New("error"))
	_, err := client.CreateBookingLink(context.Background(), "account-1", "", "")
	assert.Error(t, err)
}

func TestCreateBookingLinkEmptyURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(bookingResponse{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", logger.New("error"))
	_, err := client.CreateBookingLink(context.Background(), "account-1", "", "")
	assert.Error(t, err)
}
