package bookingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanbook/internal/app/dto"
)

func payload() dto.BookingPayload {
	return dto.BookingPayload{Slug: "sunny", Start: "2024-06-08", End: "2024-06-12", Nights: 4, Total: 240, Email: "a@b.com", Location: "Airport"}
}

func TestSubmitOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var got dto.BookingPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "sunny", got.Slug)
		assert.Equal(t, "2024-06-08", got.Start)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := &Client{Endpoint: srv.URL, HTTP: srv.Client()}
	result, err := client.Submit(context.Background(), payload())
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestSubmitApplicationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"error":"dates no longer available"}`))
	}))
	defer srv.Close()

	client := &Client{Endpoint: srv.URL, HTTP: srv.Client()}
	result, err := client.Submit(context.Background(), payload())
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, "dates no longer available", result.Error)
}

func TestSubmitNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	client := &Client{Endpoint: srv.URL, HTTP: srv.Client()}
	_, err := client.Submit(context.Background(), payload())
	assert.ErrorContains(t, err, "status 504")
}

func TestSubmitTransportFailure(t *testing.T) {
	client := &Client{Endpoint: "http://127.0.0.1:1"}
	_, err := client.Submit(context.Background(), payload())
	assert.Error(t, err)
}
