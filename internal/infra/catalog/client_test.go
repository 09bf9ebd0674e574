package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanbook/internal/domain/shared/dateonly"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{BaseURL: srv.URL, HTTP: srv.Client()}
}

func TestUnitLookup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/vans", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"slug":"sunny","name":"Sunny Camper","pricePerNight":45.0,"equipment":["Fridge","Awning"]},
			{"slug":"dusty","name":"Dusty","pricePerNight":60.5}
		]`))
	})

	unit, err := client.Unit(context.Background(), "dusty")
	require.NoError(t, err)
	assert.Equal(t, "Dusty", unit.Name)
	assert.Equal(t, int64(6050), unit.NightlyRateCents)

	_, err = client.Unit(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestAvailabilityDecode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/availability", r.URL.Path)
		require.Equal(t, "sunny", r.URL.Query().Get("slug"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"busy":[
			{"start":"2024-06-10","end":"2024-06-15"},
			{"start":"not-a-date","end":"2024-06-20"}
		]}`))
	})

	set, err := client.Availability(context.Background(), "sunny")
	require.NoError(t, err)
	assert.True(t, set.IsBusy(dateonly.New(2024, time.June, 12)))
	assert.False(t, set.IsBusy(dateonly.New(2024, time.June, 15)))
	// malformed row skipped, not fatal
	assert.Len(t, set.Intervals(), 1)
}

func TestUpstreamErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	_, err := client.Unit(context.Background(), "sunny")
	assert.ErrorContains(t, err, "status 502")
}
