package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listingWatcherBot/internal/domain/entity"
)

func TestClient_Get_SendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	c := NewClient(5*time.Second, "")
	body, err := c.Get(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestClient_Get_ErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"forbidden", http.StatusForbidden},
		{"not found", http.StatusNotFound},
		{"server error", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := NewClient(5*time.Second, "TestAgent/1.0").Get(context.Background(), server.URL)
			require.Error(t, err)
			assert.True(t, errors.Is(err, entity.ErrFetch))
		})
	}
}

func TestClient_Get_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	_, err := NewClient(20*time.Millisecond, "").Get(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrFetch)
}

func TestClient_Get_InvalidURL(t *testing.T) {
	_, err := NewClient(time.Second, "").Get(context.Background(), "://bad")
	assert.ErrorIs(t, err, entity.ErrFetch)
}
