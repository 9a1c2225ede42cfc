package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_GetJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"spells": "/api/spells"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(2 * time.Second)
	t.Cleanup(func() { c.Close() })

	v, err := c.GetJSON(context.Background(), srv.URL)
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok, "expected a JSON object, got %T", v)
	assert.Equal(t, "/api/spells", m["spells"])
}

func TestHTTPClient_GetJSON_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(2 * time.Second)

	_, err := c.GetJSON(context.Background(), srv.URL)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)
}

func TestHTTPClient_GetJSON_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(2 * time.Second)

	_, err := c.GetJSON(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrDecode)
}

func TestHTTPClient_GetJSON_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(20 * time.Millisecond)

	_, err := c.GetJSON(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrTimeout)
}

func TestHTTPClient_GetJSON_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing is listening anymore

	c := NewHTTPClient(2 * time.Second)

	_, err := c.GetJSON(context.Background(), url)
	require.ErrorIs(t, err, ErrConnection)
}
