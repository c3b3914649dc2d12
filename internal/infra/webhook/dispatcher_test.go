package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDispatchPostsJSON(t *testing.T) {
	var received map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := NewDispatcher(zap.NewNop())

	err := d.Dispatch(context.Background(), server.URL, map[string]string{"campaign": "Q3"})

	require.NoError(t, err)
	assert.Equal(t, "Q3", received["campaign"])
}

func TestDispatchNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	d := NewDispatcher(zap.NewNop())

	err := d.Dispatch(context.Background(), server.URL, map[string]string{})

	assert.ErrorContains(t, err, "status 500")
}

func TestDispatchNetworkFailure(t *testing.T) {
	d := NewDispatcher(zap.NewNop())

	err := d.Dispatch(context.Background(), "http://127.0.0.1:1", map[string]string{})

	assert.ErrorContains(t, err, "webhook request failed")
}
