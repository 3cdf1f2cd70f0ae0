package core

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnomegl/urlsx/internal/client"
)

func testProbeConfig() ProbeConfig {
	return ProbeConfig{
		HeadTimeout: 2 * time.Second,
		GetTimeout:  2 * time.Second,
	}
}

func newTestProber(t *testing.T) *Prober {
	t.Helper()
	httpClient, err := client.NewHTTPClient(client.ClientConfig{Timeout: 5})
	require.NoError(t, err)
	return NewProber(httpClient, testProbeConfig())
}

func TestProbeLiveViaHead(t *testing.T) {
	var sawGet atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			sawGet.Store(true)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := newTestProber(t)
	assert.Equal(t, OutcomeLive, p.Probe(context.Background(), server.URL+"/asset.jpg"))
	assert.False(t, sawGet.Load(), "a 200 HEAD must short-circuit the GET fallback")
}

func TestProbeFallsBackToGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := newTestProber(t)
	assert.Equal(t, OutcomeLive, p.Probe(context.Background(), server.URL+"/asset.jpg"))
}

func TestProbeDeadOnNotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	p := newTestProber(t)
	assert.Equal(t, OutcomeDead, p.Probe(context.Background(), server.URL+"/missing.jpg"))
}

func TestProbeErrorOnConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/gone.jpg"
	server.Close()

	p := newTestProber(t)
	assert.Equal(t, OutcomeError, p.Probe(context.Background(), url))
}

func TestProbeRedirectIsNotLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer server.Close()

	p := newTestProber(t)
	assert.Equal(t, OutcomeDead, p.Probe(context.Background(), server.URL+"/asset.jpg"))
}
