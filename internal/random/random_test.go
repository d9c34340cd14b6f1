package random

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteDraw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0.42\n"))
	}))
	defer srv.Close()

	r := NewRemote(srv.URL, time.Second)
	value, err := r.Draw(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.42, value, 1e-9)
}

func TestRemoteDrawBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	r := NewRemote(srv.URL, time.Second)
	_, err := r.Draw(context.Background())
	assert.Error(t, err)
}

func TestRemoteDrawGarbage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not a number"))
	}))
	defer srv.Close()

	r := NewRemote(srv.URL, time.Second)
	_, err := r.Draw(context.Background())
	assert.Error(t, err)
}

func TestRemoteDrawOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0.42" + strings.Repeat(" ", 1<<20)))
	}))
	defer srv.Close()

	r := NewRemote(srv.URL, time.Second)
	value, err := r.Draw(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.42, value, 1e-9)
}

func TestPseudoDraw(t *testing.T) {
	p := NewPseudo()
	for i := 0; i < 100; i++ {
		value, err := p.Draw(context.Background())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, value, 0.0, "Draw %d out of range", i)
		assert.Less(t, value, 1.0, "Draw %d out of range", i)
	}
}
