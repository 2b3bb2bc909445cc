package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	myGRPC "github.com/MKhiriev/go-pass-vault/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-pass-vault/internal/handler/http"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func TestNewServer_NoServers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}
	_, err := NewServer(handlers, config.Server{GRPCAddress: "not-an-address"}, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating gRPC server")
	assert.ErrorIs(t, err, errListenGRPC)
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}
	srv, err := NewServer(handlers, config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.RunServer(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}
}

func TestHTTPServer_ServesHandler(t *testing.T) {
	h := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}), config.Server{RequestTimeout: time.Second}, logger.Nop())

	ts := httptest.NewServer(h.server.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, time.Second, h.server.WriteTimeout)
}
