package main

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rorado/colistrack/internal/api/httpapi"
	"github.com/rorado/colistrack/internal/labelpdf"
	"github.com/rorado/colistrack/internal/services/labels"
	"github.com/rorado/colistrack/internal/services/shipments"
	"github.com/rorado/colistrack/internal/services/tracking"
	"github.com/rorado/colistrack/internal/storage/filestore"
)

func TestRunHTTPServer_servesAndShutsDown(t *testing.T) {
	store := filestore.New(t.TempDir())
	require.NoError(t, store.Init())

	shipSvc := shipments.New(store, nil, "")
	handler := httpapi.New(httpapi.Config{
		Shipments: shipSvc,
		Tracking:  tracking.New(store, nil, 0),
		Labels:    labels.New(shipSvc),
		Renderer:  labelpdf.New(""),
		Store:     store,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- runHTTPServer(ctx, serverOpts{
			httpAddr: "127.0.0.1:0",
			onListen: func(addr string) { addrCh <- addr },
		}, handler.Router())
	}()

	var addr string
	select {
	case addr = <-addrCh:
	case err := <-errCh:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start listening")
	}

	resp, err := http.Get("http://" + addr + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, 200, resp.StatusCode)
	require.Contains(t, string(body), `"ok"`)

	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
