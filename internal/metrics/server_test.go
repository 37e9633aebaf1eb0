package metrics_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/internal/metrics"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServe_ScrapeAndStop(t *testing.T) {
	ln, err := metrics.Listen("127.0.0.1:0")
	require.NoError(t, err)

	m := metrics.New()
	m.ObserveQuery(metrics.OpWalk, metrics.ResultOK)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- metrics.Serve(ctx, ln, m, discard())
	}()

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", ln.Addr()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `wordgraph_queries_total{op="walk",result="ok"} 1`)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestListen_BadAddr(t *testing.T) {
	_, err := metrics.Listen("256.0.0.1:bad")
	require.ErrorContains(t, err, "metrics: listen")
}

func TestListen_AddrInUse(t *testing.T) {
	busy, err := metrics.Listen("127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	_, err = metrics.Listen(busy.Addr().String())
	require.Error(t, err)
}
