package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/game-management-service/internal/config"
	domaingames "github.com/preston-bernstein/game-management-service/internal/domain/games"
	"github.com/preston-bernstein/game-management-service/internal/metrics"
	"github.com/preston-bernstein/game-management-service/internal/testutil"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	rec, _ := testutil.NewRecorderWithShutdown()
	cfg := config.Config{
		Port:        "0",
		CORSOrigins: []string{"https://games.example"},
	}
	return newServerWithMetrics(cfg, logger, rec)
}

func TestServerServesGameLifecycle(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Handler()

	body := `{"name":"Chess","creationDate":"2023-07-10","active":true}`
	rr := testutil.Serve(router, http.MethodPost, "/v1/games", strings.NewReader(body))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header from middleware")
	}

	rr = testutil.Serve(router, http.MethodPost, "/v1/games", strings.NewReader(body))
	testutil.AssertStatus(t, rr, http.StatusConflict)

	rr = testutil.Serve(router, http.MethodGet, "/v1/games/Chess", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var got domaingames.Game
	testutil.DecodeJSON(t, rr, &got)
	if got != testutil.SampleGame("Chess") {
		t.Fatalf("unexpected game %+v", got)
	}

	rr = testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodDelete, "/v1/games/Chess", nil)
	testutil.AssertStatus(t, rr, http.StatusNoContent)

	if srv.store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", srv.store.Len())
	}
	if srv.metrics.OperationCalls(metrics.OpCreate) != 2 {
		t.Fatalf("expected 2 create calls recorded, got %d", srv.metrics.OperationCalls(metrics.OpCreate))
	}
	if srv.metrics.OperationErrors(metrics.OpCreate) != 1 {
		t.Fatalf("expected 1 create error recorded, got %d", srv.metrics.OperationErrors(metrics.OpCreate))
	}
}

func TestServerAppliesCORS(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/games", nil)
	req.Header.Set("Origin", "https://games.example")
	rr := testutil.ServeRequest(srv.Handler(), req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://games.example" {
		t.Fatalf("expected allow origin header, got %q", got)
	}
}

func TestServerAppliesBodyLimit(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rec, _ := testutil.NewRecorderWithShutdown()
	srv := newServerWithMetrics(config.Config{Port: "0", MaxBodyBytes: 8}, logger, rec)

	body := `{"name":"Chess","creationDate":"2023-07-10","active":true}`
	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/v1/games", strings.NewReader(body))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestNewConstructsServer(t *testing.T) {
	cfg := config.Config{
		Port: "0",
		Metrics: config.MetricsConfig{
			Enabled: false,
		},
	}
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	if srv.store == nil || srv.store.Len() != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	svc := testutil.NewServiceWithGames(nil)
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, svc, httpSrv)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestGracefulShutdownStopsMetrics(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	svc := testutil.NewServiceWithGames(testutil.SampleGames("Chess"))
	httpSrv := &testutil.StubHTTPServer{}
	metricsSrv := &testutil.StubHTTPServer{}
	stopCalls := 0

	srv := newServerWithDeps(config.Config{}, logger, svc, httpSrv)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopCalls++
		return nil
	}
	srv.gracefulShutdown()

	if metricsSrv.ShutdownCalls != 1 || stopCalls != 1 {
		t.Fatalf("expected metrics server and exporter stopped, got %d/%d", metricsSrv.ShutdownCalls, stopCalls)
	}
	if !strings.Contains(buf.String(), "shutdown complete") || !strings.Contains(buf.String(), "count=1") {
		t.Fatalf("expected shutdown log with game count, got %s", buf.String())
	}
}

func TestGracefulShutdownDrainsHealthChecks(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	srv.gracefulShutdown()

	rr = testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	rr = testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	svc := testutil.NewServiceWithGames(nil)
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, svc, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestShutdownTimeoutPrefersConfig(t *testing.T) {
	srv := newServerWithDeps(config.Config{ShutdownTimeout: 3 * time.Second}, nil, nil, nil)
	if got := srv.shutdownTimeout(); got != 3*time.Second {
		t.Fatalf("expected configured timeout, got %s", got)
	}

	srv = newServerWithDeps(config.Config{}, nil, nil, nil)
	if got := srv.shutdownTimeout(); got != shutdownTimeout {
		t.Fatalf("expected default timeout, got %s", got)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	svc := testutil.NewServiceWithGames(nil)
	httpSrv := &testutil.ErrHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, svc, httpSrv)

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := testutil.NewServiceWithGames(nil)
	httpSrv := &testutil.CloseableHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, svc, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}
