package dfracwatch

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dfracwatch/crawl"
	"dfracwatch/runlog"
)

// TestService_RunsImmediatelyAndStops verifies the startup crawl and a clean
// Stop.
func TestService_RunsImmediatelyAndStops(t *testing.T) {
	srv, _ := newSiteServer(t)

	session, err := crawl.NewSession(crawl.Config{BaseURL: srv.URL + "/en/"})
	require.NoError(t, err)

	runStore, err := runlog.NewStore(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { runStore.Close() })

	pipeline := &Pipeline{
		Session:  session,
		Runs:     runStore,
		MaxPages: 2,
		MaxAge:   30 * 24 * time.Hour,
	}
	service := NewService(pipeline, time.Hour)

	errChan := make(chan error, 1)
	go func() {
		errChan <- service.Run(context.Background())
	}()

	// The startup crawl records one run; poll for it.
	deadline := time.After(5 * time.Second)
	for {
		runs, err := runStore.ListRuns(0)
		require.NoError(t, err)
		if len(runs) == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("startup crawl never recorded a run")
		case <-time.After(10 * time.Millisecond):
		}
	}

	service.Stop()
	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("service did not stop")
	}
}

// TestService_ContextCancel verifies cancellation ends the loop with the
// context's error.
func TestService_ContextCancel(t *testing.T) {
	srv, _ := newSiteServer(t)

	session, err := crawl.NewSession(crawl.Config{BaseURL: srv.URL + "/en/"})
	require.NoError(t, err)

	pipeline := &Pipeline{Session: session, MaxPages: 1, MaxAge: 24 * time.Hour}
	service := NewService(pipeline, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- service.Run(ctx)
	}()

	cancel()
	select {
	case err := <-errChan:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("service did not stop on cancellation")
	}
}
