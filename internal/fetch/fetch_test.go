package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kjarman/uscf-history/internal/diag"
)

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != UserAgent {
			t.Errorf("expected User-Agent %q, got %q", UserAgent, got)
		}
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	f := New(time.Second, time.Millisecond, 3, diag.Discard)
	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !strings.Contains(body, "ok") {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestFetchRetriesTransientFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	f := New(time.Second, time.Millisecond, 3, diag.Discard)
	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed after retries: %v", err)
	}
	if body != "recovered" {
		t.Errorf("unexpected body: %q", body)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestFetchExhaustsRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := New(time.Second, time.Millisecond, 3, diag.Discard)
	_, err := f.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if !strings.Contains(err.Error(), "unexpected status code") {
		t.Errorf("expected status-code error, got: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", got)
	}
}

func TestFetchContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := New(time.Second, 50*time.Millisecond, 3, diag.Discard)
	_, err := f.Fetch(ctx, srv.URL)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestNewClampsRetries(t *testing.T) {
	f := New(time.Second, 0, 0, nil)
	if f.maxRetries != 1 {
		t.Errorf("expected maxRetries clamped to 1, got %d", f.maxRetries)
	}
	if f.reporter == nil {
		t.Error("expected nil reporter to be replaced")
	}
}
