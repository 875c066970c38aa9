package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mseforge/settext/pkg/logger"
)

func newTestWatcher(t *testing.T, cfg Config) Watcher {
	t.Helper()

	w, err := New(cfg, logger.Noop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func TestLifecycleErrors(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, Config{DebounceInterval: 10 * time.Millisecond})

	if err := w.Stop(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Stop() before Start = %v, want ErrNotStarted", err)
	}

	ctx := context.Background()
	if err := w.Start(ctx, []string{dir}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := w.Start(ctx, []string{dir}); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() = %v, want ErrAlreadyStarted", err)
	}

	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if err := w.Stop(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Stop() after Close = %v, want ErrWatcherClosed", err)
	}
	if err := w.Start(ctx, []string{dir}); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Start() after Close = %v, want ErrWatcherClosed", err)
	}
}

func TestStartNoValidPaths(t *testing.T) {
	w := newTestWatcher(t, Config{})

	err := w.Start(context.Background(), []string{filepath.Join(t.TempDir(), "missing")})
	if !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Start() = %v, want ErrInvalidPath", err)
	}
}

func TestWantFile(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		path       string
		want       bool
	}{
		{"match", []string{".mse-set"}, "/sets/a.mse-set", true},
		{"case insensitive", []string{".mse-set"}, "/sets/A.MSE-SET", true},
		{"other extension", []string{".mse-set"}, "/sets/a.txt", false},
		{"no filter", nil, "/sets/a.anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &watcher{config: Config{Extensions: tt.extensions}}
			if got := w.wantFile(tt.path); got != tt.want {
				t.Errorf("wantFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWriteEventDelivered(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, Config{
		DebounceInterval: 20 * time.Millisecond,
		Extensions:       []string{".mse-set"},
	})

	if err := w.Start(context.Background(), []string{dir}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	path := filepath.Join(dir, "demo.mse-set")
	if err := os.WriteFile(path, []byte("title: x\n"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case event := <-w.Events():
		if event.Path != path {
			t.Errorf("event.Path = %q, want %q", event.Path, path)
		}
		if event.Op != OpCreate && event.Op != OpWrite {
			t.Errorf("event.Op = %v, want CREATE or WRITE", event.Op)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestFilteredFileProducesNoEvent(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, Config{
		DebounceInterval: 20 * time.Millisecond,
		Extensions:       []string{".mse-set"},
	})

	if err := w.Start(context.Background(), []string{dir}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case event := <-w.Events():
		t.Errorf("unexpected event for filtered file: %+v", event)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRapidWritesCoalesce(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, Config{
		DebounceInterval: 150 * time.Millisecond,
		Extensions:       []string{".mse-set"},
	})

	if err := w.Start(context.Background(), []string{dir}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	path := filepath.Join(dir, "demo.mse-set")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("title: x\n"), 0600); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-w.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for coalesced event")
	}

	// The burst should have collapsed into a single delivery.
	select {
	case event := <-w.Events():
		t.Errorf("unexpected extra event: %+v", event)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpCreate, "CREATE"},
		{OpWrite, "WRITE"},
		{OpRemove, "REMOVE"},
		{OpRename, "RENAME"},
		{Op(0), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
