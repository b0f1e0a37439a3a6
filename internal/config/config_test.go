package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if opts != Default() {
		t.Errorf("opts = %+v, want defaults", opts)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vimotion.toml")
	data := []byte("jump_history_limit = 10\nscroll_overlap = 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.JumpHistoryLimit != 10 {
		t.Errorf("JumpHistoryLimit = %d, want 10", opts.JumpHistoryLimit)
	}
	if opts.ScrollOverlap != 3 {
		t.Errorf("ScrollOverlap = %d, want 3", opts.ScrollOverlap)
	}
	// Unset keys keep their defaults.
	if opts.ChangeHistoryLimit != Default().ChangeHistoryLimit {
		t.Errorf("ChangeHistoryLimit = %d, want default", opts.ChangeHistoryLimit)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vimotion.toml")
	if err := os.WriteFile(path, []byte("jump_history_limit = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load malformed file: want error")
	}
}

func TestParseNormalizes(t *testing.T) {
	opts, err := Parse([]byte("jump_history_limit = -5\nhalf_page = -1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.JumpHistoryLimit != 0 || opts.HalfPage != 0 {
		t.Errorf("negative values not clamped: %+v", opts)
	}
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vimotion.toml")
	if err := os.WriteFile(path, []byte("half_page = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	var got Options
	loaded := make(chan struct{}, 4)

	w, err := NewWatcher(path, func(o Options, err error) {
		if err != nil {
			t.Errorf("reload: %v", err)
			return
		}
		mu.Lock()
		got = o
		mu.Unlock()
		loaded <- struct{}{}
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("half_page = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-loaded:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	mu.Lock()
	defer mu.Unlock()
	if got.HalfPage != 9 {
		t.Errorf("HalfPage = %d, want 9", got.HalfPage)
	}
}
