package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Vintermom/my-music-notes/pkg/core"
)

func TestReadWriteDelete(t *testing.T) {
	m := New(Config{Dir: t.TempDir()})

	if _, present, err := m.Read("notes"); err != nil || present {
		t.Fatalf("fresh medium: present=%v err=%v", present, err)
	}

	if err := m.Write("notes", `["a"]`); err != nil {
		t.Fatalf("write: %v", err)
	}
	value, present, err := m.Read("notes")
	if err != nil || !present || value != `["a"]` {
		t.Fatalf("read back: value=%q present=%v err=%v", value, present, err)
	}

	if err := m.Delete("notes"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, present, _ := m.Read("notes"); present {
		t.Fatal("key should be gone after delete")
	}
	if err := m.Delete("notes"); err != nil {
		t.Fatalf("deleting an absent key should not fail: %v", err)
	}
}

func TestWriteCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "store")
	m := New(Config{Dir: dir})

	if err := m.Write("k", "v"); err != nil {
		t.Fatalf("write into missing dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "k")); err != nil {
		t.Fatalf("expected backing file: %v", err)
	}
}

func TestInvalidKeys(t *testing.T) {
	m := New(Config{Dir: t.TempDir()})
	for _, key := range []string{"", "a/b", `a\b`, "../escape"} {
		if err := m.Write(key, "v"); err == nil {
			t.Errorf("key %q should be rejected", key)
		}
	}
}

func TestQuota(t *testing.T) {
	m := New(Config{Dir: t.TempDir(), MaxBytes: 10})

	if err := m.Write("a", "12345"); err != nil {
		t.Fatalf("within budget: %v", err)
	}
	if err := m.Write("b", "123456"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}

	// Replacing a key counts the new size, not old plus new.
	if err := m.Write("a", "1234567890"); err != nil {
		t.Fatalf("replace within budget: %v", err)
	}
}

func TestKeys(t *testing.T) {
	m := New(Config{Dir: t.TempDir()})

	if keys, err := m.Keys(); err != nil || len(keys) != 0 {
		t.Fatalf("fresh medium: keys=%v err=%v", keys, err)
	}

	for _, k := range []string{"alpha", "beta"} {
		if err := m.Write(k, "v"); err != nil {
			t.Fatal(err)
		}
	}
	keys, err := m.Keys()
	if err != nil || len(keys) != 2 {
		t.Fatalf("keys=%v err=%v", keys, err)
	}
}

func TestWriteAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	m := New(Config{Dir: dir})

	for i := 0; i < 5; i++ {
		if err := m.Write("k", strings.Repeat("x", 100)); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), tempFilePrefix) {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

func TestWatch(t *testing.T) {
	m := New(Config{Dir: t.TempDir()})
	if err := m.Write("seed", "v"); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := m.Watch(ctx, "mymusicnotes_*")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := m.Write("unrelated", "v"); err != nil {
		t.Fatal(err)
	}
	if err := m.Write("mymusicnotes_notes", `[]`); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-events:
		if ev.Key != "mymusicnotes_notes" {
			t.Errorf("expected event for the matching key, got %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event within timeout")
	}

	cancel()
	for range events {
		// drain until the watcher closes the channel
	}
}

func TestWatchEventTypes(t *testing.T) {
	m := New(Config{Dir: t.TempDir()})
	if err := m.Write("k", "v"); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := m.Watch(ctx, "*")
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Delete("k"); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Type == core.EventDelete && ev.Key == "k" {
				return
			}
		case <-deadline:
			t.Fatal("no delete event within timeout")
		}
	}
}
