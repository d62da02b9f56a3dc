package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatchReappliesOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	if err := os.WriteFile(path, []byte("developers:\n  - name: First\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan *Fixtures, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 20*time.Millisecond, func(f *Fixtures) error {
			got <- f
			return nil
		}, nil)
	}()

	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("developers:\n  - name: Second\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case f := <-got:
		if len(f.Developers) != 1 || f.Developers[0].Name != "Second" {
			t.Fatalf("unexpected fixtures: %+v", f)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("fixtures were not reapplied")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchReloadsDoNotOverlap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	if err := os.WriteFile(path, []byte("developers: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var active, peak, calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 5*time.Millisecond, func(*Fixtures) error {
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(80 * time.Millisecond)
			active.Add(-1)
			calls.Add(1)
			return nil
		}, nil)
	}()

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 4; i++ {
		body := fmt.Sprintf("developers:\n  - name: Dev%d\n", i)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(30 * time.Millisecond)
	}

	deadline := time.Now().Add(5 * time.Second)
	for calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("watch: %v", err)
	}
	if calls.Load() < 2 {
		t.Fatalf("expected several reloads, got %d", calls.Load())
	}
	if peak.Load() != 1 {
		t.Fatalf("reloads overlapped: peak %d", peak.Load())
	}
}

func TestWatchDropsPendingReloadOnStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	if err := os.WriteFile(path, []byte("developers: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 300*time.Millisecond, func(*Fixtures) error {
			calls.Add(1)
			return nil
		}, nil)
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("developers:\n  - name: Late\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("watch: %v", err)
	}

	time.Sleep(500 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Fatalf("apply ran %d times after Watch returned", n)
	}
}
