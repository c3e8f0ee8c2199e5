package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func waitFor(t *testing.T, b *syncBuffer, want string) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(b.String(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("output %q never contained %q", b.String(), want)
}

func TestWatchReexpandsOnWrite(t *testing.T) {
	path := writeTemp(t, "watched.js", "f(_);\n")

	var out syncBuffer
	w := &Watch{Sources: []string{path}, Stdout: &out}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	waitFor(t, &out, "(_p0) => f(_p0);")

	if err := os.WriteFile(path, []byte("_.size;\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	waitFor(t, &out, "(_p0) => _p0.size;")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch.Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch.Run() did not stop after cancellation")
	}
}

func TestWatchWriteBack(t *testing.T) {
	path := writeTemp(t, "inplace.js", "_ * 2;\n")

	w := &Watch{Sources: []string{path}, Write: true, Stdout: &syncBuffer{}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	want := "(_p0) => _p0 * 2;\n"
	deadline := time.Now().Add(5 * time.Second)
	for {
		data, err := os.ReadFile(path)
		if err == nil && string(data) == want {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("file contents = %q; want %q", data, want)
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch.Run() error = %v", err)
	}
}

func TestWatchWriteLeavesHoleFreeFiles(t *testing.T) {
	const src = "/* note */ g(y)\n"
	path := writeTemp(t, "plain.js", src)

	var out syncBuffer
	w := &Watch{Sources: []string{path}, Write: true, Stdout: &out}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the initial pass time to run before checking the file.
	time.Sleep(200 * time.Millisecond)
	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch.Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != src {
		t.Errorf("file contents = %q; want %q unchanged", data, src)
	}
}
