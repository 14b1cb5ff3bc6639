package utils

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// syncBuffer guards the buffer shared between the spinner goroutine and the test.
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

func TestSpinner_StartStop(t *testing.T) {
	out := &syncBuffer{}
	s := NewSpinner(out, "generating", time.Millisecond)
	s.StopMsg = "finished"

	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.Stop()

	got := out.String()
	assert.Contains(t, got, "generating")
	assert.Contains(t, got, "finished")
}
