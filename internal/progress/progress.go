// Package progress renders a terminal progress bar for the checksum pass.
package progress

import (
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"
)

const barWidth = 40

// Bar is a minimal thread-safe progress bar. A nil *Bar is valid and
// renders nothing, so callers can pass it through unconditionally.
type Bar struct {
	total      int64
	current    int64
	writer     io.Writer
	mu         sync.Mutex
	lastFile   string
	lastUpdate time.Time
}

// New creates a bar for total steps writing to w.
func New(total int64, w io.Writer) *Bar {
	return &Bar{
		total:      total,
		writer:     w,
		lastUpdate: time.Now(),
	}
}

// Step records one completed file and redraws, throttled to at most one
// repaint per 100ms to avoid flickering on fast runs.
func (b *Bar) Step(file string) {
	if b == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.current++
	b.lastFile = path.Base(file)

	now := time.Now()
	if now.Sub(b.lastUpdate) > 100*time.Millisecond || b.current == b.total {
		b.lastUpdate = now
		b.render()
	}
}

// render must be called with mu held.
func (b *Bar) render() {
	if b.total == 0 {
		return
	}

	filled := int(int64(barWidth) * b.current / b.total)
	if filled > barWidth {
		filled = barWidth
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	percent := b.current * 100 / b.total

	fmt.Fprintf(b.writer, "\r\033[K[%s] %3d%% (%d/%d) %s",
		bar, percent, b.current, b.total, b.lastFile)
}

// Finish draws the completed bar and terminates the line.
func (b *Bar) Finish() {
	if b == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = b.total
	b.render()
	fmt.Fprintln(b.writer)
}
