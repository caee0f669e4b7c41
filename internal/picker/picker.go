// Package picker shows the native "open file" dialog without blocking the
// render loop.
package picker

import (
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/sqweek/dialog"
)

// Picker runs at most one dialog at a time on its own goroutine and hands
// the chosen path back through Poll.
type Picker struct {
	title string
	open  atomic.Bool
	picks chan string
	log   *slog.Logger
}

// New returns a picker filtered to .glb files.
func New(log *slog.Logger) *Picker {
	return &Picker{
		title: "Open glTF binary",
		picks: make(chan string, 1),
		log:   log,
	}
}

// Open shows the dialog unless one is already showing.
func (p *Picker) Open() {
	if !p.open.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer p.open.Store(false)
		path, err := dialog.File().Filter("glTF binary", "glb").Title(p.title).Load()
		if errors.Is(err, dialog.ErrCancelled) {
			return
		}
		if err != nil {
			p.log.Warn("file dialog failed", "error", err)
			return
		}
		p.picks <- path
	}()
}

// Poll returns the last chosen path without blocking.
func (p *Picker) Poll() (string, bool) {
	select {
	case path := <-p.picks:
		return path, true
	default:
		return "", false
	}
}
