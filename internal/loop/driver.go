// Package loop turns a stream of frame timestamps into simulation ticks.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// UpdateFunc advances the simulation by dt milliseconds.
type UpdateFunc func(dt float64)

// DrawFunc renders the state left by the last update.
type DrawFunc func()

// Option configures a Driver.
type Option func(*Driver)

// WithMaxDelta caps dt at ms milliseconds. Zero or less disables the cap.
func WithMaxDelta(ms float64) Option {
	return func(d *Driver) {
		d.maxDelta = max(ms, 0)
	}
}

// WithLogger sets the logger used by Run.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// Driver calls update and then draw once per frame. The first frame after
// construction or Resume gets dt = 0, and a timestamp lower than the previous
// one also gives dt = 0.
//
// A Driver is not safe for concurrent use.
type Driver struct {
	update UpdateFunc
	draw   DrawFunc

	maxDelta float64
	last     float64
	started  bool
	paused   bool
	frames   uint64

	logger *log.Logger
}

// NewDriver creates a driver. A nil draw is allowed for headless use.
func NewDriver(update UpdateFunc, draw DrawFunc, opts ...Option) *Driver {
	if update == nil {
		update = func(float64) {}
	}
	if draw == nil {
		draw = func() {}
	}

	d := &Driver{
		update: update,
		draw:   draw,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Frame delivers one frame stamped ts milliseconds. Frames are ignored
// while paused.
func (d *Driver) Frame(ts float64) {
	if d.paused {
		return
	}

	dt := 0.0
	if d.started && ts > d.last {
		dt = ts - d.last
	}
	if d.maxDelta > 0 && dt > d.maxDelta {
		dt = d.maxDelta
	}
	d.last = ts
	d.started = true

	d.update(dt)
	d.draw()
	d.frames++
}

// Pause stops delivering frames until Resume.
func (d *Driver) Pause() { d.paused = true }

// Resume restarts delivery. The next frame is treated as the first one so
// the time spent paused is not fed to the simulation.
func (d *Driver) Resume() {
	d.paused = false
	d.started = false
}

// Paused reports whether the driver is paused.
func (d *Driver) Paused() bool { return d.paused }

// Frames returns the number of frames delivered.
func (d *Driver) Frames() uint64 { return d.frames }

// Run feeds frames from a ticker until ctx is cancelled. Timestamps are
// milliseconds since Run started. It returns ctx.Err().
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	d.logger.Debug("loop started", "interval", interval)

	for {
		select {
		case t := <-ticker.C:
			d.Frame(float64(t.Sub(start)) / float64(time.Millisecond))
		case <-ctx.Done():
			d.logger.Debug("loop stopped", "frames", d.frames)
			return ctx.Err()
		}
	}
}
