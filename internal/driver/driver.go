// Package driver schedules training steps and frame renders.
//
// Run replaces a per-frame animation callback with an explicit loop: each
// tick performs one step, and every few epochs the resulting snapshot is
// handed to a frame callback. Steps and frames never overlap.
package driver

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/born-ml/gradviz/internal/train"
)

// Stepper advances training by one epoch.
//
// *train.Session satisfies Stepper.
type Stepper interface {
	Step() (train.Snapshot, error)
}

// FrameFunc receives a snapshot to render. Returning an error stops Run.
type FrameFunc func(snap train.Snapshot) error

// Options controls the schedule.
type Options struct {
	Epochs     int           // Steps to run; <= 0 runs until ctx is done
	Interval   time.Duration // Delay between steps; 0 runs back to back
	FrameEvery int           // Emit a frame every N epochs; <= 0 means every epoch
	LogEvery   int           // Log progress every N epochs; <= 0 disables
	Logger     *zap.SugaredLogger
}

// Run drives s until opts.Epochs steps are done, ctx is cancelled, a step
// fails, or onFrame returns an error.
//
// A frame is emitted every FrameEvery epochs and after the final epoch.
// It returns the last snapshot taken, and ctx.Err() on cancellation.
func Run(ctx context.Context, s Stepper, opts Options, onFrame FrameFunc) (train.Snapshot, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	every := opts.FrameEvery
	if every <= 0 {
		every = 1
	}

	var tick <-chan time.Time
	if opts.Interval > 0 {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	var (
		last     train.Snapshot
		diverged bool
		framed   bool
	)
	emit := func(snap train.Snapshot) error {
		framed = true
		if onFrame == nil {
			return nil
		}
		if err := onFrame(snap); err != nil {
			return fmt.Errorf("frame at epoch %d: %w", snap.Epoch, err)
		}
		return nil
	}

	for i := 0; opts.Epochs <= 0 || i < opts.Epochs; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return last, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return last, err
		}

		snap, err := s.Step()
		if err != nil {
			return last, fmt.Errorf("step %d: %w", i+1, err)
		}
		last = snap
		framed = false

		if !diverged && (math.IsNaN(snap.Loss) || math.IsInf(snap.Loss, 0)) {
			diverged = true
			log.Warnw("loss diverged", "epoch", snap.Epoch, "lr", snap.LR)
		}
		if opts.LogEvery > 0 && snap.Epoch%opts.LogEvery == 0 {
			fields := []any{"demo", snap.Kind.String(), "epoch", snap.Epoch, "loss", snap.Loss, "lr", snap.LR}
			log.Infow("step", append(fields, snap.Counters()...)...)
		}

		if snap.Epoch%every == 0 {
			if err := emit(snap); err != nil {
				return last, err
			}
		}
	}

	if !framed {
		if err := emit(last); err != nil {
			return last, err
		}
	}
	return last, nil
}
