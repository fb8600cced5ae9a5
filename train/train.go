// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"context"

	"github.com/born-ml/gradviz/internal/driver"
	"github.com/born-ml/gradviz/internal/train"
)

// Errors.
var (
	ErrUnknownKind  = train.ErrUnknownKind
	ErrEmptyDataset = train.ErrEmptyDataset
	ErrInvalidLR    = train.ErrInvalidLR
)

// Kind selects one of the demos.
type Kind = train.Kind

// Demos.
const (
	KindLinear   = train.KindLinear
	KindLogistic = train.KindLogistic
	KindXOR      = train.KindXOR
	KindSpiral   = train.KindSpiral
)

// Kinds lists every demo.
func Kinds() []Kind { return train.Kinds() }

// ParseKind maps a demo name to a Kind.
func ParseKind(name string) (Kind, error) { return train.ParseKind(name) }

// Config holds the tunable parameters of a Session.
type Config = train.Config

// Session is the training state of one demo.
type Session = train.Session

// Snapshot is an immutable copy of a session's state after a step.
type Snapshot = train.Snapshot

// New creates a Session with fresh data and weights.
func New(kind Kind, cfg Config) (*Session, error) { return train.New(kind, cfg) }

// Stepper advances training by one epoch.
type Stepper = driver.Stepper

// FrameFunc receives a snapshot to render.
type FrameFunc = driver.FrameFunc

// RunOptions controls the schedule of Run.
type RunOptions = driver.Options

// Run steps s until the epochs are exhausted or ctx is done, calling
// onFrame every opts.FrameEvery epochs and after the last one.
func Run(ctx context.Context, s Stepper, opts RunOptions, onFrame FrameFunc) (Snapshot, error) {
	return driver.Run(ctx, s, opts, onFrame)
}
