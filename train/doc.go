// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs the gradient descent demos.
//
// # Overview
//
// Four demos are available:
//   - linear: y = m*x + b fitted with MSE and SGD
//   - logistic: a single sigmoid unit separating two Gaussian blobs
//   - xor: a 2-8-1 tanh network on four quadrant clusters
//   - spiral: a 2-16-16-1 tanh network on two spiral arms, minibatched
//
// # Basic Usage
//
//	session, err := train.New(train.KindSpiral, train.Config{Seed: 1})
//	if err != nil {
//	    return err
//	}
//
//	canvas := render.NewCanvas(render.Options{})
//	last, err := train.Run(ctx, session, train.RunOptions{
//	    Epochs:     1000,
//	    FrameEvery: 50,
//	}, func(snap train.Snapshot) error {
//	    img := canvas.Draw(session.Scene(snap))
//	    return save(snap.Epoch, img)
//	})
//
// # Snapshots
//
// Step returns a Snapshot holding copies of the parameters. Its Predict
// method is a pure function that may be evaluated concurrently while the
// session keeps training.
package train
