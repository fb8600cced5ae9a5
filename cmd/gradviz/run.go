package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/born-ml/gradviz/internal/config"
	"github.com/born-ml/gradviz/internal/driver"
	"github.com/born-ml/gradviz/internal/render"
	"github.com/born-ml/gradviz/internal/train"
)

func runCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "run <linear|logistic|xor|spiral>",
		Short:     "Train a demo and write PNG frames",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"linear", "logistic", "xor", "spiral"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := train.ParseKind(args[0])
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.run(ctx, kind)
		},
	}
	a.attachFlags(cmd,
		"epochs", "lr", "every", "interval", "out", "seed", "batch",
		"width", "height", "scale", "stride", "workers", "no-axis")
	return cmd
}

func canvasOptions(r config.Render) render.Options {
	return render.Options{
		Width:    r.Width,
		Height:   r.Height,
		Scale:    r.Scale,
		Stride:   r.Stride,
		HideAxis: r.HideAxis,
		Workers:  r.Workers,
	}
}

// framePath names the frame written after epoch.
func framePath(dir string, epoch int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%05d.png", epoch))
}

func (a *app) run(ctx context.Context, kind train.Kind) error {
	cfg := a.cfg
	session, err := train.New(kind, train.Config{
		LR:        cfg.Run.LR,
		BatchSize: cfg.Run.Batch,
		Seed:      cfg.Run.Seed,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Run.Out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	canvas := render.NewCanvas(canvasOptions(cfg.Render))
	frames := 0
	writeFrame := func(snap train.Snapshot) error {
		img := canvas.Draw(session.Scene(snap))
		path := framePath(cfg.Run.Out, snap.Epoch)

		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := render.EncodePNG(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		frames++
		a.log.Debugw("frame", "path", path, "epoch", snap.Epoch, "loss", snap.Loss)
		return nil
	}

	a.log.Infow("training",
		"demo", kind.String(),
		"points", len(session.Points()),
		"epochs", cfg.Run.Epochs,
		"lr", session.LR(),
		"out", cfg.Run.Out)

	last, err := driver.Run(ctx, session, driver.Options{
		Epochs:     cfg.Run.Epochs,
		Interval:   cfg.Run.Interval,
		FrameEvery: cfg.Run.Every,
		LogEvery:   cfg.Run.Every,
		Logger:     a.log,
	}, writeFrame)
	if err != nil {
		if ctx.Err() != nil {
			a.log.Warnw("interrupted", "epoch", last.Epoch, "frames", frames)
		}
		return err
	}

	fields := []any{"demo", kind.String(), "epoch", last.Epoch, "loss", last.Loss, "frames", frames}
	fields = append(fields, last.Counters()...)
	if kind != train.KindLinear {
		fields = append(fields, "accuracy", last.Accuracy(session.Points()))
	}
	a.log.Infow("done", fields...)
	return nil
}
