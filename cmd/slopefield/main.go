package main

import (
	"log/slog"
	"os"

	"slopefield/internal/field"
	"slopefield/internal/loop"
	"slopefield/internal/render"
	"slopefield/internal/window"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	render.SetLogger(logger)

	cfg := field.DefaultViewport()
	eq := field.DoubleX

	w := window.New(cfg.Width, cfg.Height, window.Title(eq.Name))
	l, err := loop.New(w, cfg, eq, loop.WithLogger(logger))
	if err != nil {
		logger.Error("start", "err", err)
		_ = w.Close()
		os.Exit(1)
	}

	err = window.Run(w, l)
	if derr := l.Dispose(); derr != nil && err == nil {
		err = derr
	}
	if err != nil {
		logger.Error("window", "err", err)
		os.Exit(1)
	}
}
