package main

import (
	"io"
	"log/slog"

	"github.com/gogpu/circleimage"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	root := &cobra.Command{
		Use:   "circleimage",
		Short: "Render images clipped to a circle with a ring border",
		Long: `circleimage fits an image into a circle with a center-crop, optionally
surrounds it with a ring border, and writes the result as PNG or JPEG.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := newLogger(cmd.ErrOrStderr(), logLevel, logFormat)
			slog.SetDefault(logger)
			circleimage.SetLogger(logger)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(newRenderCmd(), newGeometryCmd(), newVersionCmd())
	return root
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
