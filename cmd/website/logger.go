package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/adampresley/photogallery/cmd/website/internal/configuration"
	"gopkg.in/natefinch/lumberjack.v2"
)

func setupLogger(config *configuration.Config, version string) {
	var (
		handler slog.Handler
		level   slog.Level
		out     io.Writer = os.Stdout
	)

	switch strings.ToLower(config.LogLevel) {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelDebug
	}

	if config.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
	}

	options := &slog.HandlerOptions{Level: level}

	if strings.ToLower(config.LogFormat) == "json" {
		handler = slog.NewJSONHandler(out, options)
	} else {
		handler = slog.NewTextHandler(out, options)
	}

	slog.SetDefault(slog.New(handler).With("version", version))
}
