package main

import (
	"fmt"
	"log/slog"
	"os"

	"htmx-tictactoe/config"
	"htmx-tictactoe/handlers"

	"github.com/gin-gonic/gin"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := config.MustLoad(configPath())
	logger := initLogger(conf)
	slog.SetDefault(logger)

	gin.SetMode(conf.GinMode)
	r := handlers.SetupRouter(conf.TemplatesDir, conf.StaticDir, logger)

	logger.Info("starting server", "addr", conf.HTTPAddr)
	if err := r.Run(conf.HTTPAddr); err != nil {
		panic(fmt.Errorf("server stopped: %w", err))
	}
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.yml"
}

func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
