package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskpulse/internal/config"
	"github.com/phrazzld/taskpulse/internal/platform/desktop"
	"github.com/phrazzld/taskpulse/internal/platform/httpserver"
	"github.com/phrazzld/taskpulse/internal/reminder"
)

// application holds the reminder daemon's dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger
	engine *reminder.Engine
}

func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	return newApplicationWithNotifier(cfg, logger, newNotifier(cfg.Reminder, logger))
}

func newApplicationWithNotifier(
	cfg *config.Config,
	logger *slog.Logger,
	notifier reminder.Notifier,
) *application {
	engine := reminder.NewEngine(notifier, reminder.EngineConfig{
		Interval: cfg.Reminder.Interval,
		Messages: reminder.Messages{
			Title:   cfg.Reminder.Title,
			Timeout: cfg.Reminder.NotificationTimeout,
		},
	}, logger)

	return &application{
		config: cfg,
		logger: logger,
		engine: engine,
	}
}

// newNotifier picks the rendering backend named in cfg.
func newNotifier(cfg config.ReminderConfig, logger *slog.Logger) reminder.Notifier {
	if cfg.Backend == "log" {
		return desktop.NewLogNotifier(logger)
	}

	n := desktop.NewCommandNotifier(desktop.Commands{
		Notify: cfg.NotifyCommand,
		Popup:  cfg.PopupCommand,
		Speech: cfg.SpeechCommand,
	}, nil, logger)

	cmds := n.Commands()
	logger.Info("using desktop notifier",
		"notify_command", cmds.Notify,
		"popup_command", cmds.Popup,
		"speech_command", cmds.Speech)
	return n
}

// Run serves the control API until ctx is cancelled, then shuts the engine down.
func (app *application) Run(ctx context.Context) error {
	defer app.engine.Shutdown()

	addr := fmt.Sprintf(":%d", app.config.Reminder.Port)
	if err := httpserver.New(addr, app.setupRouter(), app.logger).Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
