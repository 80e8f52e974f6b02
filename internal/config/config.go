package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	CORS     CORSConfig     `mapstructure:"cors"     validate:"required"`
	Reminder ReminderConfig `mapstructure:"reminder" validate:"required"`
}

// ServerConfig contains settings for the summary HTTP server and the shared log level.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// CORSConfig lists the origins allowed to call the HTTP APIs from a browser.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
}

// ReminderConfig contains all settings for the reminder daemon.
type ReminderConfig struct {
	// Port is where the reminder control API listens.
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`

	// Interval between reminder cycle starts.
	Interval time.Duration `mapstructure:"interval" validate:"required,gt=0"`

	Title               string        `mapstructure:"title"                validate:"required"`
	NotificationTimeout time.Duration `mapstructure:"notification_timeout" validate:"gt=0"`

	// Backend selects how reminders are rendered: "desktop" shells out to
	// platform tools, "log" writes them to the structured log.
	Backend string `mapstructure:"backend" validate:"required,oneof=desktop log"`

	// Command overrides. Empty values fall back to the platform defaults.
	NotifyCommand string `mapstructure:"notify_command"`
	PopupCommand  string `mapstructure:"popup_command"`
	SpeechCommand string `mapstructure:"speech_command"`
}
