package desktop

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/phrazzld/taskpulse/internal/reminder"
)

// Commands names the executables used for each reminder effect.
type Commands struct {
	Notify string
	Popup  string
	Speech string
}

// DefaultCommands returns the stock tools for goos.
func DefaultCommands(goos string) Commands {
	if goos == "darwin" {
		return Commands{Notify: "osascript", Popup: "osascript", Speech: "say"}
	}
	return Commands{Notify: "notify-send", Popup: "zenity", Speech: "espeak"}
}

// Override returns c with every non-empty field of o applied.
func (c Commands) Override(o Commands) Commands {
	if o.Notify != "" {
		c.Notify = o.Notify
	}
	if o.Popup != "" {
		c.Popup = o.Popup
	}
	if o.Speech != "" {
		c.Speech = o.Speech
	}
	return c
}

// Runner executes name with args and waits for it to exit.
type Runner func(ctx context.Context, name string, args ...string) error

// ExecRunner runs the command with os/exec, folding its output into the error.
func ExecRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("running %s: %w (output: %s)", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// CommandNotifier implements reminder.Notifier by shelling out to desktop tools.
type CommandNotifier struct {
	commands Commands
	run      Runner
	logger   *slog.Logger
}

var _ reminder.Notifier = (*CommandNotifier)(nil)

// NewCommandNotifier creates a notifier for commands. A nil run uses ExecRunner.
func NewCommandNotifier(commands Commands, run Runner, logger *slog.Logger) *CommandNotifier {
	if run == nil {
		run = ExecRunner
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandNotifier{
		commands: DefaultCommands(runtime.GOOS).Override(commands),
		run:      run,
		logger:   logger.With(slog.String("component", "command_notifier")),
	}
}

// Commands returns the resolved executables.
func (n *CommandNotifier) Commands() Commands {
	return n.commands
}

// Notify posts a desktop notification.
func (n *CommandNotifier) Notify(ctx context.Context, r reminder.Reminder) error {
	return n.exec(ctx, n.commands.Notify, notifyArgs(n.commands.Notify, r))
}

// Popup shows a modal dialog; the underlying tool blocks until it is dismissed.
func (n *CommandNotifier) Popup(ctx context.Context, r reminder.Reminder) error {
	return n.exec(ctx, n.commands.Popup, popupArgs(n.commands.Popup, r))
}

// Speak reads the reminder aloud.
func (n *CommandNotifier) Speak(ctx context.Context, r reminder.Reminder) error {
	return n.exec(ctx, n.commands.Speech, []string{r.Speech})
}

func (n *CommandNotifier) exec(ctx context.Context, name string, args []string) error {
	n.logger.Debug("running reminder command", "command", name)
	return n.run(ctx, name, args...)
}

func notifyArgs(command string, r reminder.Reminder) []string {
	switch filepath.Base(command) {
	case "notify-send":
		return []string{"-t", strconv.FormatInt(r.Timeout.Milliseconds(), 10), r.Title, r.Message}
	case "osascript":
		return []string{"-e", fmt.Sprintf("display notification %s with title %s",
			appleScriptString(r.Message), appleScriptString(r.Title))}
	default:
		return []string{r.Title, r.Message}
	}
}

func popupArgs(command string, r reminder.Reminder) []string {
	switch filepath.Base(command) {
	case "zenity":
		return []string{"--info", "--title", r.Title, "--text", r.Message}
	case "kdialog":
		return []string{"--title", r.Title, "--msgbox", r.Message}
	case "osascript":
		return []string{"-e", fmt.Sprintf(`display dialog %s with title %s buttons {"OK"} default button "OK"`,
			appleScriptString(r.Message), appleScriptString(r.Title))}
	default:
		return []string{r.Title, r.Message}
	}
}

// appleScriptString quotes s as an AppleScript string literal.
func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
