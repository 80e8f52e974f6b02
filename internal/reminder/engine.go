package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ticker delivers cycle boundaries to the Engine loop.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker is the default TickerFunc, backed by time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// EngineConfig holds configuration for the reminder engine
type EngineConfig struct {
	// Interval between the starts of consecutive cycles.
	// If zero, defaults to one minute.
	Interval time.Duration

	Messages Messages
}

// DefaultEngineConfig returns an EngineConfig with the standard one-minute cadence
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Interval: time.Minute,
		Messages: DefaultMessages(),
	}
}

// Engine holds reminder tasks and announces them on a fixed interval until
// every task is exhausted. All methods are safe for concurrent use.
type Engine struct {
	notifier  Notifier
	config    EngineConfig
	logger    *slog.Logger
	newTicker TickerFunc
	now       func() time.Time

	// mu guards tasks, state and stop.
	mu    sync.Mutex
	tasks []ReminderTask
	state State
	stop  chan struct{}

	// cycleMu serialises CheckCycle so cycles never overlap.
	cycleMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine creates an idle Engine rendering reminders through notifier.
func NewEngine(notifier Notifier, config EngineConfig, logger *slog.Logger) *Engine {
	if config.Interval <= 0 {
		config.Interval = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		notifier:  notifier,
		config:    config,
		logger:    logger.With(slog.String("component", "reminder_engine")),
		newTicker: NewTimeTicker,
		now:       time.Now,
		state:     StateIdle,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// SetTicker replaces the ticker factory. Must be called before Start.
func (e *Engine) SetTicker(fn TickerFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.newTicker = fn
}

// AddTask appends a task with reminderCount announcements left. It is picked
// up by the next cycle that starts after the call.
func (e *Engine) AddTask(description string, reminderCount int) (ReminderTask, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return ReminderTask{}, ErrEmptyDescription
	}
	if reminderCount < 0 {
		return ReminderTask{}, fmt.Errorf("%w: got %d", ErrInvalidReminderCount, reminderCount)
	}

	task := ReminderTask{
		ID:             uuid.New(),
		Description:    description,
		RemainingCount: reminderCount,
		CreatedAt:      e.now().UTC(),
	}

	e.mu.Lock()
	e.tasks = append(e.tasks, task)
	pending := len(e.tasks)
	e.mu.Unlock()

	e.logger.Info("task added",
		"task_id", task.ID,
		"reminder_count", reminderCount,
		"pending_tasks", pending)

	return task, nil
}

// Tasks returns a copy of the active tasks in insertion order.
func (e *Engine) Tasks() []ReminderTask {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]ReminderTask(nil), e.tasks...)
}

// State reports whether the periodic loop is running.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Start launches the periodic loop if the engine is idle and returns
// immediately. It is a no-op while running or after Shutdown.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateRunning || e.ctx.Err() != nil {
		return
	}

	e.state = StateRunning
	e.stop = make(chan struct{})
	ticker := e.newTicker(e.config.Interval)

	e.wg.Add(1)
	go e.run(e.stop, ticker)

	e.logger.Info("reminder loop started", "interval", e.config.Interval.String())
}

// Stop asks the loop to exit at the next cycle boundary. A cycle already in
// progress runs to completion. Stop is idempotent.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopLocked() {
		e.logger.Info("reminder loop stopping")
	}
}

// stopLocked moves a running engine to Idle and reports whether it did.
// e.mu must be held.
func (e *Engine) stopLocked() bool {
	if e.state != StateRunning {
		return false
	}

	close(e.stop)
	e.stop = nil
	e.state = StateIdle
	return true
}

// Shutdown stops the loop, cancels in-flight notifications and waits for the
// loop goroutine to exit. The engine cannot be restarted afterwards.
func (e *Engine) Shutdown() {
	e.Stop()
	e.cancel()
	e.wg.Wait()
}

// run is the loop body. Each invocation owns its own stop channel so a
// Stop/Start pair never leaves two loops ticking.
func (e *Engine) run(stop <-chan struct{}, ticker Ticker) {
	defer e.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-e.ctx.Done():
			return

		case <-stop:
			e.logger.Info("reminder loop stopped")
			return

		case <-ticker.C():
			// prefer a pending stop over a simultaneous tick
			select {
			case <-stop:
				e.logger.Info("reminder loop stopped")
				return
			default:
			}

			if err := e.CheckCycle(e.ctx); err != nil {
				e.logger.Error("reminder cycle finished with errors", "error", err)
			}
		}
	}
}

// CheckCycle runs one reminder cycle: every task with reminders left is
// announced once and decremented, exhausted tasks are removed, and the loop is
// stopped when no tasks remain. Notification failures are logged and joined
// into the returned error; they never skip other effects or tasks.
func (e *Engine) CheckCycle(ctx context.Context) error {
	e.cycleMu.Lock()
	defer e.cycleMu.Unlock()

	// emptiness and the move to Idle are decided under one lock
	e.mu.Lock()
	snapshot := append([]ReminderTask(nil), e.tasks...)
	if len(snapshot) == 0 {
		e.stopLocked()
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()

	e.logger.Debug("checking tasks", "task_count", len(snapshot))

	var errs []error
	for _, r := range Plan(snapshot, e.config.Messages) {
		errs = append(errs, e.deliver(ctx, r)...)
	}

	e.mu.Lock()
	active, exhausted := Settle(e.tasks, snapshot)
	e.tasks = active
	stopped := len(active) == 0 && e.stopLocked()
	e.mu.Unlock()

	for _, task := range exhausted {
		e.logger.Info("task completed", "task_id", task.ID)
	}

	if stopped {
		e.logger.Info("all tasks completed, reminder loop stopping")
	}

	return errors.Join(errs...)
}

// deliver renders r through every effect in order, collecting failures.
func (e *Engine) deliver(ctx context.Context, r Reminder) []error {
	effects := []struct {
		name string
		fn   func(context.Context, Reminder) error
	}{
		{"notification", e.notifier.Notify},
		{"popup", e.notifier.Popup},
		{"speech", e.notifier.Speak},
	}

	var errs []error
	for _, effect := range effects {
		if err := effect.fn(ctx, r); err != nil {
			e.logger.Error("reminder effect failed",
				"effect", effect.name,
				"task_id", r.TaskID,
				"error", err)
			errs = append(errs, fmt.Errorf("%s for task %s: %w", effect.name, r.TaskID, err))
		}
	}
	return errs
}
