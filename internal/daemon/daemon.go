package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"chirp/internal/config"
	"chirp/internal/instruction"
	"chirp/internal/logging"
	"chirp/internal/params"
	"chirp/internal/queue"
	"chirp/internal/tasks"
)

// ErrNotRunning reports an Enqueue against a daemon that is not accepting
// instructions.
var ErrNotRunning = errors.New("daemon: not running")

// State is the daemon lifecycle phase.
type State int

const (
	StateStopped State = iota
	StateRunning
	StateStopping
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	default:
		return "stopped"
	}
}

// Daemon coordinates the single worker goroutine and enforces single-instance
// execution via a lock file.
type Daemon struct {
	cfg      *config.Config
	logger   *slog.Logger
	queue    *queue.Queue
	store    *params.Store
	registry *tasks.Registry

	lockPath string
	lock     *flock.Flock

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	wg     sync.WaitGroup

	dispatched atomic.Int64
	setOps     atomic.Int64
	taskRuns   atomic.Int64
	unknown    atomic.Int64
}

// Status is a point-in-time snapshot of daemon runtime information.
type Status struct {
	State               State
	QueueDepth          int
	Dispatched          int64
	SetOperations       int64
	TaskRuns            int64
	UnknownInstructions int64
	Tasks               []string
	ParameterCount      int
	LockPath            string
	PID                 int
}

// New constructs a stopped daemon with empty parameter and task state.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("daemon requires config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		queue:    queue.New(),
		store:    params.NewStore(),
		registry: tasks.NewRegistry(),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Start acquires the instance lock and launches the worker goroutine.
// Calling Start on a running daemon is a no-op.
func (d *Daemon) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateRunning {
		return nil
	}
	if d.state == StateStopping {
		return errors.New("daemon is stopping")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another chirp daemon instance is already running")
	}

	workerCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.state = StateRunning
	d.wg.Add(1)
	go d.run(workerCtx)

	d.logger.Info("daemon started", logging.String("lock", d.lockPath))
	return nil
}

// Stop drains the queue, joins the worker, and releases the instance lock.
// Items already enqueued are still executed; new Enqueue calls fail with
// ErrNotRunning as soon as Stop begins.
func (d *Daemon) Stop() {
	d.mu.Lock()
	if d.state != StateRunning {
		d.mu.Unlock()
		return
	}
	d.state = StateStopping
	d.mu.Unlock()

	d.wg.Wait()

	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.state = StateStopped
	d.mu.Unlock()

	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.logger.Info("daemon stopped",
		logging.Int64("dispatched", d.dispatched.Load()))
}

// Enqueue appends one decoded instruction for execution. It never blocks.
func (d *Daemon) Enqueue(correlationToken, raw string) error {
	// The state check and the push stay under one lock: an item admitted
	// while Running is in the queue before Stop can flip the state, so the
	// drain on Stop always sees it.
	d.mu.Lock()
	if d.state != StateRunning {
		d.mu.Unlock()
		return ErrNotRunning
	}
	d.queue.Push(queue.Item{
		CorrelationToken: correlationToken,
		Raw:              raw,
		EnqueuedAt:       time.Now(),
	})
	d.mu.Unlock()
	d.logger.Debug("instruction enqueued",
		logging.String(logging.FieldCorrelationToken, correlationToken),
		logging.String(logging.FieldInstruction, raw))
	return nil
}

// RegisterTask installs a handler under name; a nil handler removes it.
func (d *Daemon) RegisterTask(name string, handler tasks.Handler) {
	d.registry.Register(name, handler)
}

// GetParameter reads one parameter from the store.
func (d *Daemon) GetParameter(name string) (string, bool) {
	return d.store.Get(name)
}

// Parameters returns a detached copy of the full parameter map.
func (d *Daemon) Parameters() map[string]string {
	return d.store.Snapshot()
}

// Status reports the current lifecycle state and dispatch counters.
func (d *Daemon) Status() Status {
	d.mu.Lock()
	state := d.state
	d.mu.Unlock()

	return Status{
		State:               state,
		QueueDepth:          d.queue.Len(),
		Dispatched:          d.dispatched.Load(),
		SetOperations:       d.setOps.Load(),
		TaskRuns:            d.taskRuns.Load(),
		UnknownInstructions: d.unknown.Load(),
		Tasks:               d.registry.Names(),
		ParameterCount:      d.store.Len(),
		LockPath:            d.lockPath,
		PID:                 os.Getpid(),
	}
}

func (d *Daemon) stopping() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == StateStopping
}

// run is the worker loop. It exits only after a stop request once the queue
// is fully drained.
func (d *Daemon) run(ctx context.Context) {
	defer d.wg.Done()
	for {
		item, ok := d.queue.PopWait(d.cfg.PopTimeout())
		if ok {
			d.dispatch(ctx, item)
			continue
		}
		if d.stopping() && d.queue.Len() == 0 {
			return
		}
	}
}

func (d *Daemon) dispatch(ctx context.Context, item queue.Item) {
	d.dispatched.Add(1)

	switch cmd := instruction.Parse(item.Raw).(type) {
	case instruction.SetParameter:
		if err := d.store.Set(cmd.Name, cmd.Value); err != nil {
			d.logger.Error("parameter set failed",
				logging.String(logging.FieldParameter, cmd.Name),
				logging.String(logging.FieldCorrelationToken, item.CorrelationToken),
				logging.Error(err))
			return
		}
		d.setOps.Add(1)
		d.logger.Info("parameter set",
			logging.String(logging.FieldParameter, cmd.Name),
			logging.String("value", cmd.Value),
			logging.String(logging.FieldCorrelationToken, item.CorrelationToken))
	case instruction.RunTask:
		if err := d.registry.Invoke(ctx, cmd.Name, item.CorrelationToken); err != nil {
			d.logger.Warn("task invocation failed",
				logging.String(logging.FieldTask, cmd.Name),
				logging.String(logging.FieldCorrelationToken, item.CorrelationToken),
				logging.Error(err))
			return
		}
		d.taskRuns.Add(1)
		d.logger.Info("task executed",
			logging.String(logging.FieldTask, cmd.Name),
			logging.String(logging.FieldCorrelationToken, item.CorrelationToken))
	case instruction.Noop:
		d.logger.Debug("noop instruction",
			logging.String(logging.FieldCorrelationToken, item.CorrelationToken))
	case instruction.Unknown:
		d.unknown.Add(1)
		d.logger.Warn("unknown instruction",
			logging.String(logging.FieldInstruction, cmd.Raw),
			logging.String(logging.FieldCorrelationToken, item.CorrelationToken))
	}
}
