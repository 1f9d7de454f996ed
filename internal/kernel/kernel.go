package kernel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"nbnav/internal/config"
	"nbnav/internal/domain"
	"nbnav/internal/eventbus"
	"nbnav/internal/logging"
)

// ErrNoCommand is returned when no shell command is configured
var ErrNoCommand = errors.New("kernel: no shell command configured")

// Kernel executes submitted cell sources
type Kernel interface {
	Execute(ctx context.Context, cellID domain.CellID, source string) (domain.CellExecutedEvent, error)
	Close()
}

// shellKernel runs each submission through a shell command
type shellKernel struct {
	bus        eventbus.EventBus
	shell      []string
	timeout    time.Duration
	workerPool chan struct{} // Semaphore for limiting concurrent executions
	log        logging.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	unsub  func()

	// mu guards closed and wg.Add against Close
	mu     sync.Mutex
	closed bool
}

// New creates a shell kernel. When bus is non-nil the kernel executes every
// InputSubmittedEvent and reports back with ExecutionStarted and CellExecuted events.
func New(bus eventbus.EventBus, settings config.KernelSettings, log logging.Logger) Kernel {
	if log == nil {
		log = logging.Nop()
	}
	workers := settings.MaxConcurrent
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	k := &shellKernel{
		bus:        bus,
		shell:      settings.Shell,
		timeout:    settings.Timeout(),
		workerPool: make(chan struct{}, workers),
		log:        log.With(logging.F("component", "kernel")),
		ctx:        ctx,
		cancel:     cancel,
	}

	if bus != nil {
		k.unsub = bus.Subscribe(eventbus.EventInputSubmitted, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.InputSubmittedEvent); ok {
				k.start(event)
			}
		})
	}
	return k
}

// start runs event in the background unless the kernel is closed
func (k *shellKernel) start(event eventbus.InputSubmittedEvent) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		k.log.Debug("kernel closed, dropping submission", logging.F("cell", event.CellID))
		return false
	}
	k.wg.Add(1)
	go func() {
		defer k.wg.Done()
		k.run(event)
	}()
	return true
}

func (k *shellKernel) run(event eventbus.InputSubmittedEvent) {
	ctx := k.ctx
	if k.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, k.timeout)
		defer cancel()
	}

	result, err := k.Execute(ctx, event.CellID, event.Source)
	if err != nil {
		k.log.Warn("execution failed", logging.F("cell", event.CellID), logging.F("err", err))
		if errors.Is(err, context.Canceled) && k.ctx.Err() != nil {
			// shutting down
			return
		}
	}
	k.bus.Publish(result)
}

// Execute runs source and collects its output. Command failures are reported
// as error outputs on the result; the returned error is for logging.
func (k *shellKernel) Execute(ctx context.Context, cellID domain.CellID, source string) (domain.CellExecutedEvent, error) {
	result := domain.CellExecutedEvent{CellID: cellID}

	if len(k.shell) == 0 {
		result.Failed = true
		result.Outputs = []domain.Output{{Text: ErrNoCommand.Error(), IsError: true}}
		return result, ErrNoCommand
	}

	// Acquire worker slot
	select {
	case k.workerPool <- struct{}{}:
		defer func() { <-k.workerPool }()
	case <-ctx.Done():
		result.Failed = true
		result.Outputs = []domain.Output{{Text: "cancelled before start", IsError: true}}
		return result, ctx.Err()
	}

	if k.bus != nil {
		k.bus.Publish(domain.ExecutionStartedEvent{CellID: cellID})
	}

	if strings.TrimSpace(source) == "" {
		return result, nil
	}

	args := append(append([]string{}, k.shell[1:]...), source)
	cmd := exec.CommandContext(ctx, k.shell[0], args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// children of the shell may keep the pipes open after it is killed
	cmd.WaitDelay = 500 * time.Millisecond

	start := time.Now()
	err := cmd.Run()
	result.Duration = time.Since(start)

	if out := strings.TrimRight(stdout.String(), "\n"); out != "" {
		result.Outputs = append(result.Outputs, domain.Output{Text: out})
	}
	if out := strings.TrimRight(stderr.String(), "\n"); out != "" {
		result.Outputs = append(result.Outputs, domain.Output{Text: out, IsError: true})
	}

	if err != nil {
		result.Failed = true
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = fmt.Errorf("execution timed out after %s: %w", k.timeout, ctx.Err())
		case ctx.Err() != nil:
			err = fmt.Errorf("execution cancelled: %w", ctx.Err())
		default:
			err = fmt.Errorf("execution failed: %w", err)
		}
		result.Outputs = append(result.Outputs, domain.Output{Text: err.Error(), IsError: true})
		return result, err
	}

	k.log.Debug("executed", logging.F("cell", cellID), logging.F("duration", result.Duration))
	return result, nil
}

// Close cancels running executions and waits for them to finish
func (k *shellKernel) Close() {
	if k.unsub != nil {
		k.unsub()
	}
	k.mu.Lock()
	k.closed = true
	k.mu.Unlock()
	k.cancel()
	k.wg.Wait()
}
