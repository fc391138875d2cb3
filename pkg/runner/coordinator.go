package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/headlines/pkg/domain"
	"github.com/umputun/headlines/pkg/metrics"
)

// ErrRunInProgress is reported when a run is triggered while another one is still running
var ErrRunInProgress = errors.New("run already in progress")

// Runner executes one run and returns the number of persisted articles
type Runner interface {
	Run(ctx context.Context) (int, error)
}

// State of the coordinator
type State string

// coordinator states, done and errored are reported through the last outcome
const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

// Status is a snapshot of the coordinator
type Status struct {
	State        State              `json:"state"`
	LastOutcome  *domain.RunOutcome `json:"last_outcome,omitempty"`
	LastRunAt    time.Time          `json:"last_run_at,omitzero"`
	LastDuration string             `json:"last_duration,omitempty"`
	Runs         int                `json:"runs"`
}

// Coordinator runs the pipeline in its own goroutine and waits for exactly one outcome.
// It never retries, the next trigger is the only recovery.
type Coordinator struct {
	runner Runner

	mu      sync.Mutex
	running bool
	status  Status
}

// NewCoordinator makes a coordinator for the given runner
func NewCoordinator(r Runner) *Coordinator {
	return &Coordinator{runner: r, status: Status{State: StateIdle}}
}

// Trigger starts a run and blocks until it reports. A trigger during a running run
// is not queued, it gets an error outcome right away.
func (c *Coordinator) Trigger(ctx context.Context) domain.RunOutcome {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		lgr.Printf("[WARN] run skipped, %v", ErrRunInProgress)
		return domain.Failed(ErrRunInProgress)
	}
	c.running = true
	c.status.State = StateRunning
	c.mu.Unlock()

	st := time.Now()
	lgr.Printf("[INFO] run started")
	outcome := <-c.spawn(ctx)
	elapsed := time.Since(st)

	metrics.RunsTotal.WithLabelValues(string(outcome.Status)).Inc()
	metrics.RunDuration.Observe(elapsed.Seconds())
	if outcome.OK() {
		lgr.Printf("[INFO] run completed in %v, %d articles", elapsed.Truncate(time.Millisecond), outcome.Count)
	} else {
		lgr.Printf("[ERROR] run failed after %v: %s", elapsed.Truncate(time.Millisecond), outcome.Error)
	}

	c.mu.Lock()
	c.running = false
	c.status.State = StateIdle
	c.status.LastOutcome = &outcome
	c.status.LastRunAt = st
	c.status.LastDuration = elapsed.Truncate(time.Millisecond).String()
	c.status.Runs++
	c.mu.Unlock()
	return outcome
}

// spawn runs the pipeline in a separate goroutine, the returned channel gets exactly one outcome
func (c *Coordinator) spawn(ctx context.Context) <-chan domain.RunOutcome {
	resCh := make(chan domain.RunOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				resCh <- domain.Failed(fmt.Errorf("run terminated abnormally: %v", r))
			}
		}()
		count, err := c.runner.Run(ctx)
		if err != nil {
			resCh <- domain.Failed(err)
			return
		}
		resCh <- domain.Done(count)
	}()
	return resCh
}

// Status returns a copy of the current status
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := c.status
	if c.status.LastOutcome != nil {
		o := *c.status.LastOutcome
		res.LastOutcome = &o
	}
	return res
}
