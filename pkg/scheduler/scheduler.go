package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/umputun/headlines/pkg/domain"
)

//go:generate moq -out mocks/trigger.go -pkg mocks -skip-ensure -fmt goimports . Trigger

// DefaultSpec runs every 2 hours, evaluated in UTC
const DefaultSpec = "0 */2 * * *"

// ErrNotCoordinator is returned by Start in a process that does not own the schedule
var ErrNotCoordinator = errors.New("scheduler is owned by the coordinator process")

// Role is the process role, given explicitly at startup
type Role string

// process roles
const (
	RoleCoordinator Role = "coordinator"
	RoleWorker      Role = "worker"
)

// ParseRole converts a role name, empty means coordinator
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCoordinator, "":
		return RoleCoordinator, nil
	case RoleWorker:
		return RoleWorker, nil
	}
	return "", fmt.Errorf("unknown role %q, expected %s or %s", s, RoleCoordinator, RoleWorker)
}

// Trigger starts one run and waits for its outcome
type Trigger interface {
	Trigger(ctx context.Context) domain.RunOutcome
}

// Params defines scheduler dependencies and settings
type Params struct {
	Trigger    Trigger
	Role       Role
	Spec       string        // standard 5-field cron spec or descriptor, DefaultSpec if empty
	Schedule   cron.Schedule // optional, overrides Spec
	RunOnStart bool          // trigger one run right after start
}

// Scheduler fires runs on a fixed UTC schedule. Only a coordinator process may start it,
// ticks never queue behind a running run.
type Scheduler struct {
	trigger    Trigger
	role       Role
	spec       string
	schedule   cron.Schedule
	runOnStart bool

	mu      sync.Mutex
	cron    *cron.Cron
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler, spec is validated here
func NewScheduler(params Params) (*Scheduler, error) {
	if params.Trigger == nil {
		return nil, errors.New("scheduler requires a trigger")
	}
	if params.Role == "" {
		params.Role = RoleCoordinator
	}
	if params.Spec == "" {
		params.Spec = DefaultSpec
	}

	schedule := params.Schedule
	if schedule == nil {
		parsed, err := cron.ParseStandard(params.Spec)
		if err != nil {
			return nil, fmt.Errorf("parse schedule %q: %w", params.Spec, err)
		}
		schedule = parsed
	}

	return &Scheduler{
		trigger:    params.Trigger,
		role:       params.Role,
		spec:       params.Spec,
		schedule:   schedule,
		runOnStart: params.RunOnStart,
	}, nil
}

// Start registers the recurring run. It does nothing if already started,
// and refuses with ErrNotCoordinator in a worker process.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.role != RoleCoordinator {
		return ErrNotCoordinator
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		lgr.Printf("[DEBUG] scheduler already started")
		return nil
	}

	ctx, s.cancel = context.WithCancel(ctx)
	logger := cron.PrintfLogger(cronLogger{})
	s.cron = cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	s.cron.Schedule(s.schedule, cron.FuncJob(func() { s.run(ctx, "scheduled") }))
	s.cron.Start()
	s.started = true

	if s.runOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.run(ctx, "initial")
		}()
	}

	lgr.Printf("[INFO] scheduler started, schedule %q in UTC, next run at %s", s.spec,
		s.schedule.Next(time.Now().UTC()).Format(time.RFC3339))
	return nil
}

// Stop removes the schedule and waits for a running run to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	lgr.Printf("[INFO] stopping scheduler...")
	s.cancel()
	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.started = false
	lgr.Printf("[INFO] scheduler stopped")
}

// Next returns the next fire time after t, in UTC
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t.UTC())
}

// Role returns the process role the scheduler was made for
func (s *Scheduler) Role() Role {
	return s.role
}

func (s *Scheduler) run(ctx context.Context, reason string) {
	if ctx.Err() != nil {
		return
	}
	lgr.Printf("[DEBUG] %s run triggered", reason)
	outcome := s.trigger.Trigger(ctx)
	lgr.Printf("[DEBUG] %s run finished, %s", reason, outcome)
}

// cronLogger sends cron errors to lgr
type cronLogger struct{}

func (cronLogger) Printf(format string, args ...any) {
	lgr.Printf("[WARN] cron: "+format, args...)
}
