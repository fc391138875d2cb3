// Package service wires the aggregation core into one facade used by the host process
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/headlines/pkg/domain"
	"github.com/umputun/headlines/pkg/runner"
	"github.com/umputun/headlines/pkg/scheduler"
)

//go:generate moq -out mocks/article_reader.go -pkg mocks -skip-ensure -fmt goimports . ArticleReader
//go:generate moq -out mocks/run_trigger.go -pkg mocks -skip-ensure -fmt goimports . RunTrigger
//go:generate moq -out mocks/schedule.go -pkg mocks -skip-ensure -fmt goimports . Schedule

// ArticleReader reads stored articles
type ArticleReader interface {
	GetArticles(ctx context.Context, limit int) ([]domain.Article, error)
	GetCategoryArticles(ctx context.Context, category string, limit int) ([]domain.Article, error)
	Count(ctx context.Context) (int, error)
}

// RunTrigger starts runs and reports their status
type RunTrigger interface {
	Trigger(ctx context.Context) domain.RunOutcome
	Status() runner.Status
}

// Schedule is the recurring run timer
type Schedule interface {
	Start(ctx context.Context) error
	Stop()
	Next(t time.Time) time.Time
}

// Params defines aggregator dependencies. Runs and Schedule are nil in a worker process.
type Params struct {
	Role     scheduler.Role
	Articles ArticleReader
	Runs     RunTrigger
	Schedule Schedule
	Sources  int // number of registered sources
}

// Aggregator is the host-facing facade of the aggregation core
type Aggregator struct {
	role     scheduler.Role
	articles ArticleReader
	runs     RunTrigger
	schedule Schedule
	sources  int
}

// Status is a snapshot reported by the host
type Status struct {
	Role     scheduler.Role `json:"role"`
	Sources  int            `json:"sources,omitempty"`
	Articles int            `json:"articles"`
	NextRun  time.Time      `json:"next_run,omitzero"`
	Run      *runner.Status `json:"run,omitempty"`
}

// NewAggregator makes an aggregator
func NewAggregator(params Params) *Aggregator {
	if params.Role == "" {
		params.Role = scheduler.RoleCoordinator
	}
	return &Aggregator{
		role:     params.Role,
		articles: params.Articles,
		runs:     params.Runs,
		schedule: params.Schedule,
		sources:  params.Sources,
	}
}

// StartScheduler starts the recurring run, safe to call more than once.
// Worker processes get scheduler.ErrNotCoordinator.
func (a *Aggregator) StartScheduler(ctx context.Context) error {
	if a.role != scheduler.RoleCoordinator || a.schedule == nil {
		return scheduler.ErrNotCoordinator
	}
	if err := a.schedule.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	return nil
}

// StopScheduler stops the recurring run if this process owns it
func (a *Aggregator) StopScheduler() {
	if a.schedule != nil {
		a.schedule.Stop()
	}
}

// TriggerRunNow runs the pipeline immediately and returns its outcome
func (a *Aggregator) TriggerRunNow(ctx context.Context) domain.RunOutcome {
	if a.role != scheduler.RoleCoordinator || a.runs == nil {
		lgr.Printf("[WARN] manual run refused in %s process", a.role)
		return domain.Failed(scheduler.ErrNotCoordinator)
	}
	return a.runs.Trigger(ctx)
}

// GetArticles returns stored articles, most recent first, zero limit means all
func (a *Aggregator) GetArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	return a.articles.GetArticles(ctx, limit)
}

// GetCategoryArticles returns stored articles of one category, most recent first
func (a *Aggregator) GetCategoryArticles(ctx context.Context, category string, limit int) ([]domain.Article, error) {
	return a.articles.GetCategoryArticles(ctx, category, limit)
}

// Status reports the process role, stored articles count and the run status when known
func (a *Aggregator) Status(ctx context.Context) (Status, error) {
	count, err := a.articles.Count(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("get status: %w", err)
	}
	res := Status{Role: a.role, Sources: a.sources, Articles: count}
	if a.schedule != nil {
		res.NextRun = a.schedule.Next(time.Now())
	}
	if a.runs != nil {
		st := a.runs.Status()
		res.Run = &st
	}
	return res, nil
}
