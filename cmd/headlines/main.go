package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/headlines/pkg/cluster"
	"github.com/umputun/headlines/pkg/config"
	"github.com/umputun/headlines/pkg/feed"
	"github.com/umputun/headlines/pkg/registry"
	"github.com/umputun/headlines/pkg/repository"
	"github.com/umputun/headlines/pkg/runner"
	"github.com/umputun/headlines/pkg/scheduler"
	"github.com/umputun/headlines/pkg/service"
	"github.com/umputun/headlines/server"
)

// Opts with all CLI options
type Opts struct {
	Config     string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults and embedded feed catalog if not set"`
	Role       string `long:"role" env:"ROLE" default:"coordinator" choice:"coordinator" choice:"worker" description:"process role, only the coordinator schedules runs"`
	Replicas   int    `long:"replicas" env:"REPLICAS" default:"0" description:"worker replicas started by the coordinator, 0 to serve in-process"`
	ListenerFD int    `long:"listener-fd" env:"LISTENER_FD" description:"inherited listener descriptor, set by the coordinator for its replicas"`
	Listen     string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DSN        string `long:"dsn" env:"DSN" description:"database DSN, overrides config"`
	RunNow     bool   `long:"run-now" env:"RUN_NOW" description:"run aggregation right after start"`

	// common options
	Dbg     bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Dbg, opts.NoColor)
	lgr.Printf("[INFO] starting headlines version %s, role %s", revision, opts.Role)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	lgr.Printf("[INFO] shutdown complete")
}

// run wires the components for the process role and blocks until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	role, err := scheduler.ParseRole(opts.Role)
	if err != nil {
		return err
	}

	reg, err := registry.New(cfg.GetFeeds())
	if err != nil {
		return fmt.Errorf("failed to load feed catalog: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close store: %v", err)
		}
	}()

	if role == scheduler.RoleWorker {
		return runWorker(ctx, opts, cfg, service.NewAggregator(service.Params{
			Role: role, Articles: repos.Article, Sources: reg.Len()}))
	}
	return runCoordinator(ctx, opts, cfg, reg, repos)
}

// runWorker serves requests only, on the inherited listener or on the configured address
func runWorker(ctx context.Context, opts Opts, cfg *config.Config, agg *service.Aggregator) error {
	var ln net.Listener
	if opts.ListenerFD > 0 {
		var err error
		if ln, err = cluster.InheritedListener(opts.ListenerFD); err != nil {
			return err
		}
	}
	srv := server.New(cfg, agg, revision, opts.Dbg)
	return srv.Run(ctx, ln)
}

// runCoordinator owns the schedule. With replicas it supervises workers sharing its listener,
// otherwise it serves requests itself.
func runCoordinator(ctx context.Context, opts Opts, cfg *config.Config, reg *registry.Registry,
	repos *repository.Repositories) error {

	executor := feed.NewExecutor(feed.ExecutorParams{
		Fetcher:  feed.NewParser(cfg.Fetch.Timeout, cfg.Fetch.UserAgent),
		Delay:    cfg.Fetch.Delay,
		MaxItems: cfg.Fetch.MaxItems,
	})
	pipeline := runner.NewPipeline(reg, executor, feed.NewNormalizer(nil), repos.Article)
	coordinator := runner.NewCoordinator(pipeline)

	sched, err := scheduler.NewScheduler(scheduler.Params{
		Trigger:    coordinator,
		Role:       scheduler.RoleCoordinator,
		Spec:       cfg.Schedule.Spec,
		RunOnStart: cfg.Schedule.RunOnStart || opts.RunNow,
	})
	if err != nil {
		return fmt.Errorf("failed to make scheduler: %w", err)
	}

	agg := service.NewAggregator(service.Params{
		Role:     scheduler.RoleCoordinator,
		Articles: repos.Article,
		Runs:     coordinator,
		Schedule: sched,
		Sources:  reg.Len(),
	})
	lgr.Printf("[INFO] %d feeds in %d categories", reg.Len(), len(reg.Categories()))

	if err := agg.StartScheduler(ctx); err != nil {
		return err
	}
	defer agg.StopScheduler()

	g, gctx := errgroup.WithContext(ctx)
	if opts.Replicas > 0 {
		listen, _ := cfg.GetServerConfig()
		ln, err := net.Listen("tcp", listen)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", listen, err)
		}
		defer ln.Close()

		sup, err := cluster.NewSupervisor(cluster.Params{
			Replicas:   opts.Replicas,
			Listener:   ln,
			WorkerArgs: workerArgs(opts),
		})
		if err != nil {
			return fmt.Errorf("failed to make supervisor: %w", err)
		}
		g.Go(func() error { return sup.Run(gctx) })
	} else {
		srv := server.New(cfg, agg, revision, opts.Dbg)
		g.Go(func() error { return srv.Run(gctx, nil) })
	}
	return g.Wait()
}

// loadConfig reads the config file if set and applies command line overrides
func loadConfig(opts Opts) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.Config != "" {
		cfg, err = config.Load(opts.Config)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return nil, err
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DSN != "" {
		cfg.Database.DSN = opts.DSN
	}
	return cfg, nil
}

// workerArgs makes the command line of a replica, it inherits config and store of the coordinator
func workerArgs(opts Opts) []string {
	args := []string{"--role", string(scheduler.RoleWorker), "--listener-fd", strconv.Itoa(cluster.ListenerFD)}
	if opts.Config != "" {
		args = append(args, "--config", opts.Config)
	}
	if opts.DSN != "" {
		args = append(args, "--dsn", opts.DSN)
	}
	if opts.Dbg {
		args = append(args, "--dbg")
	}
	if opts.NoColor {
		args = append(args, "--no-color")
	}
	return args
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
