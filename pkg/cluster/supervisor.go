// Package cluster runs worker replicas of the current binary sharing one listening socket.
// The coordinator process owns the schedule, replicas serve requests only.
package cluster

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"
)

// ListenerFD is the descriptor number of the inherited listener in a worker, first of ExtraFiles
const ListenerFD = 3

// CommandFunc makes the command for replica id, the supervisor adds the listener file
type CommandFunc func(ctx context.Context, id int) *exec.Cmd

// Params defines supervisor settings
type Params struct {
	Replicas     int
	Listener     net.Listener  // must be backed by a file, i.e. *net.TCPListener or *net.UnixListener
	Command      CommandFunc   // default runs this executable with WorkerArgs
	WorkerArgs   []string      // arguments for the default command
	RestartDelay time.Duration // pause before a crashed replica is started again, default 1s
	StopTimeout  time.Duration // time given to a replica to exit after SIGTERM, default 10s
}

// Supervisor keeps Replicas worker processes alive until its context is done
type Supervisor struct {
	replicas     int
	listener     net.Listener
	command      CommandFunc
	restartDelay time.Duration
	stopTimeout  time.Duration
	starts       atomic.Int64
}

// filer is implemented by listeners which can be passed to a child process
type filer interface {
	File() (*os.File, error)
}

// NewSupervisor makes a supervisor
func NewSupervisor(params Params) (*Supervisor, error) {
	if params.Replicas <= 0 {
		return nil, errors.New("supervisor requires at least one replica")
	}
	if _, ok := params.Listener.(filer); !ok {
		return nil, fmt.Errorf("listener %T can't be shared with replicas", params.Listener)
	}
	if params.RestartDelay <= 0 {
		params.RestartDelay = time.Second
	}
	if params.StopTimeout <= 0 {
		params.StopTimeout = 10 * time.Second
	}
	if params.Command == nil {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("get executable: %w", err)
		}
		args := params.WorkerArgs
		params.Command = func(ctx context.Context, _ int) *exec.Cmd {
			return exec.CommandContext(ctx, exe, args...) //nolint:gosec // own binary
		}
	}
	return &Supervisor{
		replicas:     params.Replicas,
		listener:     params.Listener,
		command:      params.Command,
		restartDelay: params.RestartDelay,
		stopTimeout:  params.StopTimeout,
	}, nil
}

// Run starts all replicas and restarts any that exits while ctx is alive.
// It returns after ctx is done and every replica has stopped.
func (s *Supervisor) Run(ctx context.Context) error {
	lnFile, err := s.listener.(filer).File()
	if err != nil {
		return fmt.Errorf("get listener file: %w", err)
	}
	defer lnFile.Close()

	lgr.Printf("[INFO] starting %d replicas on %s", s.replicas, s.listener.Addr())
	g := errgroup.Group{}
	for i := 0; i < s.replicas; i++ {
		id := i + 1
		g.Go(func() error {
			s.keepAlive(ctx, id, lnFile)
			return nil
		})
	}
	err = g.Wait()
	lgr.Printf("[INFO] all replicas stopped")
	return err
}

// Starts returns how many times replicas were started, restarts included
func (s *Supervisor) Starts() int64 {
	return s.starts.Load()
}

func (s *Supervisor) keepAlive(ctx context.Context, id int, lnFile *os.File) {
	for ctx.Err() == nil {
		err := s.runReplica(ctx, id, lnFile)
		if ctx.Err() != nil {
			return
		}
		lgr.Printf("[WARN] replica %d exited: %v, restarting in %v", id, err, s.restartDelay)
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.restartDelay):
		}
	}
}

func (s *Supervisor) runReplica(ctx context.Context, id int, lnFile *os.File) error {
	cmd := s.command(ctx, id)
	cmd.ExtraFiles = []*os.File{lnFile}
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}
	cmd.Env = append(cmd.Env, "HEADLINES_REPLICA_ID="+strconv.Itoa(id))
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.Cancel = func() error { return cmd.Process.Signal(syscall.SIGTERM) }
	cmd.WaitDelay = s.stopTimeout

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start replica %d: %w", id, err)
	}
	s.starts.Add(1)
	lgr.Printf("[INFO] replica %d started, pid %d", id, cmd.Process.Pid)

	err := cmd.Wait()
	if ctx.Err() != nil {
		lgr.Printf("[DEBUG] replica %d stopped", id)
		return nil
	}
	if err == nil {
		return errors.New("exit status 0")
	}
	return err
}

// InheritedListener returns the listener passed by the supervisor as descriptor fd
func InheritedListener(fd int) (net.Listener, error) {
	f := os.NewFile(uintptr(fd), "listener-"+strconv.Itoa(fd))
	if f == nil {
		return nil, fmt.Errorf("invalid listener descriptor %d", fd)
	}
	defer f.Close()
	ln, err := net.FileListener(f)
	if err != nil {
		return nil, fmt.Errorf("listen on inherited descriptor %d: %w", fd, err)
	}
	return ln, nil
}
