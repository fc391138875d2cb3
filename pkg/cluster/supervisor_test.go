package cluster

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	helperEnv = "HEADLINES_CLUSTER_HELPER"
	tagEnv    = "HEADLINES_CLUSTER_TAG"
)

// TestHelperProcess is not a real test, it is the replica started by the supervisor tests
func TestHelperProcess(t *testing.T) {
	mode := os.Getenv(helperEnv)
	if mode == "" {
		t.Skip("helper process only")
	}
	switch mode {
	case "serve":
		ln, err := InheritedListener(ListenerFD)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		_ = http.Serve(ln, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprintf(w, "replica %s %s", os.Getenv("HEADLINES_REPLICA_ID"), os.Getenv(tagEnv))
		}))
		os.Exit(0)
	case "exit":
		os.Exit(1)
	}
	os.Exit(3)
}

func helperCommand(mode string, started *int32) CommandFunc {
	return func(ctx context.Context, id int) *exec.Cmd {
		if started != nil {
			atomic.AddInt32(started, 1)
		}
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), helperEnv+"="+mode, tagEnv+"=blue")
		cmd.Stdout, cmd.Stderr = io.Discard, io.Discard
		return cmd
	}
}

func TestNewSupervisor(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, err = NewSupervisor(Params{Replicas: 0, Listener: ln})
	require.Error(t, err)

	_, err = NewSupervisor(Params{Replicas: 1, Listener: fakeListener{ln}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't be shared")

	s, err := NewSupervisor(Params{Replicas: 2, Listener: ln})
	require.NoError(t, err)
	assert.Equal(t, time.Second, s.restartDelay)
	assert.NotNil(t, s.command)
}

func TestSupervisor_ServeOnSharedListener(t *testing.T) {
	if os.Getenv(helperEnv) != "" {
		t.Skip()
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s, err := NewSupervisor(Params{Replicas: 2, Listener: ln, Command: helperCommand("serve", nil),
		StopTimeout: 2 * time.Second})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	url := "http://" + ln.Addr().String()
	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:gosec // test url
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		body = string(data)
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 50*time.Millisecond)
	assert.Regexp(t, `^replica [12] blue$`, body, "command env kept, replica id added")
	assert.Equal(t, int64(2), s.Starts())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("supervisor did not stop")
	}
}

func TestSupervisor_RestartsExitedReplica(t *testing.T) {
	if os.Getenv(helperEnv) != "" {
		t.Skip()
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	var started int32
	s, err := NewSupervisor(Params{Replicas: 1, Listener: ln, Command: helperCommand("exit", &started),
		RestartDelay: 10 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&started) >= 3 }, 10*time.Second, 10*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestInheritedListener_Invalid(t *testing.T) {
	_, err := InheritedListener(1000)
	require.Error(t, err)
}

type fakeListener struct {
	net.Listener
}
