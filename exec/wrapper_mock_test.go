package exec_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyTimeTraveler/dotscripts/exec"
	"github.com/AnyTimeTraveler/dotscripts/exec/mocks"
)

func newChainingMock() *mocks.ExecutorMock {
	mock := &mocks.ExecutorMock{}
	mock.WithEnvFunc = func(map[string]string) exec.Executor { return mock }
	mock.WithDirFunc = func(string) exec.Executor { return mock }
	mock.WithDisableColorsFunc = func() exec.Executor { return mock }
	mock.WithStdoutFunc = func(io.Writer) exec.Executor { return mock }
	mock.WithStderrFunc = func(io.Writer) exec.Executor { return mock }
	mock.CloneFunc = func() exec.Executor { return mock }
	return mock
}

func TestWrapperWithMock(t *testing.T) {
	mock := newChainingMock()
	mock.RunFunc = func(args ...string) (string, error) {
		return "mock output", nil
	}

	pactl := exec.NewWrapper(mock, "pactl")
	out, err := pactl.
		WithEnv(map[string]string{"LANG": "C"}).
		WithDir("/tmp").
		Run("get-default-sink")
	require.NoError(t, err)
	assert.Equal(t, "mock output", out)

	require.Len(t, mock.RunCalls(), 1)
	assert.Equal(t, []string{"pactl", "get-default-sink"}, mock.RunCalls()[0].Args)
	require.Len(t, mock.WithEnvCalls(), 1)
	assert.Equal(t, "C", mock.WithEnvCalls()[0].Env["LANG"])
	require.Len(t, mock.WithDirCalls(), 1)
	assert.Equal(t, "/tmp", mock.WithDirCalls()[0].Dir)
}

func TestWrapperWithMock_LiveOutput(t *testing.T) {
	mock := newChainingMock()
	mock.RunWithLiveOutputFunc = func(filter exec.LineFilter, args ...string) (*exec.Result, error) {
		rendered, ok := filter.Transform("building\n")
		assert.True(t, ok)
		assert.Equal(t, "building\n", rendered)
		return &exec.Result{Status: 0, Output: "building\n"}, nil
	}

	nix := exec.NewWrapper(mock, "nixos-rebuild")
	result, err := nix.RunWithLiveOutput(exec.Echo, "switch")
	require.NoError(t, err)
	assert.True(t, result.Success())

	calls := mock.RunWithLiveOutputCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"nixos-rebuild", "switch"}, calls[0].Args)
}

func TestWrapperWithMock_Error(t *testing.T) {
	mock := newChainingMock()
	mock.RunWithExitStatusFunc = func(args ...string) (*exec.Result, error) {
		return nil, errors.New("spawn failed")
	}
	mock.RunWithInheritedStdioFunc = func(args ...string) (exec.ExitStatus, error) {
		return 3, nil
	}

	tool := exec.NewWrapper(mock, "tool")

	_, err := tool.RunWithExitStatus("x")
	require.EqualError(t, err, "spawn failed")

	status, err := tool.RunWithInheritedStdio("y")
	require.NoError(t, err)
	assert.Equal(t, exec.ExitStatus(3), status)
	assert.Equal(t, []string{"tool", "y"}, mock.RunWithInheritedStdioCalls()[0].Args)
}

func TestWrapperWithMock_Clone(t *testing.T) {
	mock := newChainingMock()
	mock.RunFunc = func(args ...string) (string, error) { return "", nil }

	clone := exec.NewWrapper(mock, "git").Clone()
	_, err := clone.Run("status")
	require.NoError(t, err)

	assert.Len(t, mock.CloneCalls(), 1)
	assert.Equal(t, []string{"git", "status"}, mock.RunCalls()[0].Args)
}
