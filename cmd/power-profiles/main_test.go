package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyTimeTraveler/dotscripts/exec/mocks"
	"github.com/AnyTimeTraveler/dotscripts/internal/cli"
)

func run(t *testing.T, current string, args ...string) (int, string, string, *mocks.ExecutorMock) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	mock := &mocks.ExecutorMock{
		RunFunc: func(args ...string) (string, error) {
			if args[1] == "get" {
				return current + "\n", nil
			}
			return "", nil
		},
	}

	tool := cli.NewTool("power-profiles")
	tool.Stdout = &stdout
	tool.Stderr = &stderr
	tool.Executor = mock

	cmd := newRootCommand(tool)
	cmd.SetArgs(append([]string{}, args...))
	code := cli.Run(cmd, &stderr)
	return code, stdout.String(), stderr.String(), mock
}

func TestStatus(t *testing.T) {
	code, out, _, mock := run(t, "balanced")
	require.Equal(t, 0, code)
	assert.Equal(t, "{\"state\":\"Info\",\"text\":\"\uf0c2\"}\n", out)
	assert.Len(t, mock.RunCalls(), 1)
}

func TestToggle(t *testing.T) {
	code, out, _, mock := run(t, "performance", "toggle")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"state":"Idle"`)

	calls := mock.RunCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"powerprofilesctl", "set", "power-saver"}, calls[1].Args)
}

func TestSetExplicit(t *testing.T) {
	code, out, _, mock := run(t, "balanced", "performance")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"state":"Good"`)
	assert.Equal(t, []string{"powerprofilesctl", "set", "performance"}, mock.RunCalls()[0].Args)
}

func TestUnknownProfile(t *testing.T) {
	code, out, stderr, mock := run(t, "balanced", "turbo")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Got unknown power setting: turbo")
	assert.Empty(t, mock.RunCalls())
}
