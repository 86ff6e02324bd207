package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyTimeTraveler/dotscripts/exec/mocks"
	"github.com/AnyTimeTraveler/dotscripts/internal/cli"
	"github.com/AnyTimeTraveler/dotscripts/internal/nixos"
)

func TestOptionsFrom(t *testing.T) {
	custom := nixos.DefaultOptions()
	custom.Editor = "code"
	custom.EditorArgs = "--wait --new-window ."
	custom.EditorProcess = "code"
	custom.Dir = "/srv/nixos"
	custom.OptimizeStore = true
	custom.DryRun = true
	custom.Boot = true
	custom.Debug = true

	fromEnv := nixos.DefaultOptions()
	fromEnv.Dir = "/home/me/nixos"
	fromEnv.OptimizeStore = true

	tests := []struct {
		name string
		args []string
		env  map[string]string
		want nixos.Options
	}{
		{
			name: "defaults",
			want: nixos.DefaultOptions(),
		},
		{
			name: "flags",
			args: []string{
				"-o", "--nix-dir", "/srv/nixos", "--dry-run", "--boot", "--debug",
				"--editor", "code", "--editor-args", "--wait --new-window .", "--editor-process", "code",
			},
			want: custom,
		},
		{
			name: "environment",
			env: map[string]string{
				"NIXOS_REBUILD_NIX_DIR":        "/home/me/nixos",
				"NIXOS_REBUILD_OPTIMIZE_STORE": "true",
			},
			want: fromEnv,
		},
		{
			name: "flag beats environment",
			args: []string{"--nix-dir", "/srv/nixos"},
			env:  map[string]string{"NIXOS_REBUILD_NIX_DIR": "/home/me/nixos"},
			want: func() nixos.Options {
				o := nixos.DefaultOptions()
				o.Dir = "/srv/nixos"
				return o
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cmd := newRootCommand(cli.NewTool("nixos-rebuild"))
			require.NoError(t, cmd.ParseFlags(tt.args))

			v, err := cli.LoadConfig("nixos-rebuild", "", cmd.Flags())
			require.NoError(t, err)
			assert.Equal(t, tt.want, optionsFrom(v))
		})
	}
}

func TestMissingNixDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	mock := &mocks.ExecutorMock{}
	tool := cli.NewTool("nixos-rebuild")
	tool.Stdout = &stdout
	tool.Stderr = &stderr
	tool.Executor = mock

	cmd := newRootCommand(tool)
	cmd.SetArgs([]string{"--nix-dir", filepath.Join(t.TempDir(), "missing")})

	assert.Equal(t, 1, cli.Run(cmd, &stderr))
	assert.Contains(t, stderr.String(), "Failed to cd to nix config directory")
	assert.Empty(t, mock.RunCalls())
}
