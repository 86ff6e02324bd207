package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

func newTestTool(t *testing.T) (*Tool, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	configDirOverride = t.TempDir()
	t.Cleanup(func() { configDirOverride = "" })

	var stdout, stderr bytes.Buffer
	tool := NewTool("test-tool")
	tool.Stdin = strings.NewReader("")
	tool.Stdout = &stdout
	tool.Stderr = &stderr
	return tool, &stdout, &stderr
}

func TestRun_PrintsErrorChain(t *testing.T) {
	tool, _, stderr := newTestTool(t)
	cmd := &cobra.Command{
		Use: "test-tool",
		RunE: func(*cobra.Command, []string) error {
			return errors.Wrap(errors.New("inner"), "outer")
		},
	}
	tool.Bind(cmd)
	cmd.SetArgs([]string{})

	code := Run(cmd, stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error:")
	assert.Contains(t, stderr.String(), "outer\n  caused by: inner")
}

func TestRun_ExitCode(t *testing.T) {
	tool, _, stderr := newTestTool(t)
	cmd := &cobra.Command{
		Use: "test-tool",
		RunE: func(*cobra.Command, []string) error {
			return &ExitError{Code: 3, Err: errors.New("three")}
		},
	}
	tool.Bind(cmd)
	cmd.SetArgs([]string{})

	assert.Equal(t, 3, Run(cmd, stderr))
}

func TestRun_Success(t *testing.T) {
	tool, _, stderr := newTestTool(t)
	var ran bool
	cmd := &cobra.Command{
		Use: "test-tool",
		RunE: func(*cobra.Command, []string) error {
			ran = true
			assert.NotNil(t, tool.Config)
			assert.NotNil(t, tool.Executor)
			return nil
		},
	}
	tool.Bind(cmd)
	cmd.SetArgs([]string{"--log-level", "debug"})

	assert.Equal(t, 0, Run(cmd, stderr))
	assert.True(t, ran)
}

func TestBind_InvalidLogLevel(t *testing.T) {
	tool, _, stderr := newTestTool(t)
	cmd := &cobra.Command{Use: "test-tool", RunE: func(*cobra.Command, []string) error { return nil }}
	tool.Bind(cmd)
	cmd.SetArgs([]string{"--log-level", "loud"})

	assert.Equal(t, 1, Run(cmd, stderr))
	assert.Contains(t, stderr.String(), "Invalid log level 'loud'")
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	configDirOverride = dir
	t.Cleanup(func() { configDirOverride = "" })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "my-tool.yaml"), []byte("profile: from-file\neditor: vim\n"), 0o600))
	t.Setenv("MY_TOOL_EDITOR", "from-env")

	cmd := &cobra.Command{Use: "my-tool"}
	cmd.Flags().String("profile", "default", "")
	cmd.Flags().String("editor", "subl", "")
	cmd.Flags().Bool("dry-run", false, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--dry-run"}))

	v, err := LoadConfig("my-tool", "", cmd.Flags())
	require.NoError(t, err)

	assert.Equal(t, "from-file", v.GetString("profile"))
	assert.Equal(t, "from-env", v.GetString("editor"))
	assert.True(t, v.GetBool("dry-run"))
}

func TestLoadConfig_MissingFileIsFine(t *testing.T) {
	configDirOverride = t.TempDir()
	t.Cleanup(func() { configDirOverride = "" })

	v, err := LoadConfig("nothing-here", "", nil)
	require.NoError(t, err)
	assert.Empty(t, v.ConfigFileUsed())
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("interval = \"1s\"\n"), 0o600))

	v, err := LoadConfig("tool", path, nil)
	require.NoError(t, err)
	assert.Equal(t, "1s", v.GetString("interval"))

	_, err = LoadConfig("tool", filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read config file")
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/dotscripts", dir)
}

func TestEnvPrefix(t *testing.T) {
	assert.Equal(t, "NIXOS_REBUILD", EnvPrefix("nixos-rebuild"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "vpn", "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("pinging", "target", "nas")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "vpn")
	assert.Contains(t, buf.String(), "pinging")
	assert.Contains(t, buf.String(), "target=nas")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "\n", want: true},
		{input: "y\n", want: true},
		{input: "yes\n", want: true},
		{input: "n\n", want: false},
		{input: "no\n", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(strings.NewReader(tt.input), &out, "Continue?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Continue?")
		})
	}
}
