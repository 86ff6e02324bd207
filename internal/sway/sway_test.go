package sway

import (
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyTimeTraveler/dotscripts/errors"
	"github.com/AnyTimeTraveler/dotscripts/exec"
	"github.com/AnyTimeTraveler/dotscripts/exec/mocks"
)

const outputsJSON = `[
  {"name": "eDP-1", "make": "BOE", "model": "0x0BCA", "serial": "", "modes": [{"width": 1920, "height": 1200, "refresh": 60000}]},
  {"name": "DP-3", "make": "Lenovo Group Limited", "model": "LEN LT2452pwC", "serial": "V1", "modes": [{"width": 1920, "height": 1200, "refresh": 59950}]},
  {"name": "DP-4", "make": "LG Electronics", "model": "27GL650F", "serial": "X", "modes": [{"width": 1920, "height": 1080, "refresh": 144001}, {"width": 1280, "height": 720, "refresh": 60000}]},
  {"name": "DP-5", "make": "Acer Technologies", "model": "S242HL", "serial": "Y", "modes": [{"width": 1920, "height": 1080, "refresh": 60000}]}
]`

const layoutYAML = `
background_dir: /home/me/.config/sway
backgrounds:
  single: trans_cropped.jpg fit
  left: trans_left.jpg fit
  middle: trans_middle.jpg fit
  right: trans_right.jpg fit
monitors:
  builtin:
    name: ^eDP-1$
  left:
    make: Lenovo
    model: LT2452pwC
  center:
    make: LG Electronics
    model: 27GL650F
  right:
    make: Acer
    model: S242HL
layouts:
  - name: Home desk
    outputs:
      builtin:
        disable: true
      left:
        background: trans_left.jpg fit
      center:
        right_of: left
        background: trans_middle.jpg fit
      right:
        right_of: center
        background: trans_right.jpg fit
  - name: Laptop with screen above
    outputs:
      builtin:
        below: center
      center: {}
`

func parseTestOutputs(t *testing.T) []Output {
	t.Helper()
	outputs, err := ParseOutputs(outputsJSON)
	require.NoError(t, err)
	return outputs
}

func loadTestConfig(t *testing.T) *Config {
	t.Helper()
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "/layouts.yaml", []byte(layoutYAML), 0o644))
	cfg, err := Load(fsys, "/layouts.yaml")
	require.NoError(t, err)
	return cfg
}

func setting(t *testing.T, s *Setup, name string) Setting {
	t.Helper()
	for _, set := range s.Settings {
		if set.Output.Name == name {
			return set
		}
	}
	t.Fatalf("no setting for %s", name)
	return Setting{}
}

func TestParseOutputs(t *testing.T) {
	outputs := parseTestOutputs(t)
	require.Len(t, outputs, 4)

	assert.Equal(t, "DP-4", outputs[2].Name)
	assert.Equal(t, 1920, outputs[2].Width())
	assert.Equal(t, 1080, outputs[2].Height())
	assert.Equal(t, "144.001", outputs[2].RefreshHz())
	assert.Equal(t, "60", outputs[0].RefreshHz())

	_, err := ParseOutputs("not json")
	require.Error(t, err)
	assert.Equal(t, "Failed to parse swaymsg outputs JSON", errors.Chain(err)[0])
}

func TestOutput_NoModes(t *testing.T) {
	o := Output{Name: "HEADLESS-1"}
	assert.Equal(t, 0, o.Width())
	assert.Equal(t, "0", o.RefreshHz())
}

func TestFilter(t *testing.T) {
	outputs := parseTestOutputs(t)

	m, err := Filter{Make: "^LG", Model: "27GL"}.Compile()
	require.NoError(t, err)
	i, ok := m.Find(outputs)
	require.True(t, ok)
	assert.Equal(t, 2, i)

	m, err = Filter{Make: "LG", Serial: "nope"}.Compile()
	require.NoError(t, err)
	_, ok = m.Find(outputs)
	assert.False(t, ok)

	_, err = Filter{}.Compile()
	require.Error(t, err)

	_, err = Filter{Name: "("}.Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid name expression '('")
}

func TestLoad_TOML(t *testing.T) {
	fsys := memfs.New()
	data := `
background_dir = "/bg"

[backgrounds]
single = "one.jpg"

[monitors.builtin]
name = "eDP"

[[layouts]]
name = "Only laptop"

[layouts.outputs.builtin]
x = 10
y = 20
`
	require.NoError(t, util.WriteFile(fsys, "/layouts.toml", []byte(data), 0o644))

	cfg, err := Load(fsys, "/layouts.toml")
	require.NoError(t, err)
	require.Len(t, cfg.Layouts, 1)

	setup, err := cfg.Choose(parseTestOutputs(t))
	require.NoError(t, err)
	assert.Equal(t, "Only laptop", setup.Name)
	builtin := setting(t, setup, "eDP-1")
	assert.Equal(t, 10, builtin.X)
	assert.Equal(t, 20, builtin.Y)
	assert.Equal(t, "one.jpg", builtin.Background)
}

func TestLoad_Invalid(t *testing.T) {
	fsys := memfs.New()

	_, err := Load(fsys, "/missing.yaml")
	require.Error(t, err)

	require.NoError(t, util.WriteFile(fsys, "/bad.yaml", []byte("layouts:\n  - name: x\n    outputs:\n      ghost: {}\n"), 0o644))
	_, err = Load(fsys, "/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Layout 'x' uses undefined monitor 'ghost'")

	require.NoError(t, util.WriteFile(fsys, "/ref.yaml", []byte("monitors:\n  a: {name: A}\nlayouts:\n  - name: y\n    outputs:\n      a: {right_of: b}\n"), 0o644))
	_, err = Load(fsys, "/ref.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "which is not part of the layout")
}

func TestChoose_HomeDesk(t *testing.T) {
	setup, err := loadTestConfig(t).Choose(parseTestOutputs(t))
	require.NoError(t, err)
	assert.Equal(t, "Home desk", setup.Name)

	assert.False(t, setting(t, setup, "eDP-1").Enabled)
	assert.Equal(t, 0, setting(t, setup, "DP-3").X)
	assert.Equal(t, 1920, setting(t, setup, "DP-4").X)
	assert.Equal(t, 3840, setting(t, setup, "DP-5").X)
	assert.Equal(t, "trans_right.jpg fit", setting(t, setup, "DP-5").Background)
}

func TestChoose_SecondLayout(t *testing.T) {
	outputs := parseTestOutputs(t)
	outputs = []Output{outputs[0], outputs[2]}

	setup, err := loadTestConfig(t).Choose(outputs)
	require.NoError(t, err)
	assert.Equal(t, "Laptop with screen above", setup.Name)

	builtin := setting(t, setup, "eDP-1")
	assert.Equal(t, 0, builtin.X)
	assert.Equal(t, 1080, builtin.Y)
	assert.Equal(t, "trans_cropped.jpg fit", builtin.Background)
}

func TestChoose_Fallback(t *testing.T) {
	outputs := parseTestOutputs(t)
	outputs = []Output{outputs[1], outputs[3], outputs[2]}

	setup, err := loadTestConfig(t).Choose(outputs)
	require.NoError(t, err)
	assert.Equal(t, FallbackName, setup.Name)

	assert.Equal(t, []int{0, 1920, 3840}, []int{setup.Settings[0].X, setup.Settings[1].X, setup.Settings[2].X})
	assert.Equal(t, "trans_left.jpg fit", setup.Settings[0].Background)
	assert.Equal(t, "trans_middle.jpg fit", setup.Settings[1].Background)
	assert.Equal(t, "trans_right.jpg fit", setup.Settings[2].Background)
}

func TestChoose_Cycle(t *testing.T) {
	cfg := &Config{
		Monitors: map[string]Filter{"a": {Name: "eDP"}, "b": {Name: "DP-3"}},
		Layouts: []Layout{{
			Name: "loop",
			Outputs: map[string]Placement{
				"a": {RightOf: "b"},
				"b": {RightOf: "a"},
			},
		}},
	}

	_, err := cfg.Choose(parseTestOutputs(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relative to itself")
}

func TestBackgroundsPick(t *testing.T) {
	b := Backgrounds{Single: "s", Left: "l", Middle: "m", Right: "r"}
	assert.Equal(t, "s", b.pick(0, 1))
	assert.Equal(t, []string{"l", "r"}, []string{b.pick(0, 2), b.pick(1, 2)})
	assert.Equal(t, []string{"l", "m", "m", "r"}, []string{b.pick(0, 4), b.pick(1, 4), b.pick(2, 4), b.pick(3, 4)})
}

func TestCommand(t *testing.T) {
	outputs := parseTestOutputs(t)
	setup := &Setup{Settings: []Setting{
		{Output: outputs[0], Enabled: false},
		{Output: outputs[2], Enabled: true, X: 1920, Y: 0, Background: "mid.jpg fit"},
	}}

	assert.Equal(t,
		`output "eDP-1" disable, `+
			`output "DP-4" mode 1920x1080@144.001Hz pos 1920 0 transform normal scale 1.0 scale_filter nearest adaptive_sync off dpms on bg /bg/mid.jpg fit`,
		setup.Command("/bg"))
}

func TestClient_Run(t *testing.T) {
	tests := []struct {
		name    string
		result  *exec.Result
		wantErr string
	}{
		{
			name:   "all succeeded",
			result: &exec.Result{Status: 0, Output: `[{"success": true}, {"success": true}]`},
		},
		{
			name:    "one failed",
			result:  &exec.Result{Status: 0, Output: `[{"success": true}, {"success": false, "error": "Unknown output"}]`},
			wantErr: "Expected success to be true in command result 1: Unknown output",
		},
		{
			name:    "missing field",
			result:  &exec.Result{Status: 0, Output: `[{}]`},
			wantErr: "Expected success in command result 0",
		},
		{
			name:    "not json",
			result:  &exec.Result{Status: 0, Output: `oops`},
			wantErr: "Expected a JSON array of command results",
		},
		{
			name:    "nonzero exit",
			result:  &exec.Result{Status: 2, Output: "Error: no socket\n"},
			wantErr: "Running the swaymsg command to apply the configuration failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mocks.ExecutorMock{
				RunWithExitStatusFunc: func(args ...string) (*exec.Result, error) {
					assert.Equal(t, []string{"swaymsg", "--", "output x disable"}, args)
					return tt.result, nil
				},
			}

			err := NewClient(mock).Run("output x disable")
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, errors.Chain(err)[0])
		})
	}
}

func TestArranger(t *testing.T) {
	var applied string
	mock := &mocks.ExecutorMock{
		RunFunc: func(args ...string) (string, error) {
			assert.Equal(t, []string{"swaymsg", "-t", "get_outputs"}, args)
			return outputsJSON, nil
		},
		RunWithExitStatusFunc: func(args ...string) (*exec.Result, error) {
			applied = args[2]
			return &exec.Result{Output: `[{"success": true}]`}, nil
		},
	}

	a := &Arranger{Client: NewClient(mock), Config: loadTestConfig(t)}
	setup, err := a.Arrange()
	require.NoError(t, err)
	assert.Equal(t, "Home desk", setup.Name)

	assert.True(t, strings.HasPrefix(applied, `output "eDP-1" disable, output "DP-3" mode 1920x1200@59.95Hz pos 0 0`))
	assert.Contains(t, applied, "bg /home/me/.config/sway/trans_right.jpg fit")
}

func TestArranger_ApplyFailure(t *testing.T) {
	mock := &mocks.ExecutorMock{
		RunFunc: func(args ...string) (string, error) { return outputsJSON, nil },
		RunWithExitStatusFunc: func(args ...string) (*exec.Result, error) {
			return &exec.Result{Output: `[{"success": false}]`}, nil
		},
	}

	_, err := (&Arranger{Client: NewClient(mock), Config: loadTestConfig(t)}).Arrange()
	require.Error(t, err)
	assert.Equal(t, "Error applying new monitor configuration", errors.Chain(err)[0])
}

func TestCommand_WithoutBackgrounds(t *testing.T) {
	outputs := []Output{{Name: "eDP-1", Modes: []Mode{{Width: 1920, Height: 1080, Refresh: 60000}}}}
	cfg := &Config{BackgroundDir: "/bg"}

	command := cfg.Fallback(outputs).Command("/bg")
	assert.Equal(t,
		`output "eDP-1" mode 1920x1080@60Hz pos 0 0 transform normal scale 1.0 scale_filter nearest adaptive_sync off dpms on`,
		command)
	assert.NotRegexp(t, `bg\s*$`, command)
}

func TestBackgroundsPick_FallsBackToSingle(t *testing.T) {
	b := Backgrounds{Single: "s"}
	assert.Equal(t, []string{"s", "s", "s"}, []string{b.pick(0, 3), b.pick(1, 3), b.pick(2, 3)})
	assert.Equal(t, "", Backgrounds{}.pick(0, 2))
}

func TestUsable(t *testing.T) {
	outputs := append(parseTestOutputs(t), Output{Name: "HEADLESS-1"})

	usable := Usable(outputs)
	require.Len(t, usable, 4)
	for _, o := range usable {
		assert.NotEqual(t, "HEADLESS-1", o.Name)
	}
}

func TestArranger_SkipsOutputsWithoutModes(t *testing.T) {
	data := `[
  {"name": "HEADLESS-1", "modes": []},
  {"name": "eDP-1", "make": "BOE", "modes": [{"width": 1920, "height": 1200, "refresh": 60000}]}
]`

	var applied string
	mock := &mocks.ExecutorMock{
		RunFunc: func(args ...string) (string, error) { return data, nil },
		RunWithExitStatusFunc: func(args ...string) (*exec.Result, error) {
			applied = args[2]
			return &exec.Result{Output: `[{"success": true}]`}, nil
		},
	}

	setup, err := (&Arranger{Client: NewClient(mock), Config: &Config{}}).Arrange()
	require.NoError(t, err)
	require.Len(t, setup.Settings, 1)
	assert.Equal(t, "eDP-1", setup.Settings[0].Output.Name)
	assert.NotContains(t, applied, "HEADLESS-1")
	assert.NotContains(t, applied, "0x0@0Hz")
}

func TestArranger_NoUsableOutputs(t *testing.T) {
	mock := &mocks.ExecutorMock{
		RunFunc: func(args ...string) (string, error) { return `[{"name": "HEADLESS-1", "modes": []}]`, nil },
	}

	_, err := (&Arranger{Client: NewClient(mock), Config: &Config{}}).Arrange()
	require.Error(t, err)
	assert.Equal(t, "No output with a usable mode found", err.Error())
	assert.Empty(t, mock.RunWithExitStatusCalls())
}
