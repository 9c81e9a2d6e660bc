package activation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venvterm/venvterm/internal/config"
	"github.com/venvterm/venvterm/internal/platform"
	"github.com/venvterm/venvterm/internal/shell"
)

type stubSettings struct {
	settings *config.Settings
	err      error
}

func (s *stubSettings) Settings(ctx context.Context, resource string) (*config.Settings, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.settings, nil
}

type stubConda struct {
	isConda bool
	err     error
	calls   int
}

func (s *stubConda) IsEnvironment(ctx context.Context, interpreterPath string) (bool, error) {
	s.calls++
	return s.isConda, s.err
}

type stubProvider struct {
	name      string
	supported bool
	commands  []string
	err       error
	calls     int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) IsShellSupported(target shell.Type) bool { return p.supported }
func (p *stubProvider) ActivationCommands(ctx context.Context, resource string, target shell.Type) ([]string, error) {
	p.calls++
	return p.commands, p.err
}

type serviceFixture struct {
	service   *Service
	condaSvc  *stubConda
	condaProv *stubProvider
	venv      *stubProvider
	cmdPrompt *stubProvider
	pyenv     *stubProvider
	pipenv    *stubProvider
}

func newFixture(t *testing.T, settings *config.Settings, osType string) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		condaSvc:  &stubConda{},
		condaProv: &stubProvider{name: "conda", supported: true},
		venv:      &stubProvider{name: "venv", supported: true},
		cmdPrompt: &stubProvider{name: "cmdprompt", supported: true},
		pyenv:     &stubProvider{name: "pyenv", supported: true},
		pipenv:    &stubProvider{name: "pipenv", supported: true},
	}

	svc, err := NewService(Config{
		Settings:             &stubSettings{settings: settings},
		Conda:                f.condaSvc,
		CondaProvider:        f.condaProv,
		PlatformProviders:    []Provider{f.venv, f.cmdPrompt},
		InterpreterProviders: []Provider{f.pyenv, f.pipenv},
		Platform:             platform.Static(&platform.Info{OS: osType, Arch: "amd64"}),
	})
	require.NoError(t, err)
	f.service = svc
	return f
}

func enabledSettings() *config.Settings {
	return &config.Settings{
		PythonPath: "/opt/env/bin/python",
		Terminal:   config.TerminalSettings{ActivateEnvironment: true},
	}
}

func TestActivationDisabledConsultsNothing(t *testing.T) {
	settings := enabledSettings()
	settings.Terminal.ActivateEnvironment = false
	f := newFixture(t, settings, "linux")
	f.venv.commands = []string{"source activate"}

	for _, target := range shell.Supported() {
		commands, err := f.service.EnvironmentActivationCommands(context.Background(), target, "")
		require.NoError(t, err)
		assert.Nil(t, commands, "shell %s", target)
	}
	assert.Zero(t, f.condaSvc.calls, "conda check must not run when activation is off")
	assert.Zero(t, f.venv.calls+f.cmdPrompt.calls+f.pyenv.calls+f.pipenv.calls,
		"no provider may be consulted when activation is off")
}

func TestCondaWinsVerbatim(t *testing.T) {
	f := newFixture(t, enabledSettings(), "linux")
	f.condaSvc.isConda = true
	f.condaProv.commands = []string{"source activate web"}
	f.venv.commands = []string{"source other"}

	commands, err := f.service.EnvironmentActivationCommands(context.Background(), shell.Bash, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"source activate web"}, commands)
	assert.Zero(t, f.venv.calls, "conda must short-circuit all other providers")
}

func TestCondaEmptyResultStillWins(t *testing.T) {
	f := newFixture(t, enabledSettings(), "linux")
	f.condaSvc.isConda = true
	f.condaProv.commands = []string{}
	f.venv.commands = []string{"source other"}

	commands, err := f.service.EnvironmentActivationCommands(context.Background(), shell.PowerShell, "")
	require.NoError(t, err)
	assert.NotNil(t, commands, "empty conda result is valid, not undefined")
	assert.Empty(t, commands)
	assert.Zero(t, f.venv.calls+f.cmdPrompt.calls+f.pyenv.calls+f.pipenv.calls)
}

func TestFirstNonEmptyProviderShortCircuits(t *testing.T) {
	f := newFixture(t, enabledSettings(), "linux")
	f.venv.commands = []string{"source /env/bin/activate"}
	f.pipenv.commands = []string{"pipenv shell"}

	commands, err := f.service.EnvironmentActivationCommands(context.Background(), shell.Bash, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"source /env/bin/activate"}, commands)
	assert.Zero(t, f.pyenv.calls+f.pipenv.calls, "later providers must not run after a win")
}

func TestEmptyResultContinuesToNextProvider(t *testing.T) {
	f := newFixture(t, enabledSettings(), "linux")
	f.venv.commands = []string{}
	f.cmdPrompt.commands = nil
	f.pyenv.commands = []string{}
	f.pipenv.commands = []string{"pipenv shell"}

	commands, err := f.service.EnvironmentActivationCommands(context.Background(), shell.Bash, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"pipenv shell"}, commands,
		"pipenv must win when every earlier provider comes up empty")
	assert.Equal(t, 1, f.venv.calls)
	assert.Equal(t, 1, f.cmdPrompt.calls)
	assert.Equal(t, 1, f.pyenv.calls)
}

func TestUnsupportedShellSkipsProvider(t *testing.T) {
	f := newFixture(t, enabledSettings(), "linux")
	f.venv.supported = false
	f.venv.commands = []string{"source activate"}
	f.cmdPrompt.commands = []string{"env\\Scripts\\activate.bat"}

	commands, err := f.service.EnvironmentActivationCommands(context.Background(), shell.Cmd, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"env\\Scripts\\activate.bat"}, commands)
	assert.Zero(t, f.venv.calls, "unsupported providers must not be asked for commands")
}

func TestNoProviderYieldsNil(t *testing.T) {
	f := newFixture(t, enabledSettings(), "linux")

	commands, err := f.service.EnvironmentActivationCommands(context.Background(), shell.Bash, "")
	require.NoError(t, err)
	assert.Nil(t, commands)
}

func TestProviderErrorPropagates(t *testing.T) {
	f := newFixture(t, enabledSettings(), "linux")
	wantErr := errors.New("boom")
	f.venv.err = wantErr

	_, err := f.service.EnvironmentActivationCommands(context.Background(), shell.Bash, "")
	assert.ErrorIs(t, err, wantErr)
}

func TestShellCommandsNeverConsultInterpreterProviders(t *testing.T) {
	f := newFixture(t, enabledSettings(), "linux")
	f.pyenv.commands = []string{"pyenv shell 3.12"}
	f.pipenv.commands = []string{"pipenv shell"}

	for _, target := range shell.Supported() {
		commands, err := f.service.EnvironmentActivationShellCommands(context.Background(), "", target)
		require.NoError(t, err)
		assert.Nil(t, commands, "shell %s", target)
	}
	assert.Zero(t, f.pyenv.calls, "pyenv must never run from the shell entry point")
	assert.Zero(t, f.pipenv.calls, "pipenv must never run from the shell entry point")
}

func TestShellCommandsUsePlatformProviders(t *testing.T) {
	f := newFixture(t, enabledSettings(), "darwin")
	f.venv.commands = []string{"source /env/bin/activate"}

	commands, err := f.service.EnvironmentActivationShellCommands(context.Background(), "", shell.Zsh)
	require.NoError(t, err)
	assert.Equal(t, []string{"source /env/bin/activate"}, commands)
}

func TestShellCommandsUnknownOS(t *testing.T) {
	f := newFixture(t, enabledSettings(), "freebsd")
	f.venv.commands = []string{"source activate"}
	f.condaSvc.isConda = true
	f.condaProv.commands = []string{"source activate web"}

	for _, target := range append(shell.Supported(), shell.Other, shell.Unknown) {
		commands, err := f.service.EnvironmentActivationShellCommands(context.Background(), "", target)
		require.NoError(t, err)
		assert.Nil(t, commands, "shell %s", target)
	}
	assert.Zero(t, f.condaSvc.calls, "unknown OS must short-circuit before any lookup")
	assert.Zero(t, f.venv.calls)
}

func TestNewServiceValidation(t *testing.T) {
	_, err := NewService(Config{})
	assert.Error(t, err)
}

func TestResolveInterpreter(t *testing.T) {
	tests := []struct {
		name     string
		python   string
		resource string
		want     string
	}{
		{"absolute stays", "/opt/env/bin/python", "/work", "/opt/env/bin/python"},
		{"relative joins resource", ".venv/bin/python", "/work", "/work/.venv/bin/python"},
		{"bare command stays", "python", "/work", "python"},
		{"no resource", ".venv/bin/python", "", ".venv/bin/python"},
		{"empty", "", "/work", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &config.Settings{PythonPath: tt.python}
			assert.Equal(t, tt.want, ResolveInterpreter(settings, tt.resource))
		})
	}
}
