package activation

import (
	"context"
	"fmt"

	"github.com/venvterm/venvterm/internal/conda"
	"github.com/venvterm/venvterm/internal/logging"
	"github.com/venvterm/venvterm/internal/platform"
	"github.com/venvterm/venvterm/internal/shell"
)

// CondaLocator answers whether an interpreter belongs to a conda
// environment. *conda.Service satisfies this.
type CondaLocator interface {
	IsEnvironment(ctx context.Context, interpreterPath string) (bool, error)
}

// Config wires a Service.
type Config struct {
	// Settings loads per-resource settings (required)
	Settings SettingsReader
	// Conda detects conda interpreters (required)
	Conda CondaLocator
	// CondaProvider builds conda activation commands (required)
	CondaProvider Provider
	// PlatformProviders are consulted first, in order (venv, cmdprompt)
	PlatformProviders []Provider
	// InterpreterProviders are consulted after the platform providers
	// (pyenv, pipenv) and only from the full entry point
	InterpreterProviders []Provider
	// Platform classifies the host OS (required)
	Platform platform.Detector
	// Logger is optional
	Logger logging.Logger
}

// Service selects the activation command sequence for a terminal shell.
//
// Providers are consulted strictly sequentially in priority order and the
// first non-empty result short-circuits the rest. That ordering is part of
// the contract, not an optimization.
type Service struct {
	settings             SettingsReader
	condaSvc             CondaLocator
	condaProvider        Provider
	platformProviders    []Provider
	interpreterProviders []Provider
	platform             platform.Detector
	log                  logging.Logger
}

// NewService creates an activation service from explicit wiring.
func NewService(cfg Config) (*Service, error) {
	if cfg.Settings == nil {
		return nil, fmt.Errorf("settings reader is required")
	}
	if cfg.Conda == nil || cfg.CondaProvider == nil {
		return nil, fmt.Errorf("conda service and provider are required")
	}
	if cfg.Platform == nil {
		return nil, fmt.Errorf("platform detector is required")
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	return &Service{
		settings:             cfg.Settings,
		condaSvc:             cfg.Conda,
		condaProvider:        cfg.CondaProvider,
		platformProviders:    cfg.PlatformProviders,
		interpreterProviders: cfg.InterpreterProviders,
		platform:             cfg.Platform,
		log:                  log,
	}, nil
}

// DefaultService wires the production provider set: conda first, then
// venv and cmd/PowerShell, then pyenv and pipenv.
func DefaultService(settings SettingsReader, log logging.Logger) (*Service, error) {
	condaSvc := conda.NewService(log)
	return NewService(Config{
		Settings:      settings,
		Conda:         condaSvc,
		CondaProvider: NewCondaProvider(settings, condaSvc, log),
		PlatformProviders: []Provider{
			NewVenvPosixProvider(settings, log),
			NewCmdPromptProvider(settings, log),
		},
		InterpreterProviders: []Provider{
			NewPyenvProvider(settings, log),
			NewPipenvProvider(log),
		},
		Platform: platform.NewDetector(),
		Logger:   log,
	})
}

// EnvironmentActivationCommands returns the commands that activate the
// configured environment for the given shell, or nil when activation is
// disabled or no provider has anything to offer.
func (s *Service) EnvironmentActivationCommands(ctx context.Context, target shell.Type, resource string) ([]string, error) {
	providers := make([]Provider, 0, len(s.platformProviders)+len(s.interpreterProviders))
	providers = append(providers, s.platformProviders...)
	providers = append(providers, s.interpreterProviders...)
	return s.activationCommands(ctx, resource, target, providers)
}

// EnvironmentActivationShellCommands is the shell-oriented entry point used
// when no interpreter context is wanted: only the platform providers are
// consulted, never pyenv or pipenv. An unrecognized host OS yields nil for
// every shell.
func (s *Service) EnvironmentActivationShellCommands(ctx context.Context, resource string, target shell.Type) ([]string, error) {
	info, err := s.platform.Detect(ctx)
	if err != nil {
		return nil, err
	}
	if info.OSType() == platform.OSUnknown {
		s.log.Debug("unrecognized host OS, skipping activation", "os", info.OS)
		return nil, nil
	}
	return s.activationCommands(ctx, resource, target, s.platformProviders)
}

// activationCommands implements the shared selection algorithm:
// settings gate, then conda, then the given providers in order.
func (s *Service) activationCommands(ctx context.Context, resource string, target shell.Type, providers []Provider) ([]string, error) {
	settings, err := s.settings.Settings(ctx, resource)
	if err != nil {
		return nil, err
	}
	if !settings.Terminal.ActivateEnvironment {
		s.log.Debug("environment activation disabled", "resource", resource)
		return nil, nil
	}

	interpreter := ResolveInterpreter(settings, resource)
	isConda, err := s.condaSvc.IsEnvironment(ctx, interpreter)
	if err != nil {
		return nil, err
	}
	if isConda {
		// Conda always wins when applicable; its result is returned
		// verbatim, empty list included.
		return s.condaProvider.ActivationCommands(ctx, resource, target)
	}

	for _, provider := range providers {
		if !provider.IsShellSupported(target) {
			continue
		}
		commands, err := provider.ActivationCommands(ctx, resource, target)
		if err != nil {
			return nil, err
		}
		if len(commands) > 0 {
			s.log.Debug("activation provider selected",
				"provider", provider.Name(),
				"shell", target.String())
			return commands, nil
		}
		// Empty result: keep going, a later provider may still apply
	}

	return nil, nil
}
