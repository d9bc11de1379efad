// Package container provides dependency injection for the application.
package container

import (
	"log/slog"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/ports"
	"github.com/TinyTaru/VintagestoryModmaker/internal/application/services"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/clipboard"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/filesystem"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/manifest"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/output"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/system"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/validation"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/watch"
	"github.com/TinyTaru/VintagestoryModmaker/internal/templates"
)

// Container holds all application dependencies.
type Container struct {
	scaffolder *services.ModScaffolder
	builder    *services.ProjectBuilder
	validator  *validation.DocumentValidator
	renderer   *templates.Renderer
	encoders   *output.EncoderFactory
	fs         ports.ModFileSystem
	clipboard  ports.Clipboard
	systemCfg  *system.Config
	logger     *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger           *slog.Logger
	SystemConfigPath string
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	configPath := opts.SystemConfigPath
	if configPath == "" {
		configPath = system.DefaultConfigPath()
	}
	systemCfg, err := system.NewConfigLoader().Load(configPath)
	if err != nil {
		return nil, err
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}

	fs := filesystem.NewModFileSystem()
	validator := validation.NewDocumentValidator()
	jsonEncoder := output.NewJSONEncoder()

	scaffolder := services.NewModScaffolder(fs, jsonEncoder, renderer, systemCfg.Authors, opts.Logger)

	builder := services.NewProjectBuilder(services.ProjectBuilderOptions{
		Loader:      manifest.NewLoader(),
		Scaffolder:  scaffolder,
		FileSystem:  fs,
		Locker:      filesystem.NewDirectoryLocker(),
		Encoder:     jsonEncoder,
		Validator:   validator,
		Notifier:    watch.NewNotifier(0, opts.Logger),
		Logger:      opts.Logger,
		Parallelism: systemCfg.Build.Parallelism,
	})

	return &Container{
		scaffolder: scaffolder,
		builder:    builder,
		validator:  validator,
		renderer:   renderer,
		encoders:   output.NewEncoderFactory(),
		fs:         fs,
		clipboard:  clipboard.NewSystem(),
		systemCfg:  systemCfg,
		logger:     opts.Logger,
	}, nil
}

// ModScaffolder returns the create-mod use case.
func (c *Container) ModScaffolder() *services.ModScaffolder {
	return c.scaffolder
}

// ProjectBuilder returns the manifest build use case.
func (c *Container) ProjectBuilder() *services.ProjectBuilder {
	return c.builder
}

// DocumentValidator returns the schema validator.
func (c *Container) DocumentValidator() *validation.DocumentValidator {
	return c.validator
}

// Renderer returns the mod template renderer.
func (c *Container) Renderer() *templates.Renderer {
	return c.renderer
}

// Encoders returns the output encoder factory.
func (c *Container) Encoders() *output.EncoderFactory {
	return c.encoders
}

// FileSystem returns the mod filesystem.
func (c *Container) FileSystem() ports.ModFileSystem {
	return c.fs
}

// Clipboard returns the system clipboard.
func (c *Container) Clipboard() ports.Clipboard {
	return c.clipboard
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
