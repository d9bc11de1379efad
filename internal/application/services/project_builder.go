package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/dto"
	apperrors "github.com/TinyTaru/VintagestoryModmaker/internal/application/errors"
	"github.com/TinyTaru/VintagestoryModmaker/internal/application/ports"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/services"
)

// DefaultBuildParallelism is used when neither the request nor the config set one.
const DefaultBuildParallelism = 4

// buildJob is one document to write.
type buildJob struct {
	doc  any
	kind string
	name string
	rel  string
}

// ProjectBuilder generates a mod folder from a manifest.
type ProjectBuilder struct {
	loader      ports.ManifestLoader
	scaffolder  *ModScaffolder
	fs          ports.ModFileSystem
	locker      ports.DirectoryLocker
	encoder     ports.DocumentEncoder
	validator   ports.DocumentValidator
	notifier    ports.ChangeNotifier
	logger      *slog.Logger
	parallelism int
}

// ProjectBuilderOptions wires a ProjectBuilder. Validator and Notifier may be
// nil: documents are then written unchecked and Watch is unavailable.
type ProjectBuilderOptions struct {
	Loader      ports.ManifestLoader
	Scaffolder  *ModScaffolder
	FileSystem  ports.ModFileSystem
	Locker      ports.DirectoryLocker
	Encoder     ports.DocumentEncoder
	Validator   ports.DocumentValidator
	Notifier    ports.ChangeNotifier
	Logger      *slog.Logger
	Parallelism int
}

// NewProjectBuilder creates a new project builder.
func NewProjectBuilder(opts ProjectBuilderOptions) *ProjectBuilder {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = DefaultBuildParallelism
	}
	return &ProjectBuilder{
		loader:      opts.Loader,
		scaffolder:  opts.Scaffolder,
		fs:          opts.FileSystem,
		locker:      opts.Locker,
		encoder:     opts.Encoder,
		validator:   opts.Validator,
		notifier:    opts.Notifier,
		logger:      opts.Logger,
		parallelism: opts.Parallelism,
	}
}

// Build loads the manifest, compiles every selected entry, then writes
// modinfo.json plus one document per entry. The mod folder is scaffolded
// first if it has no modinfo.json.
func (b *ProjectBuilder) Build(ctx context.Context, req dto.BuildProjectRequest) (*dto.BuildProjectResponse, error) {
	start := time.Now()

	b.logger.Info("loading manifest", "path", req.ManifestPath)
	manifest, err := b.loader.Load(req.ManifestPath)
	if err != nil {
		return nil, err
	}
	manifest.ApplyDefaults()
	if err := manifest.Validate(); err != nil {
		return nil, apperrors.NewValidationError("manifest", "invalid manifest", errorLines(err)...)
	}

	filter, err := services.CompileDefinitionFilter(req.Filter)
	if err != nil {
		return nil, apperrors.NewValidationError("filter", err.Error())
	}

	// Entries are compiled before anything is written so a bad recipe leaves
	// the mod folder untouched.
	resp := &dto.BuildProjectResponse{}
	jobs, err := b.plan(manifest, filter, resp)
	if err != nil {
		return nil, err
	}

	target := req.TargetDirectory
	if target == "" {
		target = filepath.Dir(req.ManifestPath)
	}
	modDir := filepath.Join(target, manifest.ModInfo.ModID)

	unlock, err := b.locker.Lock(ctx, modDir)
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", modDir, err)
	}
	defer func() {
		if err := unlock(); err != nil {
			b.logger.Warn("failed to release mod lock", "dir", modDir, "error", err)
		}
	}()

	root, err := b.fs.OpenRoot(modDir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = root.Close() }()

	resp.ModPath = root.Path()

	if root.Exists(ModInfoFile) {
		if err := b.scaffolder.writeModInfo(root, &manifest.ModInfo); err != nil {
			return nil, err
		}
	} else {
		created := b.scaffolder.CreateMod(ctx, dto.CreateModRequest{ModInfo: &manifest.ModInfo, TargetDirectory: target})
		if !created.Success {
			return nil, fmt.Errorf("failed to scaffold mod: %s", created.Message)
		}
		resp.Scaffolded = true
	}

	written, err := b.write(ctx, root, jobs)
	if err != nil {
		return nil, err
	}
	resp.Written = written
	resp.Duration = time.Since(start)

	b.logger.Info("build complete",
		"mod", resp.ModPath,
		"written", len(resp.Written),
		"skipped", len(resp.Skipped),
		"warnings", len(resp.Warnings),
		"duration", resp.Duration)

	return resp, nil
}

// Watch builds once and again after every change to the manifest, passing
// each result to report. It returns when ctx is done.
func (b *ProjectBuilder) Watch(
	ctx context.Context,
	req dto.BuildProjectRequest,
	report func(*dto.BuildProjectResponse, error),
) error {
	if b.notifier == nil {
		return errors.New("watching is not available")
	}

	changes, err := b.notifier.Watch(ctx, req.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", req.ManifestPath, err)
	}

	report(b.Build(ctx, req))
	for range changes {
		b.logger.Info("manifest changed, rebuilding", "path", req.ManifestPath)
		report(b.Build(ctx, req))
	}
	return nil
}

func (b *ProjectBuilder) plan(m *entities.Manifest, filter *services.DefinitionFilter, resp *dto.BuildProjectResponse) ([]buildJob, error) {
	assets := AssetsDir(m.ModInfo.ModID)
	jobs := make([]buildJob, 0, m.EntryCount())

	selected := func(kind, name, code string, tags []string) (bool, error) {
		ok, err := filter.Match(services.DefinitionEnv{Kind: kind, Name: name, Code: code, Tags: tags})
		if err != nil {
			return false, apperrors.NewValidationError("filter", err.Error())
		}
		if !ok {
			resp.Skipped = append(resp.Skipped, kind+"/"+name)
			b.logger.Debug("entry filtered out", "kind", kind, "name", name)
		}
		return ok, nil
	}

	for i := range m.Items {
		e := &m.Items[i]
		ok, err := selected(entities.EntryKindItem, e.Name, e.Code, e.Tags)
		if err != nil {
			return nil, err
		}
		if ok {
			jobs = append(jobs, buildJob{
				kind: entities.EntryKindItem,
				name: e.Name,
				rel:  path.Join(assets, "itemtypes", e.Name+".json"),
				doc:  services.NewItemDocument(&e.ItemDefinition),
			})
		}
	}

	for i := range m.Blocks {
		e := &m.Blocks[i]
		ok, err := selected(entities.EntryKindBlock, e.Name, e.Code, nil)
		if err != nil {
			return nil, err
		}
		if ok {
			jobs = append(jobs, buildJob{
				kind: entities.EntryKindBlock,
				name: e.Name,
				rel:  path.Join(assets, "blocktypes", e.Name+".json"),
				doc:  services.NewBlockDocument(&e.BlockDefinition),
			})
		}
	}

	for _, e := range m.Recipes {
		ok, err := selected(entities.EntryKindRecipe, e.Name, e.Output.Code, e.Tags)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		recipe, err := compileRecipeEntry(e)
		if err != nil {
			return nil, apperrors.NewBuildError(entities.EntryKindRecipe, e.Name, "compile failed", err)
		}
		for _, c := range recipe.KindConflicts {
			resp.Warnings = append(resp.Warnings, KindConflictWarning(e.Name, c))
		}
		jobs = append(jobs, buildJob{
			kind: entities.EntryKindRecipe,
			name: e.Name,
			rel:  path.Join(assets, "recipes", "grid", e.Name+".json"),
			doc:  services.NewRecipeDocument(recipe),
		})
	}

	return jobs, nil
}

func (b *ProjectBuilder) write(ctx context.Context, root ports.ModRoot, jobs []buildJob) ([]dto.WrittenFile, error) {
	written := make([]dto.WrittenFile, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.parallelism)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, err := b.encoder.Encode(job.doc)
			if err != nil {
				return apperrors.NewBuildError(job.kind, job.name, "encode failed", err)
			}
			if b.validator != nil {
				if err := b.validator.Validate(job.kind, data); err != nil {
					return apperrors.NewBuildError(job.kind, job.name, "generated document is invalid", err)
				}
			}
			if err := root.MkdirAll(path.Dir(job.rel)); err != nil {
				return apperrors.NewBuildError(job.kind, job.name, "create directory failed", err)
			}
			if err := root.WriteFile(job.rel, data); err != nil {
				return apperrors.NewBuildError(job.kind, job.name, "write failed", err)
			}

			b.logger.Debug("wrote document", "kind", job.kind, "name", job.name, "path", job.rel)
			written[i] = dto.WrittenFile{Kind: job.kind, Name: job.name, Path: job.rel}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return written, nil
}

func compileRecipeEntry(e entities.RecipeEntry) (*entities.CompiledRecipe, error) {
	session, err := entities.NewRecipeSession(entities.WithPalette(nil))
	if err != nil {
		return nil, err
	}
	if err := services.FillFromRows(session, e.Rows); err != nil {
		return nil, err
	}
	session.SetOutput(e.Output)
	session.SetShapeless(e.Shapeless)
	session.SetRecipeGroup(e.Group)
	session.SetEnabled(e.IsEnabled())
	return session.Compile()
}

// KindConflictWarning describes a kind conflict for the user.
func KindConflictWarning(recipe string, c entities.KindConflict) string {
	return fmt.Sprintf("recipe %s: %s at column %d, row %d is a %s but %c is already bound as %s; using %s",
		recipe, c.Code, c.X+1, c.Y+1, c.Ignored, c.Symbol, c.Kept, c.Kept)
}

// errorLines splits an errors.Join result into one line per error.
func errorLines(err error) []string {
	var lines []string
	for _, line := range strings.Split(err.Error(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
