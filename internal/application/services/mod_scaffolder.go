// Package services contains application use cases.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/dto"
	"github.com/TinyTaru/VintagestoryModmaker/internal/application/ports"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/services"
)

// ModInfoFile is the name of the mod descriptor at the mod root.
const ModInfoFile = "modinfo.json"

// AssetDirs are created under assets/<modid>/ for every new mod.
var AssetDirs = []string{"blocktypes", "itemtypes", "recipes/grid", "patches", "textures", "shaders"}

// AssetsDir returns the slash-separated asset folder of a mod, relative to the mod root.
func AssetsDir(modID string) string {
	return path.Join("assets", modID)
}

// ModScaffolder creates the folder layout of a new mod.
type ModScaffolder struct {
	fs             ports.ModFileSystem
	encoder        ports.DocumentEncoder
	readme         ports.ReadmeRenderer
	logger         *slog.Logger
	defaultAuthors []string
}

// NewModScaffolder creates a scaffolder. defaultAuthors fills in modinfo
// authors when the form has none.
func NewModScaffolder(
	fs ports.ModFileSystem,
	encoder ports.DocumentEncoder,
	readme ports.ReadmeRenderer,
	defaultAuthors []string,
	logger *slog.Logger,
) *ModScaffolder {
	if logger == nil {
		logger = slog.Default()
	}
	return &ModScaffolder{
		fs:             fs,
		encoder:        encoder,
		readme:         readme,
		defaultAuthors: defaultAuthors,
		logger:         logger,
	}
}

// CreateMod writes <target>/<modid>/ with modinfo.json, README.md and the
// asset folders. Existing files are overwritten. Every failure is reported in
// the response.
func (s *ModScaffolder) CreateMod(ctx context.Context, req dto.CreateModRequest) dto.CreateModResponse {
	modPath, err := s.createMod(ctx, req)
	if err != nil {
		s.logger.Error("error creating mod", "error", err)
		return dto.CreateModResponse{Success: false, Message: err.Error()}
	}

	s.logger.Info("mod created", "path", modPath)
	return dto.CreateModResponse{Success: true, Path: modPath, Message: dto.MessageModCreated}
}

func (s *ModScaffolder) createMod(ctx context.Context, req dto.CreateModRequest) (string, error) {
	if req.ModInfo == nil {
		return "", fmt.Errorf("mod info is required")
	}
	if strings.TrimSpace(req.TargetDirectory) == "" {
		return "", fmt.Errorf("target directory is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info := *req.ModInfo
	info.ApplyDefaults()
	info.Authors = info.CleanAuthors()
	if len(info.Authors) == 0 {
		info.Authors = append([]string(nil), s.defaultAuthors...)
	}
	if err := info.Validate(); err != nil {
		return "", err
	}

	root, err := s.fs.OpenRoot(filepath.Join(req.TargetDirectory, info.ModID))
	if err != nil {
		return "", err
	}
	defer func() { _ = root.Close() }()

	if err := s.writeModInfo(root, &info); err != nil {
		return "", err
	}

	assets := AssetsDir(info.ModID)
	for _, dir := range AssetDirs {
		if err := root.MkdirAll(path.Join(assets, dir)); err != nil {
			return "", err
		}
		s.logger.Debug("created asset directory", "dir", path.Join(assets, dir))
	}

	readme, err := s.readme.RenderReadme(&info)
	if err != nil {
		return "", fmt.Errorf("failed to render README.md: %w", err)
	}
	if err := root.WriteFile("README.md", readme); err != nil {
		return "", err
	}

	return root.Path(), nil
}

func (s *ModScaffolder) writeModInfo(root ports.ModRoot, info *entities.ModInfo) error {
	data, err := s.encoder.Encode(services.NewModInfoDocument(info))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", ModInfoFile, err)
	}
	return root.WriteFile(ModInfoFile, data)
}
