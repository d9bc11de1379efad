package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/dto"
	"github.com/TinyTaru/VintagestoryModmaker/internal/application/ports"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/dialog"
	"github.com/TinyTaru/VintagestoryModmaker/internal/templates"
)

// CreateModOptions holds options for the create mod command.
type CreateModOptions struct {
	fields      ModInfoFlags
	dir         string
	forcePicker bool
	noManifest  bool
}

func newCreateModCmd() *cobra.Command {
	opts := &CreateModOptions{}

	cmd := &cobra.Command{
		Use:   "mod",
		Short: "Create a new mod folder",
		Long: `Create <dir>/<modid>/ with modinfo.json, README.md and the asset folders
(blocktypes, itemtypes, recipes/grid, patches, textures, shaders), plus a
starter project manifest <dir>/modmaker.yaml for "modmaker build".

Without --dir a folder picker opens when running in a terminal.

Examples:
  # Create ./copperworks
  modmaker create mod --modid copperworks --name "Copper Works" --dir .

  # Pick the parent folder interactively
  modmaker create mod --modid copperworks --force-picker`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
			return runCreateMod(cc, cmd, opts)
		}),
	}

	opts.fields.RegisterFlags(cmd)
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Folder to create the mod in")
	cmd.Flags().BoolVar(&opts.forcePicker, "force-picker", false, "Always open the folder picker, starting at --dir")
	cmd.Flags().BoolVar(&opts.noManifest, "no-manifest", false, "Do not write the starter project manifest")

	return cmd
}

func runCreateMod(cc *CommandContext, cmd *cobra.Command, opts *CreateModOptions) error {
	info, err := opts.fields.Apply(cc.Container.SystemConfig())
	if err != nil {
		return err
	}

	if info.ModID == "" {
		if !isInteractive() {
			return errors.New("mod id is required: pass --modid")
		}
		if err := runModInfoForm(cc.Context, info); err != nil {
			return err
		}
	}
	if info.Name == "" {
		info.Name = titleFromModID(info.ModID)
	}

	picker, err := opts.picker()
	if err != nil {
		return err
	}
	choice := picker.PickDirectory(cc.Context, dto.DirectoryDialogRequest{DefaultPath: opts.dir})
	switch {
	case choice.Canceled:
		fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
		return nil
	case choice.Error:
		return fmt.Errorf("failed to choose a folder: %s", choice.Message)
	}
	target := filepath.Join(choice.Path, choice.Name)

	resp := cc.Container.ModScaffolder().CreateMod(cc.Context, dto.CreateModRequest{
		ModInfo:         info,
		TargetDirectory: target,
	})
	if !resp.Success {
		return errors.New(resp.Message)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", resp.Message, resp.Path)

	if opts.noManifest {
		return nil
	}
	manifestPath, err := writeStarterManifest(cc, target, info)
	if err != nil {
		return err
	}
	if manifestPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Project manifest %s (run: modmaker build %s)\n", manifestPath, manifestPath)
	}
	return nil
}

// picker chooses how the target folder is asked for.
func (opts *CreateModOptions) picker() (ports.DirectoryPicker, error) {
	switch {
	case opts.forcePicker:
		if err := requireInteractive(); err != nil {
			return nil, errors.New("--force-picker needs a terminal")
		}
		return dialog.NewDirectoryPicker(), nil
	case opts.dir != "":
		return dialog.StaticPicker{Dir: opts.dir}, nil
	case isInteractive():
		return dialog.NewDirectoryPicker(), nil
	default:
		return dialog.StaticPicker{}, nil
	}
}

// writeStarterManifest writes modmaker.yaml next to the new mod folder. An
// existing manifest is left alone and "" is returned.
func writeStarterManifest(cc *CommandContext, target string, info *entities.ModInfo) (string, error) {
	root, err := cc.Container.FileSystem().OpenRoot(target)
	if err != nil {
		return "", err
	}
	defer func() { _ = root.Close() }()

	manifestPath := filepath.Join(root.Path(), templates.ManifestFile)
	if root.Exists(templates.ManifestFile) {
		cc.Logger.Warn("project manifest already exists, leaving it unchanged", "path", manifestPath)
		return "", nil
	}

	data, err := cc.Container.Renderer().RenderManifest(info)
	if err != nil {
		return "", err
	}
	if err := root.WriteFile(templates.ManifestFile, data); err != nil {
		return "", err
	}
	return manifestPath, nil
}

// titleFromModID derives a display name such as "Copperworks" from a mod id.
func titleFromModID(modID string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(modID))
}
