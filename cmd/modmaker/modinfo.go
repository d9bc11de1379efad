package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/services"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/system"
)

// ModInfoFlags are the modinfo fields settable from the command line. The
// create mod command shares them.
type ModInfoFlags struct {
	modID        string
	name         string
	description  string
	version      string
	side         string
	modType      string
	authors      []string
	dependencies []string
}

// RegisterFlags adds modinfo flags to a cobra command.
func (f *ModInfoFlags) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.modID, "modid", "", "Mod id: lowercase letters and digits, starting with a letter")
	cmd.Flags().StringVar(&f.name, "name", "", "Display name")
	cmd.Flags().StringVar(&f.description, "description", "", "Short description")
	cmd.Flags().StringVar(&f.version, "version", "", "Mod version (default 1.0.0)")
	cmd.Flags().StringVar(&f.side, "side", "", "Universal, Client or Server (default from config)")
	cmd.Flags().StringVar(&f.modType, "type", "", "code, content or dlc (default from config)")
	cmd.Flags().StringArrayVar(&f.authors, "author", nil, "Author name (repeatable, default from config)")
	cmd.Flags().StringArrayVar(&f.dependencies, "dependency", nil, "Dependency as modid or modid=version (repeatable)")
}

// Apply builds a modinfo from the config defaults overlaid with the flags.
func (f *ModInfoFlags) Apply(cfg *system.Config) (*entities.ModInfo, error) {
	info := cfg.NewModInfo()
	info.Authors = defaultAuthors(cfg)

	info.ModID = strings.TrimSpace(f.modID)
	info.Name = strings.TrimSpace(f.name)
	info.Description = f.description
	if f.version != "" {
		info.Version = f.version
	}
	if f.side != "" {
		side, err := values.NewModSide(f.side)
		if err != nil {
			return nil, fmt.Errorf("--side: %w", err)
		}
		info.Side = side
	}
	if f.modType != "" {
		modType, err := values.NewModType(f.modType)
		if err != nil {
			return nil, fmt.Errorf("--type: %w", err)
		}
		info.Type = modType
	}
	if len(f.authors) > 0 {
		info.Authors = append([]string(nil), f.authors...)
	}
	for _, dep := range f.dependencies {
		id, version, _ := strings.Cut(dep, "=")
		info.SetDependency(id, version)
	}
	return info, nil
}

// ModInfoOptions holds options for the modinfo command.
type ModInfoOptions struct {
	fields      ModInfoFlags
	output      OutputOptions
	interactive bool
}

func init() {
	rootCmd.AddCommand(newModInfoCmd())
}

func newModInfoCmd() *cobra.Command {
	opts := &ModInfoOptions{}

	cmd := &cobra.Command{
		Use:   "modinfo",
		Short: "Generate a modinfo.json document",
		Long: `Generate modinfo.json for a mod. Blank authors are dropped and dependencies
without a version accept any version.

Examples:
  modmaker modinfo --modid copperworks --name "Copper Works" --author Tyron
  modmaker modinfo --modid copperworks --name "Copper Works" --dependency game=1.19.0 --out modinfo.json
  modmaker modinfo --interactive --copy`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
			return runModInfo(cc, cmd, opts)
		}),
	}

	opts.fields.RegisterFlags(cmd)
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Fill in the fields in the terminal")
	opts.output.RegisterFlags(cmd)

	return cmd
}

func runModInfo(cc *CommandContext, cmd *cobra.Command, opts *ModInfoOptions) error {
	if err := opts.output.ValidateFlags(cc.Container.SystemConfig()); err != nil {
		return err
	}

	info, err := opts.fields.Apply(cc.Container.SystemConfig())
	if err != nil {
		return err
	}

	if opts.interactive {
		if err := requireInteractive(); err != nil {
			return err
		}
		if err := runModInfoForm(cc.Context, info); err != nil {
			return err
		}
	}

	if err := info.Validate(); err != nil {
		return fmt.Errorf("invalid modinfo: %w", err)
	}

	return opts.output.Emit(cc, cmd, services.NewModInfoDocument(info))
}

// runModInfoForm edits info in place.
func runModInfoForm(ctx context.Context, info *entities.ModInfo) error {
	authors := strings.Join(info.Authors, ", ")
	deps := formatDependencies(info)
	side := info.Side.String()
	modType := info.Type.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mod id").
				Value(&info.ModID).
				Validate(func(s string) error {
					_, err := values.NewModID(s)
					return err
				}),
			huh.NewInput().
				Title("Name").
				Value(&info.Name).
				Validate(required("name")),
			huh.NewText().
				Title("Description").
				Value(&info.Description),
			huh.NewInput().
				Title("Version").
				Value(&info.Version).
				Validate(values.ValidateModVersion),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Authors").
				Description("Comma separated").
				Value(&authors),
			huh.NewInput().
				Title("Dependencies").
				Description("Comma separated modid=version, e.g. game=1.19.0").
				Value(&deps),
			huh.NewSelect[string]().
				Title("Side").
				Options(huh.NewOptions(
					values.SideUniversal.String(), values.SideClient.String(), values.SideServer.String(),
				)...).
				Value(&side),
			huh.NewSelect[string]().
				Title("Type").
				Options(huh.NewOptions(
					values.ModTypeCode.String(), values.ModTypeContent.String(), values.ModTypeDLC.String(),
				)...).
				Value(&modType),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	info.Authors = splitList(authors)
	info.Dependencies = map[string]string{}
	for _, dep := range splitList(deps) {
		id, version, _ := strings.Cut(dep, "=")
		info.SetDependency(id, version)
	}
	info.Side = values.ModSide(side)
	info.Type = values.ModType(modType)
	return nil
}

func formatDependencies(info *entities.ModInfo) string {
	parts := make([]string, 0, len(info.Dependencies))
	for _, id := range info.DependencyIDs() {
		parts = append(parts, id+"="+info.Dependencies[id])
	}
	return strings.Join(parts, ", ")
}

// splitList splits a comma separated answer, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
