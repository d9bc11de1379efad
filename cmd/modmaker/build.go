package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/dto"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/output"
)

// BuildOptions holds options for the build command.
type BuildOptions struct {
	dir         string
	only        string
	parallelism int
	watch       bool
}

func init() {
	rootCmd.AddCommand(newBuildCmd())
}

func newBuildCmd() *cobra.Command {
	opts := &BuildOptions{}

	cmd := &cobra.Command{
		Use:   "build <manifest.yaml|manifest.toml>",
		Short: "Generate a mod from a project manifest",
		Long: `Generate every item, block and recipe a project manifest lists. The mod
folder is created when missing; modinfo.json is rewritten on every build.

--only takes a boolean expression over kind, name, code and tags:
  kind == "recipe"
  name startsWith "copper"
  "tools" in tags

Examples:
  modmaker build modmaker.yaml
  modmaker build modmaker.toml --dir ~/VintagestoryData/Mods
  modmaker build modmaker.yaml --only 'kind != "block"' --watch`,
		Args: cobra.ExactArgs(1),
		RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
			return runBuild(cc, cmd, opts, args[0])
		}),
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Folder the mod folder is written to (default: the manifest's folder)")
	cmd.Flags().StringVar(&opts.only, "only", "", "Build only entries matching this expression")
	cmd.Flags().IntVar(&opts.parallelism, "parallelism", 0, "Concurrent file writes (default from config)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Rebuild whenever the manifest changes")

	return cmd
}

func runBuild(cc *CommandContext, cmd *cobra.Command, opts *BuildOptions, manifestPath string) error {
	req := dto.BuildProjectRequest{
		ManifestPath:    manifestPath,
		TargetDirectory: opts.dir,
		Filter:          opts.only,
		Parallelism:     opts.parallelism,
	}
	builder := cc.Container.ProjectBuilder()
	out := cmd.OutOrStdout()

	if !opts.watch {
		resp, err := builder.Build(cc.Context, req)
		if err != nil {
			return err
		}
		printBuildSummary(out, resp)
		return nil
	}

	ctx, stop := signal.NotifyContext(cc.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cc.Logger.Info("watching manifest, press Ctrl+C to stop", "path", manifestPath)
	return builder.Watch(ctx, req, func(resp *dto.BuildProjectResponse, err error) {
		if err != nil {
			cc.Logger.Error("build failed", "path", manifestPath, "error", err)
			return
		}
		printBuildSummary(out, resp)
	})
}

func printBuildSummary(w io.Writer, resp *dto.BuildProjectResponse) {
	if resp.Scaffolded {
		fmt.Fprintf(w, "Created %s\n", resp.ModPath)
	}
	fmt.Fprint(w, output.RenderBuildSummary(resp))
	fmt.Fprintf(w, "Built %d files in %s\n", len(resp.Written), resp.Duration.Round(time.Millisecond))
}
