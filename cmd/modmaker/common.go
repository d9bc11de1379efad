package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/output"
	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/system"
)

// OutputOptions contains the flags shared by every command that produces a document.
type OutputOptions struct {
	Format string
	Out    string
	Copy   bool
}

// RegisterFlags adds output flags to a cobra command.
func (opts *OutputOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "",
		"Output format: json, yaml, table (default from config, else json)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "",
		"Write the document to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false,
		"Copy the document to the clipboard")
}

// ResolveFormat picks the format from the flag, then MODMAKER_FORMAT or the
// config file, then the system config.
func (opts *OutputOptions) ResolveFormat(cfg *system.Config) string {
	if opts.Format != "" {
		return opts.Format
	}
	if f := viper.GetString("format"); f != "" {
		return f
	}
	return cfg.Output.Format
}

// ValidateFlags validates output options.
func (opts *OutputOptions) ValidateFlags(cfg *system.Config) error {
	format := opts.ResolveFormat(cfg)
	if !slices.Contains(output.NewEncoderFactory().SupportedFormats(), format) {
		return fmt.Errorf("invalid format: %s (valid: json, yaml, table)", format)
	}
	if format == output.FormatTable && (opts.Out != "" || opts.Copy) {
		return fmt.Errorf("table output is for the terminal; use json or yaml with --out or --copy")
	}
	return nil
}

// Emit encodes doc and sends it to the file, the clipboard or stdout.
func (opts *OutputOptions) Emit(cc *CommandContext, cmd *cobra.Command, doc any) error {
	cfg := cc.Container.SystemConfig()
	if err := opts.ValidateFlags(cfg); err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	encoder, err := cc.Container.Encoders().Create(opts.ResolveFormat(cfg), output.Options{
		Color: shouldColorize(stdout),
	})
	if err != nil {
		return err
	}
	data, err := encoder.Encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if opts.Out == "" && !opts.Copy {
		_, err := stdout.Write(data)
		return err
	}

	if opts.Out != "" {
		path, err := writeFile(cc, opts.Out, data)
		if err != nil {
			return err
		}
		cc.Logger.Info("document written", "path", path)
		fmt.Fprintf(stdout, "Saved %s\n", path)
	}
	if opts.Copy {
		if err := cc.Container.Clipboard().WriteAll(string(data)); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(stdout, "Copied to clipboard")
	}
	return nil
}

// writeFile writes data to path through the mod filesystem and returns the
// absolute path written.
func writeFile(cc *CommandContext, path string, data []byte) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}

	root, err := cc.Container.FileSystem().OpenRoot(filepath.Dir(abs))
	if err != nil {
		return "", err
	}
	defer func() { _ = root.Close() }()

	if err := root.WriteFile(filepath.Base(abs), data); err != nil {
		return "", err
	}
	return abs, nil
}

// defaultAuthors returns MODMAKER_AUTHOR (or author in the config file) when
// set, else the system config authors.
func defaultAuthors(cfg *system.Config) []string {
	if author := strings.TrimSpace(viper.GetString("author")); author != "" {
		return []string{author}
	}
	return append([]string(nil), cfg.Authors...)
}

// parseSize reads a WIDTHxHEIGHT grid size such as 3x3.
func parseSize(s string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT, e.g. 3x3", s)
	}
	if width, err = strconv.Atoi(w); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if height, err = strconv.Atoi(h); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return width, height, nil
}

// isInteractive reports whether stdin is a terminal a form can run on.
func isInteractive() bool {
	return isTerminal(os.Stdin)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(file)
}

func isTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// requireInteractive fails early when a form is requested without a terminal.
func requireInteractive() error {
	if !isInteractive() {
		return fmt.Errorf("--interactive needs a terminal")
	}
	return nil
}
