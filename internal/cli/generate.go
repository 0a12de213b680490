package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/plugin/input"
	"github.com/jmylchreest/tonal/internal/targets"
)

// Output formats.
const (
	formatJSON  = "json"
	formatTable = "table"
)

// generateOptions holds the generate command flags.
type generateOptions struct {
	input       string
	colours     []string
	palette     string
	targets     targetFlag
	noStored    bool
	saveTargets bool
	output      string
	format      string
	preview     bool
	textOnLight string
	textOnDark  string
}

func (a *app) newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate accessible variations for a base palette",
		Long: `Generate the lighter, light, dark and darker variations of every colour in a
base palette.

Band targets stored for the palette (see 'tonal targets') are applied first;
--target flags override them band by band. Bands without a target are chosen
automatically to meet WCAG AAA against the configured text colours.

Input Plugins:
` + a.inputHelp() + `
Examples:
  # Brand colours on the command line
  tonal generate --manual.primary '#2563eb' --manual.secondary '#7c3aed' \
    --manual.tertiary '#0ea5e9' --manual.accent '#f59e0b'

  # From a palette file, pinning one band
  tonal generate -i file --file.path brand.json --target primary.lighter=0.9

  # Save the pinned band for next time and print a table
  tonal generate -i file --file.path brand.json --palette brand \
    --target primary.dark=0.07 --save-targets --format table`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "manual", "Input plugin ("+strings.Join(a.inputs.List(), ", ")+")")
	cmd.Flags().StringArrayVar(&opts.colours, "colour", nil, "Colour override as slot=hex (repeatable)")
	cmd.Flags().StringVarP(&opts.palette, "palette", "p", "default", "Palette name used for stored targets")
	cmd.Flags().Var(&opts.targets, "target", "Band target as slot.band=Y (repeatable)")
	cmd.Flags().BoolVar(&opts.noStored, "no-stored-targets", false, "Ignore targets saved for the palette")
	cmd.Flags().BoolVar(&opts.saveTargets, "save-targets", false, "Save --target values for the palette")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVar(&opts.format, "format", formatJSON, "Output format (json, table)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Show a colour preview on stderr")
	cmd.Flags().StringVar(&opts.textOnLight, "text-on-light", "", "Text colour checked against tints")
	cmd.Flags().StringVar(&opts.textOnDark, "text-on-dark", "", "Text colour checked against shades")

	// Register plugin flags
	for _, name := range a.inputs.List() {
		plugin, _ := a.inputs.Get(name)
		plugin.RegisterFlags(cmd)
	}

	return cmd
}

// inputHelp lists the registered input plugins.
func (a *app) inputHelp() string {
	var b strings.Builder
	for _, name := range a.inputs.List() {
		plugin, _ := a.inputs.Get(name)
		fmt.Fprintf(&b, "  %-8s - %s\n", name, plugin.Description())
	}
	return b.String()
}

func (a *app) runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx := cmd.Context()

	if opts.format != formatJSON && opts.format != formatTable {
		return fmt.Errorf("unknown format %q (expected %s or %s)", opts.format, formatJSON, formatTable)
	}
	if err := targets.ValidatePaletteName(opts.palette); err != nil {
		return err
	}

	shades := a.cfg.Shades()
	if opts.textOnLight != "" {
		shades.Text.OnLight = opts.textOnLight
	}
	if opts.textOnDark != "" {
		shades.Text.OnDark = opts.textOnDark
	}
	if err := shades.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	// Get input plugin
	plugin, ok := a.inputs.Get(opts.input)
	if !ok {
		return fmt.Errorf("unknown input plugin: %s (available: %s)", opts.input, strings.Join(a.inputs.List(), ", "))
	}
	if err := plugin.Validate(); err != nil {
		return fmt.Errorf("input plugin validation failed: %w", err)
	}

	a.logger.Debug("generating base palette", "input", plugin.Name())
	base, err := plugin.Generate(ctx, input.GenerateOptions{
		Verbose:         a.verbose,
		ColourOverrides: opts.colours,
	})
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}

	stored := colour.PaletteTargets{}
	if !opts.noStored || opts.saveTargets {
		repo, store, err := a.openRepository(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if !opts.noStored {
			stored, err = repo.Load(ctx, opts.palette)
			if err != nil {
				return fmt.Errorf("failed to load targets for %s: %w", opts.palette, err)
			}
			a.logger.Debug("loaded stored targets", "palette", opts.palette, "slots", len(stored))
		}

		if opts.saveTargets {
			for _, slot := range colour.Slots {
				bt, ok := opts.targets.targets[slot]
				if !ok {
					continue
				}
				current, err := repo.Get(ctx, opts.palette, slot)
				if err != nil {
					return err
				}
				if err := repo.Put(ctx, opts.palette, slot, current.Merge(bt)); err != nil {
					return fmt.Errorf("failed to save targets for %s: %w", slot, err)
				}
			}
			a.logger.Info("saved targets", "palette", opts.palette, "count", len(opts.targets.raw))
		}
	}

	result, err := colour.AssemblePalette(*base, mergeTargets(stored, opts.targets.targets), shades)
	if err != nil {
		return err
	}
	logWarnings(a.logger, result.Warnings())

	var data []byte
	switch opts.format {
	case formatTable:
		data = []byte(renderPaletteTable(newSwatcher(destination(cmd, opts.output)), result, shades.Text))
	default:
		data, err = result.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		data = append(data, '\n')
	}

	if opts.preview {
		newSwatcher(cmd.ErrOrStderr()).writePreview(cmd.ErrOrStderr(), result, shades.Text)
	}

	if opts.output == "" || opts.output == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := writeFile(opts.output, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	a.logger.Info("wrote palette", "path", opts.output)
	return nil
}

// destination returns the writer output will end up on, used to decide
// whether colour escapes are appropriate.
func destination(cmd *cobra.Command, output string) io.Writer {
	if output == "" || output == "-" {
		return cmd.OutOrStdout()
	}
	return io.Discard
}

// renderPaletteTable lists every variation with its measurements.
func renderPaletteTable(s *swatcher, p colour.PaletteWithVariations, text colour.TextConfig) string {
	table := NewTable([]string{"Slot", "Name", "Swatch", "Hex", "Y", "Contrast", "Compliance"})
	for slot, c := range p.All() {
		table.AddRow([]string{string(slot), c.Name, s.swatch("  ", c.Hex, ""), c.Hex, "", "", ""})
		for _, v := range c.Variations {
			compliance := string(v.Compliance)
			if v.UserSupplied {
				compliance += " (pinned)"
			}
			table.AddRow([]string{
				"",
				v.Name,
				s.swatch("Aa", v.Hex, textFor(v.Step, text)),
				v.Hex,
				strconv.FormatFloat(v.Y, 'f', 4, 64),
				strconv.FormatFloat(v.Contrast, 'f', 2, 64),
				compliance,
			})
		}
	}
	return table.Render()
}

// writeFile writes content to a file, creating directories as needed.
func writeFile(path string, content []byte) error {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	// Ensure directory exists
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	return os.WriteFile(path, content, 0o600)
}
