package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
)

// bandRibbon is one band's strip in JSON output.
type bandRibbon struct {
	Band    colour.Band          `json:"band"`
	Entries []colour.RibbonEntry `json:"entries"`
}

type ribbonOptions struct {
	bands       []string
	name        string
	format      string
	textOnLight string
	textOnDark  string
}

func (a *app) newRibbonCmd() *cobra.Command {
	opts := &ribbonOptions{}

	cmd := &cobra.Command{
		Use:   "ribbon HEX",
		Short: "List the AAA candidates for each band of a colour",
		Long: `List the candidate strip a picker would offer for each band of a colour.

Every candidate meets WCAG AAA against the band's text colour without
exceeding the recommended maximum contrast. The Y column is the luminance
target that reproduces the candidate; pass it to 'tonal targets set' or
'tonal generate --target' to pin a band.

Examples:
  tonal ribbon '#2563eb'
  tonal ribbon '#2563eb' --band lighter --band dark --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRibbon(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.bands, "band", nil, "Bands to show (default all)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Colour name used in warnings (default the hex)")
	cmd.Flags().StringVar(&opts.format, "format", formatTable, "Output format (table, json)")
	cmd.Flags().StringVar(&opts.textOnLight, "text-on-light", "", "Text colour checked against tints")
	cmd.Flags().StringVar(&opts.textOnDark, "text-on-dark", "", "Text colour checked against shades")

	return cmd
}

func (a *app) runRibbon(cmd *cobra.Command, hex string, opts *ribbonOptions) error {
	if opts.format != formatJSON && opts.format != formatTable {
		return fmt.Errorf("unknown format %q (expected %s or %s)", opts.format, formatJSON, formatTable)
	}

	if _, err := colour.ParseHex(hex); err != nil {
		return err
	}

	bands := colour.Bands
	if len(opts.bands) > 0 {
		bands = nil
		for _, s := range opts.bands {
			b, err := colour.ParseBand(s)
			if err != nil {
				return err
			}
			bands = append(bands, b)
		}
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

	name := opts.name
	if name == "" {
		name = hex
	}

	ribbons := make([]bandRibbon, 0, len(bands))
	for _, b := range bands {
		entries := colour.GenerateRibbonForBand(hex, b, shades.Text.OnLight, shades.Text.OnDark, shades)
		logWarnings(a.logger, colour.RibbonWarnings(name, hex, b, entries))
		ribbons = append(ribbons, bandRibbon{Band: b, Entries: entries})
	}

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		data, err := json.MarshalIndent(ribbons, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode ribbon: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	s := newSwatcher(out)
	table := NewTable([]string{"Band", "Index", "Swatch", "Hex", "Y", "Contrast"})
	for _, r := range ribbons {
		if len(r.Entries) == 0 {
			table.AddRow([]string{string(r.Band), "-", "", "(none)", "", ""})
			continue
		}
		for _, e := range r.Entries {
			table.AddRow([]string{
				string(r.Band),
				strconv.Itoa(e.Index),
				s.swatch("Aa", e.Hex, textFor(r.Band, shades.Text)),
				e.Hex,
				strconv.FormatFloat(e.Y, 'f', 4, 64),
				strconv.FormatFloat(e.Contrast, 'f', 2, 64),
			})
		}
	}
	_, err := fmt.Fprint(out, table.Render())
	return err
}
