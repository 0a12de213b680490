package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
)

func (a *app) newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Manage stored band targets",
		Long: `Manage the band targets stored per palette.

A target pins one band of one slot to a relative luminance Y in [0, 1].
Stored targets are applied by 'tonal generate --palette NAME'.`,
	}

	cmd.AddCommand(a.newTargetsSetCmd())
	cmd.AddCommand(a.newTargetsGetCmd())
	cmd.AddCommand(a.newTargetsClearCmd())
	cmd.AddCommand(a.newTargetsListCmd())

	return cmd
}

func (a *app) newTargetsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set PALETTE SLOT.BAND=Y...",
		Short: "Pin one or more bands",
		Example: `  tonal targets set brand primary.lighter=0.9 primary.dark=0.07
  tonal targets set brand error.darker=0.03`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			specs := make([]targetSpec, 0, len(args)-1)
			for _, arg := range args[1:] {
				spec, err := parseTargetSpec(arg)
				if err != nil {
					return err
				}
				specs = append(specs, spec)
			}

			repo, store, err := a.openRepository(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			for _, spec := range specs {
				if err := repo.Set(ctx, args[0], spec.Slot, spec.Band, spec.Y); err != nil {
					return fmt.Errorf("failed to set %s.%s: %w", spec.Slot, spec.Band, err)
				}
				a.logger.Debug("set target", "palette", args[0], "slot", spec.Slot, "band", spec.Band, "y", spec.Y)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Set %d target(s) for %s\n", len(specs), args[0])
			return nil
		},
	}
}

func (a *app) newTargetsGetCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get PALETTE",
		Short: "Show the targets stored for a palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, store, err := a.openRepository(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			stored, err := repo.Load(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(stored, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode targets: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			if len(stored) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "No targets stored for %s\n", args[0])
				return nil
			}

			headers := []string{"Slot"}
			for _, b := range colour.Bands {
				headers = append(headers, string(b))
			}
			table := NewTable(headers)
			for _, slot := range colour.Slots {
				bt, ok := stored[slot]
				if !ok {
					continue
				}
				row := []string{string(slot)}
				for _, b := range colour.Bands {
					cell := "-"
					if y, ok := bt.Get(b).Value(); ok {
						cell = strconv.FormatFloat(y, 'f', 4, 64)
					}
					row = append(row, cell)
				}
				table.AddRow(row)
			}
			_, err = fmt.Fprint(out, table.Render())
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print targets as JSON")
	return cmd
}

func (a *app) newTargetsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear PALETTE SLOT[.BAND]...",
		Short: "Remove pinned bands",
		Long: `Remove pinned bands. A bare SLOT clears all four bands of that slot,
returning them to automatic selection.`,
		Example: `  tonal targets clear brand primary.lighter
  tonal targets clear brand error`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			type clearSpec struct {
				slot colour.Slot
				band colour.Band
			}
			specs := make([]clearSpec, 0, len(args)-1)
			for _, arg := range args[1:] {
				slotName, bandName, hasBand := strings.Cut(arg, ".")
				slot, err := colour.ParseSlot(slotName)
				if err != nil {
					return err
				}
				var band colour.Band
				if hasBand {
					if band, err = colour.ParseBand(bandName); err != nil {
						return err
					}
				}
				specs = append(specs, clearSpec{slot: slot, band: band})
			}

			repo, store, err := a.openRepository(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			for _, spec := range specs {
				if err := repo.Clear(ctx, args[0], spec.slot, spec.band); err != nil {
					return fmt.Errorf("failed to clear %s: %w", spec.slot, err)
				}
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Cleared %d target(s) for %s\n", len(specs), args[0])
			return nil
		},
	}
}

func (a *app) newTargetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List palettes with stored targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, store, err := a.openRepository(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			names, err := repo.Palettes(ctx)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
