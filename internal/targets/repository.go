package targets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
)

const keyPrefix = "targets/"

// Repository reads and writes the band targets of named palettes.
type Repository struct {
	store Store
}

// NewRepository returns a repository over store.
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// key builds "targets/{palette}/{slot}".
func key(palette string, slot colour.Slot) string {
	return keyPrefix + palette + "/" + string(slot)
}

// ValidatePaletteName checks a palette name is usable as a key segment.
func ValidatePaletteName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("palette name must not be empty")
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("palette name %q must not contain '/'", name)
	}
	return nil
}

// Get returns the stored targets for one slot. A slot with nothing stored
// returns empty targets and no error.
func (r *Repository) Get(ctx context.Context, palette string, slot colour.Slot) (colour.BandTargets, error) {
	if err := ValidatePaletteName(palette); err != nil {
		return colour.BandTargets{}, err
	}

	data, err := r.store.Get(ctx, key(palette, slot))
	if errors.Is(err, ErrNotFound) {
		return colour.BandTargets{}, nil
	}
	if err != nil {
		return colour.BandTargets{}, err
	}

	var bt colour.BandTargets
	if err := json.Unmarshal(data, &bt); err != nil {
		return colour.BandTargets{}, fmt.Errorf("corrupt targets for %s/%s: %w", palette, slot, err)
	}
	return bt, nil
}

// Put replaces the stored targets for one slot. Empty targets remove the entry.
func (r *Repository) Put(ctx context.Context, palette string, slot colour.Slot, bt colour.BandTargets) error {
	if err := ValidatePaletteName(palette); err != nil {
		return err
	}
	if bt.IsEmpty() {
		return r.store.Delete(ctx, key(palette, slot))
	}

	for _, b := range colour.Bands {
		if y, ok := bt.Get(b).Value(); ok && (y < 0 || y > 1) {
			return fmt.Errorf("%s target %.4f outside [0, 1]", b, y)
		}
	}

	data, err := json.Marshal(bt)
	if err != nil {
		return fmt.Errorf("failed to encode targets: %w", err)
	}
	return r.store.Put(ctx, key(palette, slot), data)
}

// Set stores a single band target, keeping the slot's other bands.
func (r *Repository) Set(ctx context.Context, palette string, slot colour.Slot, band colour.Band, y float64) error {
	bt, err := r.Get(ctx, palette, slot)
	if err != nil {
		return err
	}
	return r.Put(ctx, palette, slot, bt.With(band, y))
}

// Clear removes a band target. An empty band clears the whole slot.
func (r *Repository) Clear(ctx context.Context, palette string, slot colour.Slot, band colour.Band) error {
	if band == "" {
		return r.Put(ctx, palette, slot, colour.BandTargets{})
	}

	bt, err := r.Get(ctx, palette, slot)
	if err != nil {
		return err
	}
	bt.Set(band, colour.Target{})
	return r.Put(ctx, palette, slot, bt)
}

// Load returns every stored slot of a palette.
func (r *Repository) Load(ctx context.Context, palette string) (colour.PaletteTargets, error) {
	if err := ValidatePaletteName(palette); err != nil {
		return nil, err
	}

	out := colour.PaletteTargets{}
	for _, slot := range colour.Slots {
		bt, err := r.Get(ctx, palette, slot)
		if err != nil {
			return nil, err
		}
		if !bt.IsEmpty() {
			out[slot] = bt
		}
	}
	return out, nil
}

// Palettes lists the names of palettes with stored targets.
func (r *Repository) Palettes(ctx context.Context) ([]string, error) {
	keys, err := r.store.List(ctx, keyPrefix)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, k := range keys {
		name, _, ok := strings.Cut(strings.TrimPrefix(k, keyPrefix), "/")
		if !ok {
			continue
		}
		if len(names) == 0 || names[len(names)-1] != name {
			names = append(names, name)
		}
	}
	return names, nil
}
