package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jmylchreest/tonal/internal/colour"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 80

// swatcher renders colour samples for a writer. Non-terminal writers get
// plain text so captured output stays free of escape sequences.
type swatcher struct {
	out   *termenv.Output
	width int
}

func newSwatcher(w io.Writer) *swatcher {
	profile := termenv.Ascii
	width := defaultWidth

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		profile = termenv.NewOutput(f).EnvColorProfile()
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			width = cols
		}
	}

	return &swatcher{
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		width: width,
	}
}

// swatch renders label in textHex on a bgHex background.
func (s *swatcher) swatch(label, bgHex, textHex string) string {
	style := s.out.String(" " + label + " ").Background(s.out.Color(bgHex))
	if textHex != "" {
		style = style.Foreground(s.out.Color(textHex))
	}
	return style.String()
}

// textFor returns the reference text colour used on a band.
func textFor(band colour.Band, text colour.TextConfig) string {
	if band.IsTint() {
		return text.OnLight
	}
	return text.OnDark
}

// writePreview prints one row per slot: the base colour followed by its
// variations, each labelled in the text colour it was checked against.
func (s *swatcher) writePreview(w io.Writer, p colour.PaletteWithVariations, text colour.TextConfig) {
	for slot, c := range p.All() {
		cells := []string{s.swatch(c.Hex, c.Hex, "")}
		for _, v := range c.Variations {
			cells = append(cells, s.swatch(v.Hex, v.Hex, textFor(v.Step, text)))
		}

		row := fmt.Sprintf("%-10s %s", slot, strings.Join(cells, " "))
		if visibleWidth(row) > s.width {
			// Narrow terminals get the base colour only.
			row = fmt.Sprintf("%-10s %s", slot, cells[0])
		}
		fmt.Fprintln(w, row)
	}
}
