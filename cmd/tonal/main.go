// Tonal - An accessible colour palette generator
//
// Tonal derives contrast-checked tints and shades from a brand palette
// so every variation stays readable under near-black or near-white text.
package main

import (
	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	cli.Execute()
}
