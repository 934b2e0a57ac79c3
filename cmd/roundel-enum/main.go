package main

/*

Enumerates every distinct ring position of a given length, counting
rotations and mirror images as the same position. Prints one ring per
line (glyphs by default, base-3 digits with -digits) followed by the
total.

For the default 8-cell ring the total is 498.

*/

import (
	"flag"
	"fmt"
	"os"

	"github.com/roundel-game/roundel/pkg/roundel"
)

// The walk visits 3^cells packed values, so the CLI keeps the length
// well below the library's cap of 20
const maxEnumCells = 12

func main() {
	cells := flag.Uint("cells", 8, fmt.Sprintf("number of ring cells (1-%d)", maxEnumCells))
	digits := flag.Bool("digits", false, "print base-3 digits instead of glyphs")
	flag.Parse()

	if *cells < 1 || *cells > maxEnumCells {
		fmt.Fprintf(os.Stderr, "roundel-enum: cells must be between 1 and %d\n", maxEnumCells)
		os.Exit(2)
	}

	rings, err := roundel.EnumerateCanonical(uint8(*cells))
	if err != nil {
		fmt.Fprintf(os.Stderr, "roundel-enum: %v\n", err)
		os.Exit(1)
	}

	for _, ring := range rings {
		if *digits {
			fmt.Println(ring.Digits())
		} else {
			fmt.Printf("|%s|\n", ring)
		}
	}
	fmt.Printf("Number of unique rings with %d cells: %d\n", *cells, len(rings))
}
