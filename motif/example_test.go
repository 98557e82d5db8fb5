package motif_test

import (
	"fmt"

	"github.com/katalvlaran/lvbio/motif"
)

// ExampleMedianStrings finds the 3-mers closest to five DNA strings.
func ExampleMedianStrings() {
	dna := []string{"AAATTGACGCAT", "GACGACCACGTT", "CGTCAGCGCCTG", "GCTGAGCACCGG", "AGTACGGGACAG"}
	medians, dist, err := motif.MedianStrings(dna, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(medians, dist)
	// Output:
	// [ACG GAC] 2
}
