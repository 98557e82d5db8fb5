package scoring_test

import (
	"fmt"

	"github.com/katalvlaran/lvbio/scoring"
)

// ExampleBLOSUM62 looks up a substitution score and an affine gap cost.
func ExampleBLOSUM62() {
	s, err := scoring.BLOSUM62().Score('L', 'M')
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	gap := scoring.Gap{Open: 11, Extend: 1}
	fmt.Println(s, gap.Cost(3))
	// Output:
	// 2 13
}
