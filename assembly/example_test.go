package assembly_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvbio/assembly"
)

// ExampleDeBruijn prints the successors of every 2-mer of a short text.
func ExampleDeBruijn() {
	g, err := assembly.DeBruijn(3, "TAATGCCATGGGATGTT")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Println(k, g[k])
	}
	// Output:
	// AA [AT]
	// AT [TG TG TG]
	// CA [AT]
	// CC [CA]
	// GA [AT]
	// GC [CC]
	// GG [GA GG]
	// GT [TT]
	// TA [AA]
	// TG [GC GG GT]
}
