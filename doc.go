// Package lvbio is a toolkit of exact dynamic-programming and graph
// algorithms for biological strings.
//
// 🚀 What is inside?
//
//	scoring/   substitution scorers (Constant, BLOSUM62, PAM250, custom
//	           matrices) and affine gap costs
//	align/     three-layer affine-gap alignment in global, local, fitting
//	           and overlap modes; Levenshtein distance; parallel Batch
//	dag/       longest path and topological order on generic DAGs
//	grid/      Manhattan tourist and longest common subsequence
//	motif/     Hamming distance and median-string search
//	assembly/  overlap and de Bruijn graphs
//	textio/    text problem formats and FASTA/FASTQ input
//	cmd/lvbio  command line front end to all of the above
//
// ✨ Conventions
//
//   - Library packages never log and never share mutable state; every call
//     owns its DP tables.
//   - Failures are sentinel errors wrapped with context, so errors.Is works
//     across package boundaries.
//   - Ties are broken by fixed, documented rules; only dag's choice among
//     equally ready nodes is left open, and it never changes a score.
//
// Quick example:
//
//	res, _ := align.Align(align.Global, "PLEASANTLY", "MEANLY", scoring.BLOSUM62(), 5, 5)
//	fmt.Println(res)
//	// 8
//	// PLEASANTLY
//	// -MEA--N-LY
//
//	go install github.com/katalvlaran/lvbio/cmd/lvbio@latest
package lvbio
