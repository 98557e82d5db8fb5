// Package textio reads and writes the plain-text problem formats used by
// the lvbio command: weighted and unweighted adjacency lists, Manhattan
// tourist grids, and FASTA/FASTQ sequence files.
//
// Formats:
//
//	weighted edge      0->1:7
//	adjacency          0 -> 1,2,3
//	tourist grid       "n m", n down rows, "-", n+1 right rows
//
// Blank lines are skipped everywhere. Malformed input yields ErrSyntax
// wrapped with the 1-based line number.
//
// Files are opened with xopen, so gzip, bzip2, xz and zstd input is
// decompressed transparently and "-" means stdin.
package textio
