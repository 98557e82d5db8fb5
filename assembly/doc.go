// Package assembly builds the overlap and de Bruijn graphs used in
// genome assembly exercises.
//
// Graphs are dag.Unweighted[string] values. Only nodes with at least one
// successor become keys; successor lists are sorted and keep duplicates,
// since a repeated edge stands for a repeated k-mer.
//
// Neither graph is acyclic in general, so dag.TopologicalSort on them
// reports a dag.CycleError whenever the reads overlap in a loop.
package assembly
