package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbio/grid"
	"github.com/katalvlaran/lvbio/motif"
	"github.com/katalvlaran/lvbio/textio"
)

var touristCmd = &cobra.Command{
	Use:   "tourist [input.txt]",
	Short: "heaviest down/right path through a weighted grid",
	Long: `heaviest down/right path through a weighted grid

Input:
  line 1     "n m"
  n lines    m+1 weights of the southward streets
  "-"
  n+1 lines  m weights of the eastward streets

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		file := inputFile(args)

		checkError(withInput(file, func(r io.Reader) error {
			return withOutput(opt.OutFile, func(w io.Writer) error {
				return runTourist(r, w)
			})
		}))
	},
}

func runTourist(r io.Reader, w io.Writer) error {
	down, right, err := textio.ParseTourist(r)
	if err != nil {
		return err
	}
	best, err := grid.ManhattanTourist(down, right)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, best)
	return err
}

var medianCmd = &cobra.Command{
	Use:   "median [flags] [input.txt]",
	Short: "k-mers closest to a collection of DNA strings",
	Long: fmt.Sprintf(`k-mers closest to a collection of DNA strings

Input is whitespace-separated DNA strings. Every k-mer over ACGT is tried,
so k is limited to %d. All k-mers reaching the minimal total distance are
printed, space-separated and sorted, followed by that distance.

`, motif.MaxK),
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		file := inputFile(args)
		k := getFlagPositiveInt(cmd, "kmer-len")

		checkError(withInput(file, func(r io.Reader) error {
			return withOutput(opt.OutFile, func(w io.Writer) error {
				return runMedian(r, w, k)
			})
		}))
	},
}

func runMedian(r io.Reader, w io.Writer, k int) error {
	dna, err := readWords(r)
	if err != nil {
		return err
	}
	medians, dist, err := motif.MedianStrings(dna, k)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n%d\n", strings.Join(medians, " "), dist)
	return err
}

func init() {
	RootCmd.AddCommand(touristCmd)
	RootCmd.AddCommand(medianCmd)

	medianCmd.Flags().IntP("kmer-len", "k", 3,
		formatFlagUsage("K-mer length."))
}
