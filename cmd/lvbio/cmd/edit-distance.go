package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbio/align"
	"github.com/katalvlaran/lvbio/grid"
)

var editDistanceCmd = &cobra.Command{
	Use:   "edit-distance V W",
	Short: "Levenshtein distance of two strings",
	Long: `Levenshtein distance of two strings

Every substitution, insertion and deletion costs 1.

`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)

		d, err := align.Levenshtein(args[0], args[1])
		checkError(err)

		checkError(withOutput(opt.OutFile, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, d)
			return err
		}))
	},
}

var lcsCmd = &cobra.Command{
	Use:   "lcs V W",
	Short: "longest common subsequence of two strings",
	Long: `longest common subsequence of two strings

With --backtrack the pointer table is printed below the subsequence, one
row per symbol of V.

`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		backtrack := getFlagBool(cmd, "backtrack")

		checkError(withOutput(opt.OutFile, func(w io.Writer) error {
			return writeLCS(w, args[0], args[1], backtrack)
		}))
	},
}

func writeLCS(w io.Writer, v, u string, backtrack bool) error {
	if _, err := fmt.Fprintln(w, grid.LCS(v, u)); err != nil {
		return err
	}
	if !backtrack {
		return nil
	}
	for _, row := range grid.LCSBacktrack(v, u)[1:] {
		for _, d := range row[1:] {
			if _, err := fmt.Fprint(w, d); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	RootCmd.AddCommand(editDistanceCmd)
	RootCmd.AddCommand(lcsCmd)

	lcsCmd.Flags().BoolP("backtrack", "b", false,
		formatFlagUsage("Print the backtrack pointers too."))
}
