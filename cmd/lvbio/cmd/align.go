package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/shenwei356/bio/seq"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbio/align"
	"github.com/katalvlaran/lvbio/textio"
)

var alignCmd = &cobra.Command{
	Use:   "align [flags] { V W | -i seqs.fasta }",
	Short: "align two sequences",
	Long: `align two sequences

Modes:
  global    both sequences end to end
  local     best-scoring pair of substrings
  fitting   all of W against a substring of V
  overlap   a suffix of V against a prefix of W

Output:
  1. score
  2. aligned V
  3. aligned W
  4. with --show-range, the 0-based half-open ranges of V and W used

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		seq.ValidateSeq = false

		var fhLog io.Closer
		if opt.Log2File {
			fhLog = addLog(opt.LogFile, opt.Verbose)
		}
		timeStart := time.Now()
		defer func() {
			if opt.Verbose || opt.Log2File {
				log.Infof("elapsed time: %s", time.Since(timeStart))
			}
			if opt.Log2File {
				fhLog.Close()
			}
		}()

		cfg, err := alignSection(cmd, opt.Config).alignConfig()
		checkError(err)

		v, w := pairFromArgs(args, getFlagString(cmd, "in-file"))
		if opt.Verbose {
			log.Infof("%s alignment of %d x %d symbols", cfg.Mode, len(v), len(w))
		}

		res, err := cfg.Align(v, w)
		checkError(err)

		showRange := getFlagBool(cmd, "show-range")
		checkError(withOutput(opt.OutFile, func(out io.Writer) error {
			return writeAlignment(out, res, showRange)
		}))
	},
}

// pairFromArgs returns the two sequences given as arguments or as the
// first two records of file.
func pairFromArgs(args []string, file string) (string, string) {
	if file == "" {
		if len(args) != 2 {
			checkError(fmt.Errorf("two sequences or -i/--in-file needed, %d arguments given", len(args)))
		}
		return args[0], args[1]
	}
	recs, err := textio.ReadSequences(file)
	checkError(err)
	if len(recs) < 2 {
		checkError(fmt.Errorf("%s: two sequences needed, %d found", file, len(recs)))
	}
	if len(recs) > 2 {
		log.Warningf("%s: %d sequences found, only the first two are aligned", file, len(recs))
	}
	return recs[0].Seq, recs[1].Seq
}

func writeAlignment(w io.Writer, res align.Result, showRange bool) error {
	if _, err := fmt.Fprintln(w, res); err != nil {
		return err
	}
	if showRange {
		_, err := fmt.Fprintf(w, "V[%d:%d] W[%d:%d]\n", res.StartV, res.EndV, res.StartW, res.EndW)
		return err
	}
	return nil
}

// addAlignFlags registers the flags backed by AlignSection.
func addAlignFlags(c *cobra.Command) {
	c.Flags().StringP("mode", "m", "global",
		formatFlagUsage(`Alignment mode: "global", "local", "fitting" or "overlap".`))
	c.Flags().StringP("matrix", "M", "blosum62",
		formatFlagUsage(`Substitution scores: "blosum62", "pam250", "unit" or "constant".`))
	c.Flags().StringP("matrix-file", "", "",
		formatFlagUsage("Custom substitution matrix in NCBI layout. Overrides -M/--matrix."))
	c.Flags().IntP("match", "", 1,
		formatFlagUsage(`Match score for "-M constant".`))
	c.Flags().IntP("mismatch", "", -1,
		formatFlagUsage(`Mismatch score for "-M constant".`))
	c.Flags().IntP("gap-open", "g", 5,
		formatFlagUsage("Cost of the first position of a gap."))
	c.Flags().IntP("gap-extend", "e", 5,
		formatFlagUsage("Cost of every further position of a gap."))
}

// alignSection starts from the configuration file and applies every flag
// set on the command line.
func alignSection(cmd *cobra.Command, cfg *Config) AlignSection {
	s := cfg.Align
	changed := cmd.Flags().Changed
	if changed("mode") {
		s.Mode = getFlagString(cmd, "mode")
	}
	if changed("matrix") {
		s.Matrix = getFlagString(cmd, "matrix")
	}
	if changed("matrix-file") {
		s.MatrixFile = getFlagString(cmd, "matrix-file")
	}
	if changed("match") {
		s.Match = getFlagInt(cmd, "match")
	}
	if changed("mismatch") {
		s.Mismatch = getFlagInt(cmd, "mismatch")
	}
	if changed("gap-open") {
		s.GapOpen = getFlagInt(cmd, "gap-open")
	}
	if changed("gap-extend") {
		s.GapExtend = getFlagInt(cmd, "gap-extend")
	}
	return s
}

func init() {
	RootCmd.AddCommand(alignCmd)
	addAlignFlags(alignCmd)

	alignCmd.Flags().StringP("in-file", "i", "",
		formatFlagUsage("FASTA/FASTQ file whose first two records are aligned."))
	alignCmd.Flags().BoolP("show-range", "r", false,
		formatFlagUsage("Also print the aligned ranges of V and W."))
}
