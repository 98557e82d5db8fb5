package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shenwei356/bio/seq"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/katalvlaran/lvbio/align"
	"github.com/katalvlaran/lvbio/textio"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] seqs.fasta [seqs2.fasta ...]",
	Short: "align consecutive pairs of sequences in parallel",
	Long: `align consecutive pairs of sequences in parallel

Records 1 and 2 form the first pair, records 3 and 4 the second, and so on;
records of all input files are concatenated first.

Output (TSV):
  1. id_v
  2. id_w
  3. mode
  4. score
  5. identity,  fraction of identical columns
  6. start_v,   0-based
  7. end_v,     exclusive
  8. start_w
  9. end_w
  10-11. aligned_v, aligned_w (with -a/--all)

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

		if len(args) == 0 {
			checkError(fmt.Errorf("at least one sequence file needed"))
		}
		cfg, err := alignSection(cmd, opt.Config).alignConfig()
		checkError(err)

		// ---------------------------------------------------------------
		// read pairs

		var recs []textio.Record
		for _, file := range args {
			r, err := textio.ReadSequences(file)
			checkError(err)
			recs = append(recs, r...)
		}
		pairs, err := pairRecords(recs)
		checkError(err)
		if opt.Verbose {
			log.Infof("%d pairs read from %d file(s), aligning with %d threads", len(pairs), len(args), opt.NumCPUs)
		}

		// ---------------------------------------------------------------
		// align

		var pbs *mpb.Progress
		var bar *mpb.Bar
		var onDone func(int)
		if opt.Verbose {
			pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
			bar = pbs.AddBar(int64(len(pairs)),
				mpb.PrependDecorators(
					decor.Name("aligned pairs: ", decor.WC{W: len("aligned pairs: "), C: decor.DindentRight}),
					decor.Name("", decor.WCSyncSpaceR),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
					decor.AverageETA(decor.ET_STYLE_GO),
					decor.OnComplete(decor.Name(""), ". done"),
				),
			)
			onDone = func(int) { bar.Increment() }
		}

		results, err := align.Batch(context.Background(), pairs, cfg, opt.NumCPUs, onDone)
		if opt.Verbose {
			if err != nil {
				bar.Abort(false)
			}
			pbs.Wait()
		}
		checkError(err)

		withAln := getFlagBool(cmd, "all")
		checkError(withOutput(opt.OutFile, func(out io.Writer) error {
			return writeBatch(out, recs, results, withAln)
		}))
	},
}

// pairRecords groups records two by two.
func pairRecords(recs []textio.Record) ([]align.Pair, error) {
	if len(recs)%2 != 0 {
		return nil, fmt.Errorf("an even number of sequences is needed, %d given", len(recs))
	}
	pairs := make([]align.Pair, 0, len(recs)/2)
	for i := 0; i < len(recs); i += 2 {
		pairs = append(pairs, align.Pair{
			ID: recs[i].ID + "/" + recs[i+1].ID,
			V:  recs[i].Seq,
			W:  recs[i+1].Seq,
		})
	}
	return pairs, nil
}

// writeBatch writes one TSV row per result; recs are the paired records
// in the order given to pairRecords.
func writeBatch(w io.Writer, recs []textio.Record, results []align.Result, withAln bool) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("id_v\tid_w\tmode\tscore\tidentity\tstart_v\tend_v\tstart_w\tend_w")
	if withAln {
		bw.WriteString("\taligned_v\taligned_w")
	}
	bw.WriteByte('\n')

	for i, r := range results {
		fmt.Fprintf(bw, "%s\t%s\t%s\t%d\t%.4f\t%d\t%d\t%d\t%d",
			recs[2*i].ID, recs[2*i+1].ID, r.Mode, r.Score, r.Identity(), r.StartV, r.EndV, r.StartW, r.EndW)
		if withAln {
			fmt.Fprintf(bw, "\t%s\t%s", r.AlignedV, r.AlignedW)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func init() {
	RootCmd.AddCommand(batchCmd)
	addAlignFlags(batchCmd)

	batchCmd.Flags().BoolP("all", "a", false,
		formatFlagUsage("Output the aligned sequences too."))
}
