package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// VERSION of lvbio
const VERSION = "0.3.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "lvbio",
	Short: "exact alignment and DAG algorithms for biological strings",
	Long: fmt.Sprintf(`lvbio: exact alignment and DAG algorithms for biological strings

Version: v%s

Commands fall into three groups:
  alignment   align, batch, edit-distance, lcs
  graphs      longest-path, toposort, overlap-graph, debruijn
  grids       tourist, median

Defaults for the alignment flags may be kept in a TOML file, by default
~/.lvbio.toml; flags given on the command line always win.
`, VERSION),
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().IntP("threads", "j", runtime.NumCPU(),
		formatFlagUsage("Number of CPU cores to use. By default, it uses all available cores."))
	RootCmd.PersistentFlags().BoolP("quiet", "", false,
		formatFlagUsage("Do not print any verbose information. But you can write them to a file with --log."))
	RootCmd.PersistentFlags().StringP("log", "", "",
		formatFlagUsage("Log file."))
	RootCmd.PersistentFlags().StringP("config", "", defaultConfigFile,
		formatFlagUsage("TOML file with default values for the alignment flags. A missing default file is ignored."))
	RootCmd.PersistentFlags().StringP("out-file", "o", "-",
		formatFlagUsage(`Output file ("-" for stdout). A ".gz" suffix enables gzip compression.`))

	RootCmd.CompletionOptions.DisableDefaultCmd = true
	RootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
