package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
)

// Options contains the global flags
type Options struct {
	NumCPUs int
	Verbose bool

	LogFile  string
	Log2File bool

	OutFile string

	Config *Config
}

func getOptions(cmd *cobra.Command) *Options {
	cfg, err := loadConfig(getFlagString(cmd, "config"), cmd.Flags().Changed("config"))
	checkError(err)

	threads := getFlagNonNegativeInt(cmd, "threads")
	if !cmd.Flags().Changed("threads") && cfg.Threads > 0 {
		threads = cfg.Threads
	}
	if threads == 0 {
		threads = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(threads)

	logfile := getFlagString(cmd, "log")
	return &Options{
		NumCPUs: threads,
		Verbose: !getFlagBool(cmd, "quiet"),

		LogFile:  logfile,
		Log2File: logfile != "",

		OutFile: getFlagString(cmd, "out-file"),

		Config: cfg,
	}
}

func checkError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(-1)
	}
}

func isStdin(file string) bool {
	return file == "-"
}

func getFlagString(cmd *cobra.Command, flag string) string {
	value, err := cmd.Flags().GetString(flag)
	checkError(err)
	return value
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	value, err := cmd.Flags().GetBool(flag)
	checkError(err)
	return value
}

func getFlagInt(cmd *cobra.Command, flag string) int {
	value, err := cmd.Flags().GetInt(flag)
	checkError(err)
	return value
}

func getFlagNonNegativeInt(cmd *cobra.Command, flag string) int {
	value := getFlagInt(cmd, flag)
	if value < 0 {
		checkError(fmt.Errorf("value of flag --%s should be greater than or equal to 0", flag))
	}
	return value
}

func getFlagPositiveInt(cmd *cobra.Command, flag string) int {
	value := getFlagInt(cmd, flag)
	if value <= 0 {
		checkError(fmt.Errorf("value of flag --%s should be greater than 0", flag))
	}
	return value
}

// inputFile returns the only positional argument, or stdin.
func inputFile(args []string) string {
	switch len(args) {
	case 0:
		return "-"
	case 1:
		return args[0]
	}
	checkError(fmt.Errorf("at most one input file is accepted, %d given", len(args)))
	return ""
}

// withInput opens file (or stdin) and passes it to fn.
func withInput(file string, fn func(r io.Reader) error) error {
	fh, err := xopen.Ropen(file)
	if err != nil {
		return errors.Wrap(err, file)
	}
	defer fh.Close()

	return errors.Wrap(fn(fh), file)
}

// withOutput creates file (or stdout) and passes it to fn.
func withOutput(file string, fn func(w io.Writer) error) error {
	outfh, err := xopen.Wopen(file)
	if err != nil {
		return errors.Wrap(err, file)
	}
	if err = fn(outfh); err != nil {
		outfh.Close()
		return err
	}

	return outfh.Close()
}

func formatFlagUsage(s string) string {
	return "► " + s
}

// readWords returns the whitespace-separated fields of r.
func readWords(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return strings.Fields(string(data)), nil
}
