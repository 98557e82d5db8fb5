package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/shenwei356/go-logging"
)

var log *logging.Logger

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{level:.4s}] %{message}`,
)

func init() {
	logging.SetBackend(backendFor(colorable.NewColorableStderr()))
	log = logging.MustGetLogger("lvbio")
}

func backendFor(w io.Writer) logging.Backend {
	return logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), logFormat)
}

// addLog copies log messages to file; stderr keeps them only when verbose.
func addLog(file string, verbose bool) *os.File {
	w, err := os.Create(file)
	checkError(err)

	if verbose {
		logging.SetBackend(backendFor(colorable.NewColorableStderr()), backendFor(w))
	} else {
		logging.SetBackend(backendFor(w))
	}

	return w
}
