package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/shenwei356/util/pathutil"

	"github.com/katalvlaran/lvbio/align"
	"github.com/katalvlaran/lvbio/scoring"
)

const defaultConfigFile = "~/.lvbio.toml"

// Config is the content of the TOML configuration file.
//
//	threads = 4
//
//	[align]
//	mode = "local"
//	matrix = "pam250"
//	gap-open = 5
//	gap-extend = 5
type Config struct {
	Threads int          `toml:"threads"`
	Align   AlignSection `toml:"align"`
}

// AlignSection holds defaults for the alignment flags.
//
// Matrix is "blosum62", "pam250", "unit" or "constant"; "constant" scores
// with Match and Mismatch. MatrixFile, when set, takes precedence and is
// read with scoring.ParseMatrix.
type AlignSection struct {
	Mode       string `toml:"mode"`
	Matrix     string `toml:"matrix"`
	MatrixFile string `toml:"matrix-file"`
	Match      int    `toml:"match"`
	Mismatch   int    `toml:"mismatch"`
	GapOpen    int    `toml:"gap-open"`
	GapExtend  int    `toml:"gap-extend"`
}

func defaultConfig() *Config {
	return &Config{
		Align: AlignSection{
			Mode:      align.Global.String(),
			Matrix:    "blosum62",
			Match:     1,
			Mismatch:  -1,
			GapOpen:   5,
			GapExtend: 5,
		},
	}
}

// loadConfig reads file over the defaults. A missing file is an error
// only when required is set.
func loadConfig(file string, required bool) (*Config, error) {
	cfg := defaultConfig()
	if file == "" {
		return cfg, nil
	}

	path, err := homedir.Expand(file)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}
	ok, err := pathutil.Exists(path)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if !ok {
		if required {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	defer fh.Close()

	dec := toml.NewDecoder(fh)
	dec.DisallowUnknownFields()
	if err = dec.Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}

// scorer resolves the substitution scorer of s.
func (s AlignSection) scorer() (scoring.Scorer, error) {
	if s.MatrixFile != "" {
		var m *scoring.Matrix
		err := withInput(s.MatrixFile, func(r io.Reader) (err error) {
			m, err = scoring.ParseMatrix(s.MatrixFile, r)
			return err
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	if strings.EqualFold(s.Matrix, "constant") {
		return scoring.Constant{Match: s.Match, Mismatch: s.Mismatch}, nil
	}

	return scoring.ByName(s.Matrix)
}

// alignConfig turns s into an align.Config, checking every field.
func (s AlignSection) alignConfig() (align.Config, error) {
	mode, err := align.ParseMode(s.Mode)
	if err != nil {
		return align.Config{}, err
	}
	sc, err := s.scorer()
	if err != nil {
		return align.Config{}, err
	}
	gap := scoring.Gap{Open: s.GapOpen, Extend: s.GapExtend}
	if err = gap.Validate(); err != nil {
		return align.Config{}, err
	}

	return align.Config{Mode: mode, Scorer: sc, Gap: gap}, nil
}
