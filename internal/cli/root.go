// Package cli implements the mibig-check commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	mibig "github.com/kblin/go-mibig"
)

const (
	envQuality = "MIBIG_QUALITY"
	envFormat  = "MIBIG_FORMAT"
)

// RootCmd is the top-level command.
var RootCmd = NewRootCmd()

type options struct {
	quality string
	format  string
	genes   []string
	seqLen  int
	verbose bool
	envFile string
}

// NewRootCmd builds a fresh command tree. Tests use it to avoid sharing flag
// state between runs.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "mibig-check",
		Short:         "Validate and round-trip MIBiG annotation documents",
		Long:          "Decodes MIBiG annotation fragments from JSON or YAML, validates them and re-encodes them to canonical JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.quality, "quality", "q", "", "Quality level: questionable, low, medium or high (default: $"+envQuality+")")
	pf.StringVarP(&opts.format, "format", "f", "", "Input format: json or yaml (default: $"+envFormat+", then file extension)")
	pf.StringSliceVar(&opts.genes, "genes", nil, "Gene ids present in the record; enables record-aware gene checks")
	pf.IntVar(&opts.seqLen, "seq-len", 0, "Record sequence length; enables record-aware location checks")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")
	pf.StringVar(&opts.envFile, "env-file", ".env", "Environment file to load defaults from")

	root.AddCommand(newValidateCmd(opts), newRoundtripCmd(opts), newKindsCmd())
	return root
}

// setup loads the environment defaults and attaches the logger to the command
// context.
func (o *options) setup(cmd *cobra.Command) error {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", o.envFile, err)
		}
	}
	if o.quality == "" {
		o.quality = os.Getenv(envQuality)
	}
	if o.format == "" {
		o.format = os.Getenv(envFormat)
	}

	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	cmd.SetContext(logger.WithContext(cmd.Context()))
	logger.Debug().Str("quality", o.quality).Str("format", o.format).Msg("options resolved")
	return nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(level).
		With().Timestamp().Logger()
}

// context builds the validation context from the resolved options.
func (o *options) context() (*mibig.Context, error) {
	q, err := mibig.ParseQualityLevel(o.quality)
	if err != nil {
		return nil, err
	}
	vc := mibig.NewContext().WithQuality(q)
	if len(o.genes) > 0 || o.seqLen > 0 {
		vc = vc.WithRecord(newGeneRecord(o.seqLen, o.genes))
	}
	return vc, nil
}

// inputFormat picks the decoder for name: the explicit format wins, then the
// file extension, then JSON.
func (o *options) inputFormat(name string) (string, error) {
	f := strings.ToLower(o.format)
	switch f {
	case "json", "yaml":
		return f, nil
	case "yml":
		return "yaml", nil
	case "":
	default:
		return "", fmt.Errorf("unknown format %q", o.format)
	}
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return "yaml", nil
	}
	return "json", nil
}
