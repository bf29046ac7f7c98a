package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kblin/go-mibig/source"
)

// ErrMismatch is returned when the re-encoded document differs from the
// input.
var ErrMismatch = errors.New("re-encoded document differs from input")

func newRoundtripCmd(opts *options) *cobra.Command {
	var kind string
	var quiet bool
	cmd := &cobra.Command{
		Use:   "roundtrip FILE|-",
		Short: "Decode, validate and re-encode a document as canonical JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.Ctx(cmd.Context())
			doc, err := load(cmd, opts, kind, args[0])
			if err != nil {
				return err
			}
			if len(doc.issues) > 0 {
				printIssues(cmd.OutOrStdout(), doc.issues)
				return ErrInvalid
			}

			out := doc.value.ToJSON()
			eq, err := source.Equal(doc.tree, out)
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			if !quiet {
				b, err := source.Marshal(out)
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
			}
			if !eq {
				log.Warn().Str("file", args[0]).Str("kind", kind).Msg("round trip changed the document")
				return ErrMismatch
			}
			log.Debug().Str("file", args[0]).Msg("round trip stable")
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Document kind (see 'mibig-check kinds')")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Only report, do not print the re-encoded document")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}
