package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/source"
)

// ErrInvalid is returned when a document has issues. The issues themselves
// are already printed.
var ErrInvalid = errors.New("document has issues")

func newValidateCmd(opts *options) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "validate FILE|-",
		Short: "Decode and validate a document, printing every issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(cmd, opts, kind, args[0])
			if err != nil {
				return err
			}
			if len(doc.issues) > 0 {
				printIssues(cmd.OutOrStdout(), doc.issues)
				return ErrInvalid
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Document kind (see 'mibig-check kinds')")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

// document is one input after reading, decoding and validation. value is nil
// when the tree could not be decoded.
type document struct {
	tree   any
	value  entity
	issues mibig.Issues
}

// load reads name ("-" for stdin) and runs it through the decoder for kind.
// Structural and validation problems end up in document.issues; only I/O and
// usage problems are returned as errors.
func load(cmd *cobra.Command, opts *options, kind, name string) (*document, error) {
	log := zerolog.Ctx(cmd.Context())
	dec, err := lookupKind(kind)
	if err != nil {
		return nil, err
	}
	vc, err := opts.context()
	if err != nil {
		return nil, err
	}
	format, err := opts.inputFormat(name)
	if err != nil {
		return nil, err
	}

	r, closeFn, err := open(cmd, name)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	doc := &document{}
	if format == "yaml" {
		doc.tree, err = source.ReadYAML(r)
	} else {
		doc.tree, err = source.ReadJSONReader(r)
	}
	if err != nil {
		iss, ok := mibig.AsIssues(err)
		if !ok {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		doc.issues = append(doc.issues, iss...)
		if doc.tree == nil {
			return doc, nil
		}
	}
	log.Debug().Str("file", name).Str("format", format).Str("kind", kind).Msg("document read")

	v, err := dec(doc.tree)
	if err != nil {
		iss, ok := mibig.AsIssues(err)
		if !ok {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		doc.issues = append(doc.issues, iss...)
		return doc, nil
	}
	doc.value = v
	doc.issues = append(doc.issues, v.Validate(vc)...)
	log.Debug().Int("issues", len(doc.issues)).Stringer("quality", vc.GetQuality()).Msg("document validated")
	return doc, nil
}

func open(cmd *cobra.Command, name string) (io.Reader, func(), error) {
	if name == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func printIssues(w io.Writer, iss mibig.Issues) {
	for _, it := range iss {
		fmt.Fprintln(w, it.String())
	}
}
