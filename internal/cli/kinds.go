package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	mibig "github.com/kblin/go-mibig"
	"github.com/kblin/go-mibig/biosynthesis/saccharide"
	"github.com/kblin/go-mibig/common"
)

// entity is what every decodable kind produces.
type entity interface {
	mibig.Validator
	ToJSON() any
}

type decoder func(raw any) (entity, error)

func adapt[T entity](dec func(any) (T, error)) decoder {
	return func(raw any) (entity, error) {
		v, err := dec(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

var kinds = map[string]decoder{
	"changelog":           adapt(common.DecodeChangeLog),
	"release":             adapt(common.DecodeRelease),
	"location":            adapt(common.DecodeLocation),
	"citation":            adapt(common.DecodeCitation),
	"gene":                adapt(common.DecodeGeneID),
	"smiles":              adapt(common.DecodeSmiles),
	"submitter":           adapt(common.DecodeSubmitterID),
	"saccharide":          adapt(saccharide.Decode),
	"glycosyltransferase": adapt(saccharide.DecodeGlycosyltransferase),
	"subcluster":          adapt(saccharide.DecodeSubcluster),
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func lookupKind(name string) (decoder, error) {
	dec, ok := kinds[name]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q (known: %v)", name, kindNames())
	}
	return dec, nil
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the document kinds understood by --kind",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, k := range kindNames() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}
