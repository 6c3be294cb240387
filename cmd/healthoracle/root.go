package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Skufu/healthoracle/internal/catalog"
)

var errNoSelection = errors.New("select at least one symptom")

func newRootCmd(cat *catalog.Catalog) *cobra.Command {
	root := &cobra.Command{
		Use:           "healthoracle",
		Short:         "Symptom-based disease prediction",
		Long:          "Health Oracle ranks a small set of conditions by how well they match the symptoms you select.\nIt is not a diagnosis; always consult a healthcare professional.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSymptomsCmd(cat))
	root.AddCommand(newDiseasesCmd(cat))
	root.AddCommand(newPredictCmd(cat))
	root.AddCommand(newReportCmd(cat))
	return root
}

func Execute() error {
	return newRootCmd(catalog.Default()).Execute()
}

// selection merges positional IDs with the comma separated --symptoms flag.
func selection(cmd *cobra.Command, args []string) ([]string, error) {
	ids := append([]string(nil), args...)
	if flag, _ := cmd.Flags().GetStringSlice("symptoms"); len(flag) > 0 {
		ids = append(ids, flag...)
	}

	out := ids[:0]
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil, errNoSelection
	}
	return out, nil
}
