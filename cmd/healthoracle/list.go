package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Skufu/healthoracle/internal/catalog"
	"github.com/Skufu/healthoracle/internal/view"
)

func newSymptomsCmd(cat *catalog.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "symptoms",
		Short: "List the symptoms you can select",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
			for _, s := range cat.Symptoms() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Name, s.Description)
			}
			return tw.Flush()
		},
	}
}

func newDiseasesCmd(cat *catalog.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "diseases",
		Short: "List the conditions the checker knows about",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSEVERITY\tSYMPTOMS")
			for _, d := range cat.Diseases() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.Name, view.SeverityLabel(d.Severity), strings.Join(d.Symptoms, ", "))
			}
			return tw.Flush()
		},
	}
}
