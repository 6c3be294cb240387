package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Skufu/healthoracle/internal/catalog"
	"github.com/Skufu/healthoracle/internal/predictor"
	"github.com/Skufu/healthoracle/internal/report"
	"github.com/Skufu/healthoracle/internal/view"
)

func newPredictCmd(cat *catalog.Catalog) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "predict [symptom-id...]",
		Short:   "Rank conditions matching the selected symptoms",
		Example: "  healthoracle predict fever cough\n  healthoracle predict --symptoms fever,chest_pain --json",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := selection(cmd, args)
			if err != nil {
				return err
			}
			preds := predictor.New(cat).Predict(ids)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(preds)
			}
			return view.WriteText(cmd.OutOrStdout(), cat.SelectSymptoms(ids), preds)
		},
	}
	cmd.Flags().StringSlice("symptoms", nil, "Comma separated symptom IDs")
	cmd.Flags().Bool("json", false, "Print predictions as JSON")
	return cmd
}

func newReportCmd(cat *catalog.Catalog) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [symptom-id...]",
		Short: "Write the prediction results to a PDF file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := selection(cmd, args)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create report: %w", err)
			}
			if err := writeReport(f, cat, ids); err != nil {
				f.Close()
				os.Remove(out)
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close report: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringSlice("symptoms", nil, "Comma separated symptom IDs")
	cmd.Flags().StringP("out", "o", "health-oracle-report.pdf", "Output PDF path")
	return cmd
}

// writeReport is swapped in tests to simulate a failed render.
var writeReport = func(w io.Writer, cat *catalog.Catalog, ids []string) error {
	return report.Write(w, cat.SelectSymptoms(ids), predictor.New(cat).Predict(ids), time.Now())
}
