package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cognicore/yixiang/internal/textsrc"
	"github.com/cognicore/yixiang/pkg/yixiang"
	"github.com/cognicore/yixiang/pkg/yixiang/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Analyze a poem collection and store the report",
	Long: `Analyze reads a .txt, .html or .docx file of numbered poems, runs every
analysis pass, and prints the report summary. The report is saved to the
configured store; use --db to keep it across runs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		ctx := cmd.Context()
		engine, err := buildEngine(ctx, cfg)
		if err != nil {
			return err
		}
		defer engine.Close()

		r, err := analyzeFile(ctx, engine, textsrc.New(cfg.MaxFileSize), args[0])
		if err != nil {
			return err
		}
		return printReport(cmd.OutOrStdout(), r, asJSON)
	},
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "print the full report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func analyzeFile(ctx context.Context, engine *yixiang.Engine, reader *textsrc.Reader, path string) (report.Report, error) {
	doc, err := reader.ReadFile(path)
	if err != nil {
		return report.Report{}, err
	}
	return engine.Analyze(ctx, doc.Name, doc.Text)
}

func printReport(w io.Writer, r report.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Fprintf(w, "Report %s (%s)\n", r.ID, r.Source)
	for _, b := range r.Bullets {
		fmt.Fprintf(w, "  - %s\n", b)
	}

	if len(r.Stats.TopPairs) > 0 {
		fmt.Fprintln(w, "Top pairs:")
		for _, p := range r.Stats.TopPairs {
			fmt.Fprintf(w, "  %s + %s  %d  pmi=%.2f npmi=%.2f\n", p.Pair[0], p.Pair[1], p.Count, p.PMI, p.NPMI)
		}
	}
	return nil
}
