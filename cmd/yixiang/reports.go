package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cognicore/yixiang/pkg/yixiang"
	"github.com/cognicore/yixiang/pkg/yixiang/maintenance"
	"github.com/cognicore/yixiang/pkg/yixiang/report"
	"github.com/cognicore/yixiang/pkg/yixiang/store"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Manage stored reports",
	Long: `Reports operates on the report database given by --db (or db_path in
the config file). Without a database the store is empty.`,
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored reports, newest first",
	Args:  cobra.NoArgs,
	RunE: withEngine(func(cmd *cobra.Command, engine *yixiang.Engine, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		list, err := engine.ListReports(cmd.Context(), limit)
		if err != nil {
			return err
		}
		printSummaries(cmd.OutOrStdout(), list)
		return nil
	}),
}

var reportsShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print one stored report",
	Args:  cobra.ExactArgs(1),
	RunE: withEngine(func(cmd *cobra.Command, engine *yixiang.Engine, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		r, err := engine.GetReport(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printReport(cmd.OutOrStdout(), r, asJSON)
	}),
}

var reportsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a stored report",
	Args:  cobra.ExactArgs(1),
	RunE: withEngine(func(cmd *cobra.Command, engine *yixiang.Engine, args []string) error {
		if err := engine.DeleteReport(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	}),
}

var reportsRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Re-analyze every stored report with the current lexicon",
	Args:  cobra.NoArgs,
	RunE: withEngine(func(cmd *cobra.Command, engine *yixiang.Engine, args []string) error {
		cleaner := &maintenance.Cleaner{Store: engine.Store(), Rebuilder: engine}
		res, err := cleaner.Rebuild(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rebuilt %d of %d reports (%d errors)\n", res.Updated, res.Processed, res.Errors)
		return nil
	}),
}

var reportsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the newest reports",
	Args:  cobra.NoArgs,
	RunE: withEngine(func(cmd *cobra.Command, engine *yixiang.Engine, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")
		cleaner := &maintenance.Cleaner{Store: engine.Store()}
		res, err := cleaner.Prune(cmd.Context(), keep)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d of %d reports (%d errors)\n", res.Removed, res.Processed, res.Errors)
		return nil
	}),
}

func init() {
	reportsPruneCmd.Flags().Int("keep", store.DefaultListLimit, "number of newest reports to keep")
	reportsListCmd.Flags().Int("limit", store.DefaultListLimit, "maximum number of reports")
	reportsShowCmd.Flags().Bool("json", false, "print the full report as JSON")

	reportsCmd.AddCommand(reportsListCmd, reportsShowCmd, reportsDeleteCmd, reportsRebuildCmd, reportsPruneCmd)
	rootCmd.AddCommand(reportsCmd)
}

// withEngine loads settings and opens an engine around fn.
func withEngine(fn func(*cobra.Command, *yixiang.Engine, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		engine, err := buildEngine(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer engine.Close()

		return fn(cmd, engine, args)
	}
}

func printSummaries(w io.Writer, list []report.Summary) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No reports")
		return
	}
	for _, s := range list {
		fmt.Fprintf(w, "%s  %s  %-24s %d poems\n", s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Source, s.PoemCount)
	}
}
