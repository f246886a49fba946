package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cognicore/yixiang/internal/textsrc"
	"github.com/cognicore/yixiang/pkg/yixiang"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "List the poems found in a file with their imagery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		highlight, _ := cmd.Flags().GetBool("highlight")

		engine, err := buildEngine(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer engine.Close()

		doc, err := textsrc.New(cfg.MaxFileSize).ReadFile(args[0])
		if err != nil {
			return err
		}
		printPoems(cmd.OutOrStdout(), engine, doc.Text, highlight)
		return nil
	},
}

func init() {
	parseCmd.Flags().Bool("highlight", false, "print each poem with imagery marked as 【term】")
	rootCmd.AddCommand(parseCmd)
}

func printPoems(w io.Writer, engine *yixiang.Engine, text string, highlight bool) {
	poems := engine.ParsePoems(text)
	if len(poems) == 0 {
		fmt.Fprintln(w, "No numbered poems found")
		return
	}

	for i, p := range poems {
		fmt.Fprintf(w, "%d. %s\n", i+1, p.Title)

		counts := make([]string, len(p.Imagery))
		for j, ic := range p.Imagery {
			counts[j] = fmt.Sprintf("%s×%d", ic.Word, ic.Count)
		}
		fmt.Fprintf(w, "  imagery: %s\n", strings.Join(counts, " "))

		if highlight {
			for _, line := range strings.Split(engine.Highlight(p.Content, "【", "】"), "\n") {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
	}
}
