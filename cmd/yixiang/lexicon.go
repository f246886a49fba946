package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cognicore/yixiang/pkg/yixiang/config"
	"github.com/cognicore/yixiang/pkg/yixiang/lexicon"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Show the active imagery lexicon and taxonomy",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		// the store is not needed here
		loader := config.NewLoader(cfg)
		loader.DBPath = ""
		comp, err := loader.Load(cmd.Context())
		if err != nil {
			return err
		}
		defer comp.Close()

		return printLexicon(cmd.OutOrStdout(), comp.Lexicon, asJSON)
	},
}

func init() {
	lexiconCmd.Flags().Bool("json", false, "print the lexicon as JSON")
	rootCmd.AddCommand(lexiconCmd)
}

func printLexicon(w io.Writer, lex *lexicon.Lexicon, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"stats":       lex.Stats(),
			"terms":       lex.Terms(),
			"taxonomy":    lex.Taxonomy(),
			"commonWords": lex.CommonWords(),
		})
	}

	st := lex.Stats()
	fmt.Fprintf(w, "%d terms, %d main categories, %d subcategories, %d uncategorized, %d common words\n",
		st.Terms, st.MainCategories, st.Subcategories, st.Uncategorized, st.CommonWords)

	for _, mc := range lex.Taxonomy() {
		fmt.Fprintln(w, mc.Name)
		for _, sc := range mc.Subcategories {
			fmt.Fprintf(w, "  %s: %s\n", sc.Name, strings.Join(sc.Terms, " "))
		}
	}
	return nil
}
