// Package main is a command-line client for the paper search dispatcher. It
// runs the same validation, upstream calls and normalization as the API.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"research_hub_go_backend/internal/config"
	apperrors "research_hub_go_backend/internal/errors"
	"research_hub_go_backend/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "research-hub-search [flags] <query words...>",
	Short: "Search arXiv or bioRxiv for papers",
	Long: `research-hub-search sends one query to arXiv (Atom API) or bioRxiv (search
page) and prints up to 10 normalized results as a table, JSON, or BibTeX.

Configuration comes from the environment (and .env), the same variables the
API server reads; --timeout overrides UPSTREAM_TIMEOUT.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

func init() {
	rootCmd.Flags().String("source", services.SourceArxiv, "repository to search: arxiv or biorxiv")
	rootCmd.Flags().String("format", formatTable, "output format: table, json, or bibtex")
	rootCmd.Flags().Duration("timeout", 0, "upstream request timeout (overrides UPSTREAM_TIMEOUT)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := v.BindPFlag("upstream_timeout", cmd.Flags().Lookup("timeout")); err != nil {
		return err
	}
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return err
	}
	config.ConfigureLogger(cfg)

	source, _ := cmd.Flags().GetString("source")
	format, _ := cmd.Flags().GetString("format")
	if !validFormat(format) {
		return fmt.Errorf("unknown format %q: use table, json, or bibtex", format)
	}

	searchService := services.NewSearchServiceFromConfig(cfg)
	results, err := searchService.Search(cmd.Context(), strings.Join(args, " "), source)
	if err != nil {
		return err
	}

	return writeResults(cmd.OutOrStdout(), results, format)
}

// Exit codes: 2 for a rejected query or source, 1 for anything else.
func exitCode(err error) int {
	if apperrors.IsValidation(err) {
		return 2
	}
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}
