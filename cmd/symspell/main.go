// Command symspell builds a Symmetric Delete spelling-correction index
// from dictionary and corpus files and serves lookups from the command
// line or over HTTP.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/lexicheck/symspell/internal/config"
	"github.com/lexicheck/symspell/internal/httpapi"
	"github.com/lexicheck/symspell/internal/obslog"
	"github.com/lexicheck/symspell/internal/symspell"
)

var (
	dictGlobs   []string
	corpusGlobs []string
	termCol     int
	countCol    int

	maxDictionaryEditDistance int
	prefixLength              int
	countThreshold            uint64

	configFile string
	pgQuery    string
	pgMinCount int

	logLevel string
	logJSON  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "symspell",
		Short: "Symmetric Delete spelling correction over a frequency-weighted vocabulary",
	}

	rootCmd.PersistentFlags().StringSliceVar(&dictGlobs, "dict", nil, "glob pattern(s) for LoadDictionary-format files")
	rootCmd.PersistentFlags().StringSliceVar(&corpusGlobs, "corpus", nil, "glob pattern(s) for free-text corpus files")
	rootCmd.PersistentFlags().IntVar(&termCol, "term-col", 0, "zero-indexed term column in dictionary files")
	rootCmd.PersistentFlags().IntVar(&countCol, "count-col", 1, "zero-indexed count column in dictionary files")
	rootCmd.PersistentFlags().IntVar(&maxDictionaryEditDistance, "max-dictionary-edit-distance", 2, "maximum edit distance the index supports")
	rootCmd.PersistentFlags().IntVar(&prefixLength, "prefix-length", 7, "leading runes of a term used for delete-set generation")
	rootCmd.PersistentFlags().Uint64Var(&countThreshold, "count-threshold", 1, "minimum count for a term to be indexed")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (overrides the tuning flags above, see internal/config)")
	rootCmd.PersistentFlags().StringVar(&pgQuery, "pg-query", "", "if set, also load terms from Postgres via this (term, count) query")
	rootCmd.PersistentFlags().IntVar(&pgMinCount, "pg-min-count", 1, "$1 argument bound into --pg-query, typically a HAVING COUNT(*) >= $1 floor")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, or error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON instead of console format")

	rootCmd.AddCommand(createBuildCmd())
	rootCmd.AddCommand(createLookupCmd())
	rootCmd.AddCommand(createCorrectCmd())
	rootCmd.AddCommand(createServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig resolves tuning parameters, preferring a --config YAML file
// over the individual flags when one is given.
func resolveConfig() (symspell.Config, error) {
	if configFile == "" {
		cfg := symspell.DefaultConfig()
		cfg.MaxDictionaryEditDistance = maxDictionaryEditDistance
		cfg.PrefixLength = prefixLength
		cfg.CountThreshold = countThreshold
		return cfg, nil
	}

	f, err := config.LoadConfig(configFile)
	if err != nil {
		return symspell.Config{}, err
	}
	dictGlobs = append(dictGlobs, f.DictionaryPaths...)
	corpusGlobs = append(corpusGlobs, f.CorpusPaths...)
	return f.Symspell(), nil
}

// buildCorrector expands every --dict and --corpus glob, optionally queries
// Postgres via --pg-query, and ingests every matched source into a fresh
// Corrector.
func buildCorrector() (*symspell.Corrector, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}

	var sources []symspell.TermSource

	for _, pattern := range dictGlobs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding dict glob %q: %w", pattern, err)
		}
		for _, path := range matches {
			sources = append(sources, symspell.FileDictionarySource{Path: path, TermCol: termCol, CountCol: countCol})
		}
	}

	for _, pattern := range corpusGlobs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding corpus glob %q: %w", pattern, err)
		}
		for _, path := range matches {
			sources = append(sources, symspell.FileCorpusSource{Path: path})
		}
	}

	if pgQuery != "" {
		pgDB, err := config.DefaultPostgres().Open()
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres for --pg-query: %w", err)
		}
		sources = append(sources, symspell.NewPostgresTermSource(pgDB, pgQuery, pgMinCount))
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no dictionary, corpus, or --pg-query sources configured")
	}

	return symspell.BuildDictionary(cfg, sources...)
}

func createBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the index from --dict/--corpus sources and print statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			corrector, err := buildCorrector()
			if err != nil {
				return err
			}
			stats := corrector.Stats()
			fmt.Printf("terms:        %d\n", stats.TermCount)
			fmt.Printf("entries:      %d\n", stats.EntryCount)
			fmt.Printf("total count:  %d\n", stats.TotalCount)
			fmt.Printf("max count:    %d\n", stats.MaxCount)
			fmt.Printf("skipped:      %d\n", stats.SkippedLines)
			fmt.Printf("build time:   %s\n", stats.BuildTime)
			return nil
		},
	}
}

func createLookupCmd() *cobra.Command {
	var verbosityFlag string
	var maxEditDistance int

	cmd := &cobra.Command{
		Use:   "lookup [term]",
		Short: "Look up spelling suggestions for a single term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corrector, err := buildCorrector()
			if err != nil {
				return err
			}
			verbosity, err := symspell.ParseVerbosity(verbosityFlag)
			if err != nil {
				return err
			}
			if maxEditDistance < 0 {
				maxEditDistance = corrector.MaxDictionaryEditDistance()
			}

			suggestions, err := corrector.Lookup(args[0], verbosity, maxEditDistance)
			if err != nil {
				return err
			}
			printSuggestionTable(suggestions)
			return nil
		},
	}
	cmd.Flags().StringVar(&verbosityFlag, "verbosity", "top", "top, closest, or all")
	cmd.Flags().IntVar(&maxEditDistance, "max-edit-distance", -1, "defaults to the index's max-dictionary-edit-distance")
	return cmd
}

func createCorrectCmd() *cobra.Command {
	var maxEditDistance int

	cmd := &cobra.Command{
		Use:   "correct [sentence]",
		Short: "Correct a multi-word sentence via split/merge compound lookup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corrector, err := buildCorrector()
			if err != nil {
				return err
			}
			if maxEditDistance < 0 {
				maxEditDistance = corrector.MaxDictionaryEditDistance()
			}

			result, err := corrector.LookupCompound(args[0], maxEditDistance, nil)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", result.Text)
			fmt.Printf("distance: %d  score: %.4f\n", result.Distance, result.Score)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxEditDistance, "max-edit-distance", -1, "defaults to the index's max-dictionary-edit-distance")
	return cmd
}

func createServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the index and serve lookups over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := obslog.Init(logLevel, logJSON); err != nil {
				return err
			}
			defer obslog.Sync()

			corrector, err := buildCorrector()
			if err != nil {
				return err
			}

			server := httpapi.NewServer(addr, corrector, obslog.L())
			return server.Start()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	return cmd
}

// printSuggestionTable renders suggestions as an aligned table, sizing
// columns with runewidth so accented and wide characters still line up.
func printSuggestionTable(suggestions []symspell.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Println("(no suggestions)")
		return
	}

	termWidth := runewidth.StringWidth("term")
	for _, s := range suggestions {
		if w := runewidth.StringWidth(s.Term); w > termWidth {
			termWidth = w
		}
	}

	header := fmt.Sprintf("%s  %8s  %10s", runewidth.FillRight("term", termWidth), "distance", "count")
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", runewidth.StringWidth(header)))
	for _, s := range suggestions {
		fmt.Printf("%s  %8d  %10d\n", runewidth.FillRight(s.Term, termWidth), s.Distance, s.Count)
	}
}
