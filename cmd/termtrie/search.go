package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	termtrie "github.com/sarthakjha889/go-termtrie"
)

func newSearchCommand() *cobra.Command {
	var (
		configPath string
		termsPath  string
		naive      bool
		hideZero   bool
	)
	cmd := &cobra.Command{
		Use:   "search [text file...]",
		Short: "Search text files for a line-separated list of terms",
		Long: `Search reads a term list (one term per line, terms may be multiple
words), builds a word-keyed trie from it and scans each text file once,
printing a frequency table of term occurrences.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if termsPath != "" {
				cfg.TermsFile = termsPath
			}
			if len(args) > 0 {
				cfg.TextFiles = args
			}
			if naive {
				cfg.Naive = true
			}
			if hideZero {
				cfg.HideZero = true
			}
			if cfg.TermsFile == "" {
				return errors.New("no term list given, use --terms or a config file")
			}
			if len(cfg.TextFiles) == 0 {
				return errors.New("no text files given")
			}
			terms, err := readTermFile(cfg.TermsFile)
			if err != nil {
				return err
			}
			counts, err := runSearch(cfg, terms)
			if err != nil {
				return err
			}
			printTable(cmd.OutOrStdout(), counts, cfg.HideZero)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a yaml config file")
	cmd.Flags().StringVarP(&termsPath, "terms", "t", "", "path to a line-separated term list")
	cmd.Flags().BoolVar(&naive, "naive", false, "use the list-scan reference instead of the trie")
	cmd.Flags().BoolVar(&hideZero, "hide-zero", false, "omit terms that never matched")
	return cmd
}

// runSearch accumulates counts over every text file. Counts from separate
// files are summed, so a match is never carried across a file boundary.
func runSearch(cfg *Config, terms []string) (map[string]int, error) {
	total := make(map[string]int)
	if cfg.Naive {
		for _, path := range cfg.TextFiles {
			buf, err := os.ReadFile(path)
			if err != nil {
				return nil, errors.Wrap(err, "read text")
			}
			merge(total, termtrie.CountText(terms, string(buf)))
		}
		return total, nil
	}
	trie := termtrie.New()
	trie.Insert(terms...)
	for _, path := range cfg.TextFiles {
		counts, err := scanFile(trie, path)
		if err != nil {
			return nil, err
		}
		merge(total, counts)
	}
	return total, nil
}

func scanFile(trie *termtrie.Trie, path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open text")
	}
	defer f.Close()
	counts, err := trie.ScanReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", path)
	}
	return counts, nil
}

func readTermFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open term list")
	}
	defer f.Close()
	return termtrie.LoadTerms(f)
}

func merge(total, counts map[string]int) {
	for term, n := range counts {
		total[term] += n
	}
}

// printTable writes the frequency map sorted by count, highest first, ties
// broken by term.
func printTable(w io.Writer, counts map[string]int, hideZero bool) {
	terms := make([]string, 0, len(counts))
	for term, n := range counts {
		if hideZero && n == 0 {
			continue
		}
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	header := color.New(color.Bold, color.FgCyan)
	header.Fprintf(w, "%-40s %s\n", "TERM", "COUNT")
	for _, term := range terms {
		fmt.Fprintf(w, "%-40s %d\n", term, counts[term])
	}
}
