package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	termtrie "github.com/sarthakjha889/go-termtrie"
)

func newBenchCommand() *cobra.Command {
	var runs int
	cmd := &cobra.Command{
		Use:   "bench <term file> <text file>",
		Short: "Compare the trie scan against the list-scan reference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := readTermFile(args[0])
			if err != nil {
				return err
			}
			buf, err := os.ReadFile(args[1])
			if err != nil {
				return errors.Wrap(err, "read text")
			}
			tokens := termtrie.NewTokenizer().Tokenize(string(buf))

			start := time.Now()
			for i := 0; i < runs; i++ {
				trie := termtrie.New()
				trie.Insert(terms...)
				trie.Scan(tokens)
			}
			trieTime := time.Since(start)

			start = time.Now()
			for i := 0; i < runs; i++ {
				termtrie.Count(terms, tokens)
			}
			listTime := time.Since(start)

			out := cmd.OutOrStdout()
			color.New(color.Bold).Fprintf(out, "%d runs, %d terms, %d text tokens\n",
				runs, len(terms), len(tokens))
			fmt.Fprintf(out, "trie scan %v\n", trieTime)
			fmt.Fprintf(out, "list scan %v\n", listTime)
			return nil
		},
	}
	cmd.Flags().IntVarP(&runs, "runs", "n", 100, "number of timed runs per implementation")
	return cmd
}
