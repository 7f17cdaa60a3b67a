package main

import (
	"fmt"

	"github.com/spf13/cobra"

	trie "github.com/sarthakjha889/go-dictionary-trie"
)

func makeContainsCommand(e *env) *cobra.Command {
	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		t, err := e.load()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Contains(args[0]))
		return err
	}
	return &cobra.Command{
		Use:   "contains <word>",
		Short: "Report whether the word is in the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE:  runCmdFunc,
	}
}

// makeWordsCommand builds a command printing the words find returns for its
// single argument.
func makeWordsCommand(e *env, use, short string, find func(*trie.Trie, string) trie.WordSet) *cobra.Command {
	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		t, err := e.load()
		if err != nil {
			return err
		}
		return printWords(cmd.OutOrStdout(), find(t, args[0]))
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE:  runCmdFunc,
	}
}

func makePrefixCommand(e *env) *cobra.Command {
	return makeWordsCommand(e, "prefix <prefix>", "List the words beginning with prefix",
		(*trie.Trie).FindWordsBeginningWith)
}

func makeSuffixCommand(e *env) *cobra.Command {
	return makeWordsCommand(e, "suffix <suffix>", "List the words ending with suffix",
		(*trie.Trie).FindWordsEndingWith)
}

func makeSubstringCommand(e *env) *cobra.Command {
	return makeWordsCommand(e, "substring <pattern>", "List the words containing pattern",
		(*trie.Trie).FindWordsContaining)
}

func makeFuzzyCommand(e *env) *cobra.Command {
	var mode string
	var distance int
	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("mode") {
			mode = e.cfg.Search.Mode
		}
		if !cmd.Flags().Changed("distance") {
			distance = e.cfg.Search.Distance
		}
		editMode, err := trie.ParseEditMode(mode)
		if err != nil {
			return err
		}
		t, err := e.load()
		if err != nil {
			return err
		}
		return printWords(cmd.OutOrStdout(), t.FindCloseWords(editMode, args[0], distance))
	}
	cmd := &cobra.Command{
		Use:   "fuzzy <word>",
		Short: "List the words within an edit distance of word",
		Long: `List the words within an edit distance of word. The mode selects the edits allowed:

    changed  letters replaced in place
    added    letters inserted into word
    removed  letters deleted from word
    all      any mix of the above (Levenshtein distance)`,
		Args: cobra.ExactArgs(1),
		RunE: runCmdFunc,
	}
	cmd.Flags().StringVar(&mode, "mode", trie.AllChanges.String(), "edit mode: changed, added, removed or all")
	cmd.Flags().IntVar(&distance, "distance", 1, "maximum number of edits")
	return cmd
}

func makeStatsCommand(e *env) *cobra.Command {
	var deeperThan int
	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		t, err := e.load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if _, err := fmt.Fprintf(out, "words: %d\nnodes: %d\nleaves: %d\n",
			t.Len(), t.CountNodes(), t.CountLeafNodes()); err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "deeper than %d: %d\n", deeperThan, t.NumDeeperThan(deeperThan))
		return err
	}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print structural statistics of the dictionary tree",
		Args:  cobra.NoArgs,
		RunE:  runCmdFunc,
	}
	cmd.Flags().IntVar(&deeperThan, "deeper-than", 0, "depth to count nodes below")
	return cmd
}
