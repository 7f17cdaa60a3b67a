package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	trie "github.com/sarthakjha889/go-dictionary-trie"
	"github.com/sarthakjha889/go-dictionary-trie/internal/config"
	"github.com/sarthakjha889/go-dictionary-trie/internal/wordlist"
)

// env is shared by all subcommands; the root command fills it in before any
// of them run.
type env struct {
	configPath string
	dictionary string
	encoding   string
	logLevel   string

	cfg *config.Config
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := makeTrieCommand(os.Stdout).Execute(); err != nil {
		log.Error().Err(err).Msg("trie failed")
		os.Exit(1)
	}
}

func makeTrieCommand(out io.Writer) *cobra.Command {
	e := &env{}
	command := &cobra.Command{
		Use:   "trie [command] (flags)",
		Short: "trie queries a word list through a prefix tree.",
		Long: `trie loads a word list (one word per line) into a prefix tree and queries it.

Typical usage:
    trie prefix aard --dictionary=words.txt
        List the words starting with "aard".

    trie fuzzy soul --mode=changed --distance=1 --dictionary=words.txt
        List the words of the same length as "soul" differing in at most one letter.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}
	command.SetOut(out)
	flags := command.PersistentFlags()
	flags.StringVar(&e.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&e.dictionary, "dictionary", "", "path to the word list")
	flags.StringVar(&e.encoding, "encoding", "", "word list encoding (utf-8, iso-8859-1, windows-1252)")
	flags.StringVar(&e.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	command.AddCommand(makeContainsCommand(e))
	command.AddCommand(makePrefixCommand(e))
	command.AddCommand(makeSuffixCommand(e))
	command.AddCommand(makeSubstringCommand(e))
	command.AddCommand(makeFuzzyCommand(e))
	command.AddCommand(makeStatsCommand(e))
	return command
}

// setup loads the configuration, applies flag overrides and sets the log level.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("dictionary") {
		cfg.Dictionary.Path = e.dictionary
	}
	if flags.Changed("encoding") {
		cfg.Dictionary.Encoding = e.encoding
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = e.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := cfg.Log.ParseLevel()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	e.cfg = cfg
	return nil
}

// load builds the dictionary from the configured word list.
func (e *env) load() (*trie.Trie, error) {
	if e.cfg.Dictionary.Path == "" {
		return nil, errors.New("no dictionary given; set --dictionary or dictionary.path")
	}
	t := e.cfg.Dictionary.NewTrie()
	if _, err := wordlist.LoadFile(e.cfg.Dictionary.Path, t,
		wordlist.WithEncoding(e.cfg.Dictionary.Encoding),
		wordlist.WithLogger(log.Logger),
	); err != nil {
		return nil, err
	}
	return t, nil
}

func printWords(w io.Writer, words trie.WordSet) error {
	for _, word := range words.Sorted() {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}
