package trie

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarthakjha889/go-dictionary-trie/internal/wordlist"
)

const dictionaryPath = "testdata/dictionary.txt"

// readDictionary loads the test dictionary into a new Trie.
func readDictionary(t *testing.T) *Trie {
	t.Helper()
	tr := New()
	_, err := wordlist.LoadFile(dictionaryPath, tr, wordlist.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return tr
}

// dictionaryWords returns the lowercased words of the test dictionary.
func dictionaryWords(t *testing.T) []string {
	t.Helper()
	f, err := os.Open(dictionaryPath)
	require.NoError(t, err)
	defer f.Close()
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, strings.ToLower(w))
		}
	}
	require.NoError(t, scanner.Err())
	return words
}

// filterWords returns the words for which keep is true.
func filterWords(words []string, keep func(string) bool) WordSet {
	s := make(WordSet)
	for _, w := range words {
		if keep(w) {
			s.Add(w)
		}
	}
	return s
}

func TestFindAllWords(t *testing.T) {
	t.Run("Empty tree", func(t *testing.T) {
		assert.Empty(t, NewNode().FindAllWords())
	})

	t.Run("Small tree", func(t *testing.T) {
		n := newTestNode("dog", "doctor", "dogmatic", "dogmonster")
		assert.Equal(t, NewWordSet("dog", "doctor", "dogmatic", "dogmonster"), n.FindAllWords())
	})

	t.Run("Dictionary", func(t *testing.T) {
		tr := readDictionary(t)
		words := dictionaryWords(t)
		assert.Equal(t, NewWordSet(words...), tr.FindAllWords())
		assert.Equal(t, len(words), tr.Len())
		assert.True(t, tr.Contains("ably"))
		assert.True(t, tr.Contains("abnegated"))
		assert.True(t, tr.Contains("phooey"))
		assert.False(t, tr.Contains("spacco"))
		assert.False(t, tr.Contains("gnb"))
	})
}

func TestFindWordsBeginningWith(t *testing.T) {
	n := newTestNode("dog", "doctor", "dogmatic", "dogmonster", "cat")

	t.Run("Prefix", func(t *testing.T) {
		assert.Equal(t, NewWordSet("dog", "dogmatic", "dogmonster"), n.FindWordsBeginningWith("dog"))
		assert.Equal(t, NewWordSet("dogmatic", "dogmonster"), n.FindWordsBeginningWith("dogm"))
	})

	t.Run("Missing prefix", func(t *testing.T) {
		assert.Empty(t, n.FindWordsBeginningWith("dogs"))
		assert.Empty(t, n.FindWordsBeginningWith("x"))
	})

	t.Run("Empty prefix", func(t *testing.T) {
		assert.Equal(t, n.FindAllWords(), n.FindWordsBeginningWith(""))
	})

	t.Run("Dictionary", func(t *testing.T) {
		tr := readDictionary(t)
		assert.Equal(t,
			NewWordSet("aardvark", "aardvarks", "aardwolf", "aardwolves"),
			tr.FindWordsBeginningWith("aard"))
		words := dictionaryWords(t)
		for _, prefix := range []string{"a", "ab", "dog", "sou", "zz"} {
			expected := filterWords(words, func(w string) bool { return strings.HasPrefix(w, prefix) })
			assert.Equal(t, expected, tr.FindWordsBeginningWith(prefix), prefix)
		}
	})
}

func TestFindWordsEndingWith(t *testing.T) {
	t.Run("Suffix", func(t *testing.T) {
		n := newTestNode("dog", "firedog", "dogma", "hotdogs", "do")
		assert.Equal(t, NewWordSet("dog", "firedog"), n.FindWordsEndingWith("dog"))
		assert.Equal(t, NewWordSet("dogma"), n.FindWordsEndingWith("ma"))
	})

	t.Run("Path without word", func(t *testing.T) {
		n := newTestNode("dogma")
		assert.Empty(t, n.FindWordsEndingWith("dog"))
		assert.Empty(t, n.FindWordsEndingWith("og"))
	})

	t.Run("Empty suffix", func(t *testing.T) {
		n := newTestNode("dog", "do", "cat")
		assert.Equal(t, n.FindAllWords(), n.FindWordsEndingWith(""))
	})

	t.Run("Dictionary", func(t *testing.T) {
		tr := readDictionary(t)
		words := tr.FindWordsEndingWith("inging")
		assert.Equal(t, NewWordSet("bringing", "hinging", "kinging", "mudslinging",
			"ringing", "singing", "swinging", "upswinging"), words)

		all := dictionaryWords(t)
		for _, suffix := range []string{"s", "dog", "ul", "a"} {
			expected := filterWords(all, func(w string) bool { return strings.HasSuffix(w, suffix) })
			assert.Equal(t, expected, tr.FindWordsEndingWith(suffix), suffix)
		}
	})
}

func TestFindWordsContaining(t *testing.T) {
	t.Run("Pattern", func(t *testing.T) {
		n := newTestNode("dog", "undogmatic", "seadogs", "god", "do")
		assert.Equal(t, NewWordSet("dog", "undogmatic", "seadogs"), n.FindWordsContaining("dog"))
		assert.Equal(t, NewWordSet("god", "dog", "do", "undogmatic", "seadogs"), n.FindWordsContaining("o"))
	})

	t.Run("Empty pattern", func(t *testing.T) {
		n := newTestNode("dog", "do", "cat", "")
		assert.Equal(t, n.FindAllWords(), n.FindWordsContaining(""))
	})

	t.Run("Repeated pattern", func(t *testing.T) {
		n := newTestNode("aaaa", "aa", "a")
		assert.Equal(t, NewWordSet("aaaa", "aa"), n.FindWordsContaining("aa"))
	})

	t.Run("Dictionary", func(t *testing.T) {
		tr := readDictionary(t)
		words := tr.FindWordsContaining("dog")
		for _, w := range []string{"dog", "seadogs", "undogmatic", "dogma", "endogenous", "firedog"} {
			assert.True(t, words.Has(w), w)
		}
		all := dictionaryWords(t)
		for _, pattern := range []string{"dog", "in", "ou", "aa"} {
			expected := filterWords(all, func(w string) bool { return strings.Contains(w, pattern) })
			assert.Equal(t, expected, tr.FindWordsContaining(pattern), pattern)
		}
	})
}
