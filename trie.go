package trie

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trie is a dictionary of words stored in a prefix tree. It normalises words
// before they reach the tree and serialises writers against readers, so it can
// be filled and queried from several goroutines.
type Trie struct {
	root                      *Node
	mu                        sync.RWMutex
	normalised, caseSensitive bool
	size                      int
}

// New creates a new empty dictionary. By default normalisation is on and
// matching is case insensitive.
func New() *Trie {
	t := new(Trie)
	t.root = NewNode()
	t.WithNormalisation()
	t.CaseInsensitive()
	return t
}

// WithNormalisation sets the Trie to strip diacritics from words and queries.
// For example, Jurg will find Jürg, and Jürg will find Jurg.
func (t *Trie) WithNormalisation() *Trie {
	t.normalised = true
	return t
}

// WithoutNormalisation sets the Trie to keep diacritics as inserted.
func (t *Trie) WithoutNormalisation() *Trie {
	t.normalised = false
	return t
}

// CaseSensitive sets the Trie to keep the case of words and queries.
func (t *Trie) CaseSensitive() *Trie {
	t.caseSensitive = true
	return t
}

// CaseInsensitive sets the Trie to lowercase words and queries.
func (t *Trie) CaseInsensitive() *Trie {
	t.caseSensitive = false
	return t
}

// normalise applies the Trie's normalisation and case settings to s.
func (t *Trie) normalise(s string) string {
	if t.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, s); err == nil {
			s = normal
		}
	}
	if !t.caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

// Insert inserts words into the Trie. The empty string is a valid word.
func (t *Trie) Insert(words ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, word := range words {
		word = t.normalise(word)
		if !t.root.Contains(word) {
			t.size++
		}
		t.root.Insert(word)
	}
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Root returns the root node of the tree for navigation. The node must not be
// written to while other goroutines use the Trie.
func (t *Trie) Root() *Node {
	return t.root
}

// Contains reports whether word is stored.
func (t *Trie) Contains(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.Contains(t.normalise(word))
}

// FindAllWords returns every stored word.
func (t *Trie) FindAllWords() WordSet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.FindAllWords()
}

// FindWordsBeginningWith returns the stored words starting with prefix.
func (t *Trie) FindWordsBeginningWith(prefix string) WordSet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.FindWordsBeginningWith(t.normalise(prefix))
}

// FindWordsEndingWith returns the stored words ending with suffix.
func (t *Trie) FindWordsEndingWith(suffix string) WordSet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.FindWordsEndingWith(t.normalise(suffix))
}

// FindWordsContaining returns the stored words containing pattern.
func (t *Trie) FindWordsContaining(pattern string) WordSet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.FindWordsContaining(t.normalise(pattern))
}

// FindCloseWords returns the stored words within distance edits of word, where
// mode selects the kinds of edit allowed.
func (t *Trie) FindCloseWords(mode EditMode, word string, distance int) WordSet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.FindCloseWords(mode, t.normalise(word), distance)
}

// CountLeafNodes returns the number of nodes without children.
func (t *Trie) CountLeafNodes() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.CountLeafNodes()
}

// NumDeeperThan returns the number of nodes more than depth edges below the root.
func (t *Trie) NumDeeperThan(depth int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.NumDeeperThan(depth)
}

// CountNodes returns the number of nodes in the tree, root included.
func (t *Trie) CountNodes() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.CountNodes()
}
