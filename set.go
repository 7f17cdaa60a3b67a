package trie

import "golang.org/x/exp/slices"

// WordSet is an unordered set of words returned by the query methods.
type WordSet map[string]struct{}

// NewWordSet creates a set holding words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts word into the set.
func (s WordSet) Add(word string) {
	s[word] = struct{}{}
}

// Has reports whether word is in the set.
func (s WordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words in the set.
func (s WordSet) Len() int {
	return len(s)
}

// Sorted returns the words in lexicographic order.
func (s WordSet) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
