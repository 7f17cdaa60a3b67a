package trie

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// EditMode selects which single-rune edits a fuzzy search may spend its
// distance budget on.
type EditMode int

const (
	// Changed allows substitutions only (Hamming distance).
	Changed EditMode = iota
	// Added allows runes to be inserted into the search word.
	Added
	// Removed allows runes to be deleted from the search word.
	Removed
	// AllChanges allows substitutions, insertions and deletions (Levenshtein distance).
	AllChanges
)

// ErrUnknownEditMode is returned by ParseEditMode for unrecognised names.
var ErrUnknownEditMode = errors.New("unknown edit mode")

var editModeNames = map[EditMode]string{
	Changed:    "changed",
	Added:      "added",
	Removed:    "removed",
	AllChanges: "all",
}

func (m EditMode) String() string {
	if name, ok := editModeNames[m]; ok {
		return name
	}
	return "EditMode(" + strconv.Itoa(int(m)) + ")"
}

// ParseEditMode returns the EditMode named s ("changed", "added", "removed" or "all").
func ParseEditMode(s string) (EditMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range editModeNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownEditMode, "%q", s)
}

func (m EditMode) valid() bool {
	_, ok := editModeNames[m]
	return ok
}

func (m EditMode) substitutes() bool { return m == Changed || m == AllChanges }
func (m EditMode) inserts() bool { return m == Added || m == AllChanges }
func (m EditMode) deletes() bool { return m == Removed || m == AllChanges }

// FindCloseWordsChangedLetters returns the stored words of the same length as
// word that differ from it in at most distance positions.
func (n *Node) FindCloseWordsChangedLetters(word string, distance int) WordSet {
	return n.FindCloseWords(Changed, word, distance)
}

// FindCloseWordsAddedLetters returns the stored words that can be formed by
// inserting at most distance runes into word.
func (n *Node) FindCloseWordsAddedLetters(word string, distance int) WordSet {
	return n.FindCloseWords(Added, word, distance)
}

// FindCloseWordsRemovedLetters returns the stored words that can be formed by
// deleting at most distance runes from word.
func (n *Node) FindCloseWordsRemovedLetters(word string, distance int) WordSet {
	return n.FindCloseWords(Removed, word, distance)
}

// FindCloseWordsAllChanges returns the stored words within Levenshtein
// distance of word.
func (n *Node) FindCloseWordsAllChanges(word string, distance int) WordSet {
	return n.FindCloseWords(AllChanges, word, distance)
}

// FindCloseWords returns the stored words reachable from word with at most
// distance edits of the kinds mode allows. A negative distance or an unknown
// mode matches nothing.
func (n *Node) FindCloseWords(mode EditMode, word string, distance int) WordSet {
	words := make(WordSet)
	if distance < 0 || !mode.valid() {
		return words
	}
	query := []rune(word)
	s := &search{
		mode:  mode,
		query: query,
		path:  make([]rune, 0, len(query)+distance),
		words: words,
		seen:  make(map[searchKey]int),
	}
	s.collect(n, 0, distance)
	return words
}

type searchKey struct {
	node  *Node
	index int
}

// search carries the state of one fuzzy query. path mirrors the runes from the
// origin to the node being visited.
type search struct {
	mode  EditMode
	query []rune
	path  []rune
	words WordSet
	// seen maps a (node, query index) state to the largest budget it has been
	// explored with. Anything reachable with less budget was already found.
	seen map[searchKey]int
}

// collect walks the trie in lockstep with the query from index onwards,
// spending budget on the edits the search mode allows.
func (s *search) collect(node *Node, index, budget int) {
	key := searchKey{node: node, index: index}
	if best, ok := s.seen[key]; ok && best >= budget {
		return
	}
	s.seen[key] = budget

	remaining := index < len(s.query)
	if !remaining && node.isWord {
		s.words.Add(string(s.path))
	}

	// Deletion: skip a query rune without moving in the trie.
	if remaining && budget > 0 && s.mode.deletes() {
		s.collect(node, index+1, budget-1)
	}

	for character, next := range node.children {
		s.path = append(s.path, character)
		switch {
		case remaining && character == s.query[index]:
			s.collect(next, index+1, budget)
		case budget > 0:
			// Substitution
			if remaining && s.mode.substitutes() {
				s.collect(next, index+1, budget-1)
			}
			// Insertion
			if s.mode.inserts() {
				s.collect(next, index, budget-1)
			}
		}
		s.path = s.path[:len(s.path)-1]
	}
}
