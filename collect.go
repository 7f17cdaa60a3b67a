package trie

// walk visits n and its descendants depth first. path is the rune path from
// the walk's origin to n; it shares one backing array across the whole walk, so
// visit must copy it before keeping it. When visit returns false the
// descendants of n are skipped.
func (n *Node) walk(path []rune, visit func(node *Node, path []rune) bool) {
	if !visit(n, path) {
		return
	}
	for character, child := range n.children {
		child.walk(append(path, character), visit)
	}
}

// collectWords adds every word at or below n to words, each prefixed by path.
func (n *Node) collectWords(path []rune, words WordSet) {
	n.walk(path, func(node *Node, path []rune) bool {
		if node.isWord {
			words.Add(string(path))
		}
		return true
	})
}

// FindAllWords returns every word stored below n.
func (n *Node) FindAllWords() WordSet {
	words := make(WordSet)
	n.collectWords(make([]rune, 0, 32), words)
	return words
}

// FindWordsBeginningWith returns the stored words that start with prefix.
func (n *Node) FindWordsBeginningWith(prefix string) WordSet {
	words := make(WordSet)
	start := n.FollowPath(prefix)
	if start == nil {
		return words
	}
	path := make([]rune, 0, len(prefix)+32)
	start.collectWords(append(path, []rune(prefix)...), words)
	return words
}

// FindWordsEndingWith returns the stored words that end with suffix. Every
// node of the tree is probed for a word reachable by following suffix from it.
func (n *Node) FindWordsEndingWith(suffix string) WordSet {
	words := make(WordSet)
	n.walk(make([]rune, 0, 32), func(node *Node, path []rune) bool {
		if target := node.FollowPath(suffix); target != nil && target.isWord {
			words.Add(string(path) + suffix)
		}
		return true
	})
	return words
}

// FindWordsContaining returns the stored words that contain pattern. Once the
// path ends with pattern, every word in the subtree below contains it too.
func (n *Node) FindWordsContaining(pattern string) WordSet {
	words := make(WordSet)
	target := []rune(pattern)
	n.walk(make([]rune, 0, 32), func(node *Node, path []rune) bool {
		if !hasRuneSuffix(path, target) {
			return true
		}
		node.collectWords(path, words)
		return false
	})
	return words
}

func hasRuneSuffix(s, suffix []rune) bool {
	if len(suffix) > len(s) {
		return false
	}
	offset := len(s) - len(suffix)
	for i, r := range suffix {
		if s[offset+i] != r {
			return false
		}
	}
	return true
}
