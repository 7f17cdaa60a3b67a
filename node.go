package trie

// Node is a node in a dictionary trie. Each node owns a map of runes to child
// nodes, knows its parent and records whether the path from the root to it
// spells a stored word. The zero value is not usable; create roots with NewNode.
type Node struct {
	children map[rune]*Node
	// parent is a back-pointer for upward navigation only; ownership flows
	// through children.
	parent *Node
	isWord bool
}

// NewNode creates a new empty root node.
func NewNode() *Node {
	return &Node{children: make(map[rune]*Node)}
}

// IsWord reports whether the path to n spells a stored word.
func (n *Node) IsWord() bool {
	return n.isWord
}

// Insert stores word below n, creating missing nodes along its path.
// Inserting the empty string marks n itself as a word.
func (n *Node) Insert(word string) {
	current := n
	for _, character := range word {
		child, ok := current.children[character]
		if !ok {
			child = &Node{children: make(map[rune]*Node), parent: current}
			current.children[character] = child
		}
		current = child
	}
	current.isWord = true
}

// HasChild reports whether n has a child labelled r.
func (n *Node) HasChild(r rune) bool {
	_, ok := n.children[r]
	return ok
}

// Child returns the child labelled r, or nil.
func (n *Node) Child(r rune) *Node {
	return n.children[r]
}

// Parent returns the node one level up, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// FollowPath walks path from n and returns the node reached, or nil as soon as
// a rune of path has no matching child. An empty path returns n.
func (n *Node) FollowPath(path string) *Node {
	current := n
	for _, r := range path {
		next, ok := current.children[r]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// Contains reports whether word is stored below n.
func (n *Node) Contains(word string) bool {
	target := n.FollowPath(word)
	return target != nil && target.isWord
}
