package trie

// CountLeafNodes returns the number of nodes below and including n that have
// no children, whether or not they end a word.
func (n *Node) CountLeafNodes() int {
	if len(n.children) == 0 {
		return 1
	}
	count := 0
	for _, child := range n.children {
		count += child.CountLeafNodes()
	}
	return count
}

// NumDeeperThan returns the number of nodes more than depth edges below n.
// n itself sits at depth zero, so a negative depth counts the whole subtree.
func (n *Node) NumDeeperThan(depth int) int {
	count := 0
	if depth < 0 {
		count++
	}
	for _, child := range n.children {
		count += child.NumDeeperThan(depth - 1)
	}
	return count
}

// CountNodes returns the number of nodes below and including n.
func (n *Node) CountNodes() int {
	return n.NumDeeperThan(-1)
}
