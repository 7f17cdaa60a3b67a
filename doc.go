/*
Package trie provides a prefix tree dictionary of words. Besides exact lookups
it enumerates words by prefix, suffix or substring, and finds words within an
edit distance of a query when only changed, added or removed letters, or any
mix of them, are allowed.

Node is the tree itself and assumes a single goroutine. Trie wraps a root Node
with optional normalisation and a read/write lock.
*/
package trie
