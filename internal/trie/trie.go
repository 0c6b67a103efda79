// internal/trie/trie.go
//
// Prefix trie over the candidate vocabulary.
//
// Structure:
//   - Root (empty prefix) at depth 0.
//   - Each edge appends one letter; depth-5 nodes are terminal words.
//   - A root→leaf path spells exactly one vocabulary word.
//
// The trie serves three distinct consumers:
//   - exhaustive depth-first search (first remaining word + visit count),
//   - greedy per-position letter construction (frequency selectors),
//   - bounded randomized subtree sampling (sampled entropy selector).
//
// Child iteration order is fixed everywhere: labels ascend a→z. The
// exhaustive search pushes children in descending order onto its stack so
// the lexicographically smallest word surfaces first. This is a determinism
// requirement, not an optimality claim.

package trie

import "math/rand"

// Node is a single trie node. Children are exclusively owned by their
// parent. A node at full depth with no children is always terminal.
type Node struct {
	char     byte
	depth    int
	children map[byte]*Node
	isWord   bool
	word     string
}

// Char returns the letter labeling the edge into this node (0 at the root).
func (n *Node) Char() byte { return n.char }

// Depth returns the node's depth: 0 at the root, word length at a leaf.
func (n *Node) Depth() int { return n.depth }

// IsWord reports whether the node terminates a vocabulary word.
func (n *Node) IsWord() bool { return n.isWord }

// Word returns the completed word for terminal nodes, "" otherwise.
func (n *Node) Word() string { return n.word }

// Child returns the child along label c, or nil.
func (n *Node) Child(c byte) *Node { return n.children[c] }

// Labels returns the child edge labels in ascending order.
func (n *Node) Labels() []byte {
	out := make([]byte, 0, len(n.children))
	for c := byte('a'); c <= 'z'; c++ {
		if _, ok := n.children[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Trie is a prefix tree whose root-to-leaf paths spell vocabulary words.
type Trie struct {
	root  *Node
	count int
}

// New builds a trie over the given words.
func New(words []string) *Trie {
	t := &Trie{root: &Node{children: map[byte]*Node{}}}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds one word to the trie. Inserting a word twice is a no-op for
// the structure but not for the count; callers pass deduplicated pools.
func (t *Trie) Insert(word string) {
	node := t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		child := node.children[c]
		if child == nil {
			child = &Node{char: c, depth: i + 1, children: map[byte]*Node{}}
			node.children[c] = child
		}
		node = child
	}
	node.isWord = true
	node.word = word
	t.count++
}

// Root returns the root node.
func (t *Trie) Root() *Node { return t.root }

// Len returns the number of inserted words.
func (t *Trie) Len() int { return t.count }

// Traverse follows prefix from the root and returns the reached node, or
// nil if no word carries the prefix.
func (t *Trie) Traverse(prefix string) *Node {
	node := t.root
	for i := 0; i < len(prefix); i++ {
		node = node.children[prefix[i]]
		if node == nil {
			return nil
		}
	}
	return node
}

// Contains reports whether word is a complete trie word.
func (t *Trie) Contains(word string) bool {
	n := t.Traverse(word)
	return n != nil && n.isWord
}

// Walk visits every terminal word under n in lexicographic order, stopping
// early when fn returns false.
func Walk(n *Node, fn func(word string) bool) bool {
	if n == nil {
		return true
	}
	if n.isWord && !fn(n.word) {
		return false
	}
	for _, c := range n.Labels() {
		if !Walk(n.children[c], fn) {
			return false
		}
	}
	return true
}

// Words collects every terminal word under n in lexicographic order.
func Words(n *Node) []string {
	var out []string
	Walk(n, func(w string) bool {
		out = append(out, w)
		return true
	})
	return out
}

// ExhaustiveSearch runs a depth-first search from the root and returns the
// first terminal word popped plus the number of nodes dequeued. Children
// are pushed in descending label order, so the lexicographically smallest
// remaining word is found first. ok is false only for an empty trie.
func (t *Trie) ExhaustiveSearch() (word string, visited int, ok bool) {
	stack := []*Node{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++

		if node.isWord {
			return node.word, visited, true
		}

		labels := node.Labels()
		for i := len(labels) - 1; i >= 0; i-- {
			stack = append(stack, node.children[labels[i]])
		}
	}
	return "", visited, false
}

// SampleUnder collects at most k terminal words from the subtree rooted at
// n using a stack-based DFS whose child push order is shuffled by rng at
// every expanded node. It stops as soon as k words are collected or the
// subtree is exhausted; returning fewer than k words is not an error.
//
// This is an approximation primitive, not a uniform sampler: words in
// sparse branches are overrepresented relative to their share of the
// subtree. The rng is injected so tests can pin a seed.
func SampleUnder(n *Node, k int, rng *rand.Rand) []string {
	if n == nil || k <= 0 {
		return nil
	}
	samples := make([]string, 0, k)
	stack := []*Node{n}

	for len(stack) > 0 && len(samples) < k {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.isWord {
			samples = append(samples, node.word)
			if len(samples) >= k {
				break
			}
		}

		// Collect in label order first so a seeded rng yields a
		// reproducible visit order (map iteration would not).
		labels := node.Labels()
		children := make([]*Node, 0, len(labels))
		for _, c := range labels {
			children = append(children, node.children[c])
		}
		rng.Shuffle(len(children), func(i, j int) {
			children[i], children[j] = children[j], children[i]
		})
		stack = append(stack, children...)
	}
	return samples
}
