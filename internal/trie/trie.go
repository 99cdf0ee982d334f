// Package trie indexes words for prefix completion.
package trie

import "sort"

/*
Nodes live in a single slice (the arena) and refer to their children by
index rather than by pointer. Words are inserted rune by rune, so a
completion is a walk down the prefix followed by a depth-first collection
of every terminal node below it.
*/

// NodeIndex represents the index of a trie node.
type NodeIndex int

const root NodeIndex = 0

// Arena stores all trie nodes.
type Arena struct {
	nodes []arenaNode
}

type arenaNode struct {
	children map[rune]NodeIndex
	isEnd    bool
}

// NewArena creates an arena holding only the root node.
func NewArena() *Arena {
	arena := &Arena{
		nodes: make([]arenaNode, 0, 256),
	}
	arena.nodes = append(arena.nodes, arenaNode{children: make(map[rune]NodeIndex)})
	return arena
}

func (a *Arena) newNode() NodeIndex {
	idx := NodeIndex(len(a.nodes))
	a.nodes = append(a.nodes, arenaNode{children: make(map[rune]NodeIndex)})
	return idx
}

// Insert adds word. It reports whether the word was new.
func (a *Arena) Insert(word string) bool {
	current := root
	for _, r := range word {
		childIdx, exists := a.nodes[current].children[r]
		if !exists {
			childIdx = a.newNode()
			a.nodes[current].children[r] = childIdx
		}
		current = childIdx
	}

	if a.nodes[current].isEnd {
		return false
	}
	a.nodes[current].isEnd = true
	return true
}

// Contains reports whether word was inserted.
func (a *Arena) Contains(word string) bool {
	idx, ok := a.find(word)
	return ok && a.nodes[idx].isEnd
}

func (a *Arena) find(prefix string) (NodeIndex, bool) {
	current := root
	for _, r := range prefix {
		child, exists := a.nodes[current].children[r]
		if !exists {
			return 0, false
		}
		current = child
	}
	return current, true
}

// Complete returns every inserted word starting with prefix, sorted.
func (a *Arena) Complete(prefix string) []string {
	start, ok := a.find(prefix)
	if !ok {
		return nil
	}

	var words []string
	buf := []rune(prefix)
	var walk func(idx NodeIndex)
	walk = func(idx NodeIndex) {
		node := a.nodes[idx]
		if node.isEnd {
			words = append(words, string(buf))
		}

		keys := make([]rune, 0, len(node.children))
		for r := range node.children {
			keys = append(keys, r)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

		for _, r := range keys {
			buf = append(buf, r)
			walk(node.children[r])
			buf = buf[:len(buf)-1]
		}
	}
	walk(start)

	return words
}

// Trie is a set of words supporting prefix completion.
type Trie struct {
	arena *Arena
	size  int
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{arena: NewArena()}
}

// Insert adds word to the trie. Empty words are ignored.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	if t.arena.Insert(word) {
		t.size++
	}
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	return word != "" && t.arena.Contains(word)
}

// Complete returns every word starting with prefix in lexical order.
func (t *Trie) Complete(prefix string) []string {
	return t.arena.Complete(prefix)
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.size
}
