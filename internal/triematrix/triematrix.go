// Package triematrix implements the trie matrix (TM): a plain
// adjacency-list trie used as a behavioral oracle for the double array.
//
// The sorted-range partitioning recursion mirrors the same fetch/insert
// split a double array trie uses for its own child discovery; TM simply
// allocates a fresh node per run instead of packing into a shared
// base/check index space.
package triematrix

import (
	"bytes"
	"sort"

	"github.com/koeppl/yasco-da/internal/persist"
)

// edge is one (label, child) pair held by a node.
type edge struct {
	label byte
	child int
}

// TrieMatrix is an adjacency-list trie: node 0 is the root, every other
// node is referenced by exactly one edge from its parent.
type TrieMatrix struct {
	nodes [][]edge
}

// Build constructs a TrieMatrix from keys. keys is sorted (a local copy;
// the caller's slice is left untouched) and duplicates collapse to a
// single occurrence by virtue of the sorted-range recursion never
// distinguishing between repeated equal keys.
func Build(keys [][]byte) *TrieMatrix {
	sorted := make([][]byte, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i], sorted[j]) < 0
	})

	tm := &TrieMatrix{nodes: [][]edge{{}}}
	if len(sorted) > 0 {
		tm.build(0, sorted, 0, len(sorted), 0)
	}
	return tm
}

// build partitions keys[keyBeg:keyEnd] into maximal contiguous runs
// sharing keys[i][charIdx], allocates one child node per run, and
// recurses into each run at charIdx+1.
func (tm *TrieMatrix) build(nodeID int, keys [][]byte, keyBeg, keyEnd, charIdx int) {
	// Skip keys that already end at this depth (duplicates of the prefix).
	for keyBeg < keyEnd && len(keys[keyBeg]) <= charIdx {
		keyBeg++
	}
	for keyBeg < keyEnd {
		label := keys[keyBeg][charIdx]
		runEnd := keyBeg + 1
		for runEnd < keyEnd && keys[runEnd][charIdx] == label {
			runEnd++
		}
		childID := len(tm.nodes)
		tm.nodes = append(tm.nodes, []edge{})
		tm.nodes[nodeID] = append(tm.nodes[nodeID], edge{label: label, child: childID})
		tm.build(childID, keys, keyBeg, runEnd, charIdx+1)
		keyBeg = runEnd
	}
}

// Contains reports whether key is a walkable path from the root. As with
// the double array, this is prefix-containment, not strict membership:
// there is no terminal marker distinguishing a complete key from an
// internal node reached along the way (see the double array package docs
// for the rationale).
func (tm *TrieMatrix) Contains(key []byte) bool {
	cur := 0
	for _, c := range key {
		next, ok := tm.next(cur, c)
		if !ok {
			return false
		}
		cur = next
	}
	return true
}

func (tm *TrieMatrix) next(nodeID int, label byte) (int, bool) {
	for _, e := range tm.nodes[nodeID] {
		if e.label == label {
			return e.child, true
		}
	}
	return 0, false
}

// NumNodes returns the number of nodes in the matrix, including the root.
func (tm *TrieMatrix) NumNodes() int {
	return len(tm.nodes)
}

// ToDocument converts the matrix to its persistence document shape.
func (tm *TrieMatrix) ToDocument() persist.TMDocument {
	mat := make([][]persist.Edge, len(tm.nodes))
	for i, edges := range tm.nodes {
		row := make([]persist.Edge, len(edges))
		for j, e := range edges {
			row[j] = persist.Edge{Label: e.label, ChildID: e.child}
		}
		mat[i] = row
	}
	return persist.TMDocument{Mat: mat}
}

// FromDocument reconstructs a TrieMatrix from a persistence document.
func FromDocument(doc persist.TMDocument) *TrieMatrix {
	nodes := make([][]edge, len(doc.Mat))
	for i, row := range doc.Mat {
		edges := make([]edge, len(row))
		for j, e := range row {
			edges[j] = edge{label: e.Label, child: e.ChildID}
		}
		nodes[i] = edges
	}
	return &TrieMatrix{nodes: nodes}
}
