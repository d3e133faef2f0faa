// Package doublearray implements the packed double-array trie (DA): two
// parallel integer arrays, base and check, answering membership queries by
// indexing alone.
//
// The packing heuristic (findBase/expand/add) mirrors the classic
// fetch/insert recursion of a darts-style double array builder, adapted
// from a rune-keyed, value-carrying form to a byte-keyed, membership-only
// contract.
package doublearray

import (
	"bytes"
	"log"
	"sort"

	"github.com/koeppl/yasco-da/internal/persist"
)

// Sigma is the fixed alphabet size: every byte value is a valid label.
const Sigma = 256

// empty is the internal sentinel for an unused base/check slot. It is
// never a valid array index, so it cannot be confused with a real value.
const empty = -1

// Verbose gates build-progress logging through the standard library log
// package. Off by default so library callers (and tests) don't see
// diagnostic noise unless they opt in.
var Verbose = false

func logf(format string, args ...interface{}) {
	if Verbose {
		log.Printf(format, args...)
	}
}

// DoubleArray is an immutable, build-once trie over byte-string keys.
type DoubleArray struct {
	base  []int
	check []int
	// builtFromKeys distinguishes "built from an empty key set" from
	// "built from a key set whose only member is the empty string" —
	// both leave base/check trimmed to length 0, but only the latter
	// enumerates to {""}.
	builtFromKeys bool
}

// Build constructs a DoubleArray from keys. The caller's slice is not
// mutated; duplicates collapse to a single occurrence.
func Build(keys [][]byte) *DoubleArray {
	sorted := make([][]byte, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i], sorted[j]) < 0
	})

	d := &DoubleArray{builtFromKeys: len(sorted) > 0}
	d.expand()
	d.expand()
	if len(sorted) > 0 {
		d.add(0, 0, len(sorted), 0, sorted)
	}
	logf("doublearray: built before trim, length=%d", len(d.check))
	d.trim()
	logf("doublearray: built, length=%d, used=%d", d.Len(), d.NumUsed())
	return d
}

// Len returns N, the current length of the base/check arrays.
func (d *DoubleArray) Len() int {
	return len(d.check)
}

// NumUsed returns the count of non-empty check entries.
func (d *DoubleArray) NumUsed() int {
	n := 0
	for _, v := range d.check {
		if v != empty {
			n++
		}
	}
	return n
}

// Contains reports whether key names a walkable path from the root. This
// is prefix-containment, not strict membership: there is no terminal bit,
// so a key that is itself a proper prefix of another stored key is
// indistinguishable from a complete one.
func (d *DoubleArray) Contains(key []byte) bool {
	if len(d.base) == 0 {
		return len(key) == 0
	}
	cur := 0
	for _, c := range key {
		if d.base[cur] == empty {
			return false
		}
		i := d.base[cur] + int(c)
		if i >= len(d.check) || d.check[i] != cur {
			return false
		}
		cur = i
	}
	return true
}

// Enumerate performs a depth-first walk from the root and returns the path
// to every node that has no children. Each such path is an input key; an
// input key that is a proper prefix of another key ends at an inner node
// and is not returned. Order is ascending-byte-per-node but otherwise
// unspecified beyond DFS-from-root.
func (d *DoubleArray) Enumerate() [][]byte {
	if len(d.base) == 0 {
		if d.builtFromKeys {
			return [][]byte{{}}
		}
		return nil
	}
	var keys [][]byte
	var walk func(cur int, prefix []byte)
	walk = func(cur int, prefix []byte) {
		if d.base[cur] == empty {
			out := make([]byte, len(prefix))
			copy(out, prefix)
			keys = append(keys, out)
			return
		}
		base := d.base[cur]
		for c := 0; c < Sigma; c++ {
			i := base + c
			if i >= len(d.check) {
				break
			}
			if d.check[i] == cur {
				next := make([]byte, len(prefix)+1)
				copy(next, prefix)
				next[len(prefix)] = byte(c)
				walk(i, next)
			}
		}
	}
	walk(0, nil)
	return keys
}

// add partitions keys[keyBeg:keyEnd] into maximal contiguous runs sharing
// keys[i][charIdx], finds a collision-free base for the run's labels,
// places the run, and recurses into each child.
func (d *DoubleArray) add(parent, keyBeg, keyEnd, charIdx int, keys [][]byte) {
	for keyBeg < keyEnd && len(keys[keyBeg]) <= charIdx {
		keyBeg++
	}
	if keyBeg >= keyEnd {
		return
	}

	var labels []byte
	type run struct{ beg, end int }
	var runs []run
	b := keyBeg
	for b < keyEnd {
		label := keys[b][charIdx]
		e := b + 1
		for e < keyEnd && keys[e][charIdx] == label {
			e++
		}
		labels = append(labels, label)
		runs = append(runs, run{beg: b, end: e})
		b = e
	}

	base := d.findBase(labels)
	d.setBaseCheck(parent, base, labels)
	for i, label := range labels {
		child := base + int(label)
		d.add(child, runs[i].beg, runs[i].end, charIdx+1, keys)
	}
}

// findBase scans ascending candidate positions b in [1, N-Sigma) and
// returns the first one where every label in labels lands on an empty
// check slot. When the current arrays have no such position, it expands
// by one Sigma-sized block and rescans — the fresh block is entirely
// empty, so the first feasible position is always found there if nowhere
// earlier, preserving the deterministic "first feasible ascending b"
// contract across array growth.
func (d *DoubleArray) findBase(labels []byte) int {
	for {
		n := len(d.check)
	scan:
		for b := 1; b < n-Sigma; b++ {
			for _, c := range labels {
				if d.check[b+int(c)] != empty {
					continue scan
				}
			}
			return b
		}
		d.expand()
	}
}

// setBaseCheck places parent's children at base: base[parent] = base, and
// check[base+c] = parent for every label c.
func (d *DoubleArray) setBaseCheck(parent, base int, labels []byte) {
	d.base[parent] = base
	for _, c := range labels {
		d.check[base+int(c)] = parent
	}
}

// expand appends one full Sigma-sized block of empty slots to base and
// check.
func (d *DoubleArray) expand() {
	for i := 0; i < Sigma; i++ {
		d.base = append(d.base, empty)
		d.check = append(d.check, empty)
	}
}

// trim drops trailing empty check (and matching base) slots so that
// check[N-1] is non-empty, or both arrays become empty if nothing was
// ever placed.
func (d *DoubleArray) trim() {
	n := 0
	for i := len(d.check) - 1; i >= 0; i-- {
		if d.check[i] != empty {
			n = i + 1
			break
		}
	}
	base := make([]int, n)
	check := make([]int, n)
	copy(base, d.base[:n])
	copy(check, d.check[:n])
	d.base = base
	d.check = check
}

// MarshalDocument converts the array pair to its persistence document
// shape, using nil to represent an empty slot.
func (d *DoubleArray) MarshalDocument() persist.DADocument {
	return persist.DADocument{
		Base:  toSlots(d.base),
		Check: toSlots(d.check),
	}
}

// FromDocument reconstructs a DoubleArray from a persistence document.
func FromDocument(doc persist.DADocument) *DoubleArray {
	return &DoubleArray{
		base:  fromSlots(doc.Base),
		check: fromSlots(doc.Check),
	}
}

func toSlots(arr []int) []*int {
	out := make([]*int, len(arr))
	for i, v := range arr {
		if v == empty {
			continue
		}
		vv := v
		out[i] = &vv
	}
	return out
}

func fromSlots(slots []*int) []int {
	out := make([]int, len(slots))
	for i, p := range slots {
		if p == nil {
			out[i] = empty
		} else {
			out[i] = *p
		}
	}
	return out
}
