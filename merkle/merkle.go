// Package merkle builds fixed-depth binary Merkle trees over Rescue-Prime
// digests, using rescue.Merge as the 2-to-1 node compression function. This
// is the typical way Rescue-Prime is used in practice: as the vector
// commitment underneath a STARK's execution-trace and FRI layers.
package merkle

import (
	"errors"
	"fmt"

	"github.com/itzmeanjan/rescue-prime-go"
)

// ErrInvalidLeafCount is returned by NewTree when the leaf slice is empty
// or its length is not a power of two.
var ErrInvalidLeafCount = errors.New("merkle: leaf count must be a non-zero power of two")

// Tree is a binary Merkle tree over leaf digests, compressed level by level
// with rescue.Merge. The zero value is not usable; construct with NewTree.
type Tree struct {
	// levels[0] holds the leaves; levels[len(levels)-1] holds the root.
	levels [][][4]rescue.Fe
}

// NewTree builds a Merkle tree over leaves, a non-zero power-of-two-length
// slice of 4-element digests.
func NewTree(leaves [][4]rescue.Fe) (*Tree, error) {
	n := len(leaves)
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrInvalidLeafCount
	}

	var levels [][][4]rescue.Fe
	cur := append([][4]rescue.Fe(nil), leaves...)
	levels = append(levels, cur)

	for len(cur) > 1 {
		next := make([][4]rescue.Fe, len(cur)/2)
		for i := range next {
			next[i] = rescue.Merge(cur[2*i], cur[2*i+1])
		}
		levels = append(levels, next)
		cur = next
	}

	return &Tree{levels: levels}, nil
}

// Root returns the tree's root digest.
func (t *Tree) Root() [4]rescue.Fe {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// NumLeaves returns the number of leaves the tree was built from.
func (t *Tree) NumLeaves() int {
	return len(t.levels[0])
}

// Path returns the authentication path (sibling digests, leaf to root) for
// the leaf at index.
func (t *Tree) Path(index int) ([][4]rescue.Fe, error) {
	if index < 0 || index >= t.NumLeaves() {
		return nil, fmt.Errorf("merkle: index %d out of range [0, %d)", index, t.NumLeaves())
	}

	path := make([][4]rescue.Fe, 0, len(t.levels)-1)
	idx := index
	for level := 0; level < len(t.levels)-1; level++ {
		siblingIdx := idx ^ 1
		path = append(path, t.levels[level][siblingIdx])
		idx /= 2
	}
	return path, nil
}

// VerifyPath recomputes a root from leaf, its index, and an authentication
// path, and reports whether it matches root.
func VerifyPath(leaf [4]rescue.Fe, index int, path [][4]rescue.Fe, root [4]rescue.Fe) bool {
	cur := leaf
	idx := index
	for _, sibling := range path {
		if idx%2 == 0 {
			cur = rescue.Merge(cur, sibling)
		} else {
			cur = rescue.Merge(sibling, cur)
		}
		idx /= 2
	}
	return cur == root
}
