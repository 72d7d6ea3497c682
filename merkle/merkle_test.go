package merkle

import (
	"testing"

	"github.com/itzmeanjan/rescue-prime-go"
)

func randomDigest() [4]rescue.Fe {
	var d [4]rescue.Fe
	for i := range d {
		d[i] = rescue.Random()
	}
	return d
}

func TestNewTreeRejectsBadLeafCounts(t *testing.T) {
	if _, err := NewTree(nil); err != ErrInvalidLeafCount {
		t.Fatalf("expected ErrInvalidLeafCount for empty leaves, got %v", err)
	}
	leaves := make([][4]rescue.Fe, 3)
	if _, err := NewTree(leaves); err != ErrInvalidLeafCount {
		t.Fatalf("expected ErrInvalidLeafCount for 3 leaves, got %v", err)
	}
}

func TestTreeRootDeterministic(t *testing.T) {
	leaves := make([][4]rescue.Fe, 8)
	for i := range leaves {
		leaves[i] = randomDigest()
	}
	t1, err := NewTree(leaves)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := NewTree(leaves)
	if err != nil {
		t.Fatal(err)
	}
	if t1.Root() != t2.Root() {
		t.Fatalf("tree root is not deterministic")
	}
}

func TestVerifyPathAllLeaves(t *testing.T) {
	const numLeaves = 16
	leaves := make([][4]rescue.Fe, numLeaves)
	for i := range leaves {
		leaves[i] = randomDigest()
	}
	tree, err := NewTree(leaves)
	if err != nil {
		t.Fatal(err)
	}
	root := tree.Root()

	for i := 0; i < numLeaves; i++ {
		path, err := tree.Path(i)
		if err != nil {
			t.Fatalf("Path(%d): %v", i, err)
		}
		if !VerifyPath(leaves[i], i, path, root) {
			t.Fatalf("VerifyPath failed for leaf %d", i)
		}
	}
}

func TestVerifyPathRejectsTamperedLeaf(t *testing.T) {
	leaves := make([][4]rescue.Fe, 8)
	for i := range leaves {
		leaves[i] = randomDigest()
	}
	tree, err := NewTree(leaves)
	if err != nil {
		t.Fatal(err)
	}
	root := tree.Root()

	path, err := tree.Path(2)
	if err != nil {
		t.Fatal(err)
	}

	tampered := leaves[2]
	tampered[0] = tampered[0].Add(rescue.One)
	if VerifyPath(tampered, 2, path, root) {
		t.Fatalf("VerifyPath accepted a tampered leaf")
	}
}

func TestVerifyPathRejectsTamperedSibling(t *testing.T) {
	leaves := make([][4]rescue.Fe, 8)
	for i := range leaves {
		leaves[i] = randomDigest()
	}
	tree, err := NewTree(leaves)
	if err != nil {
		t.Fatal(err)
	}
	root := tree.Root()

	path, err := tree.Path(2)
	if err != nil {
		t.Fatal(err)
	}
	path[0][0] = path[0][0].Add(rescue.One)

	if VerifyPath(leaves[2], 2, path, root) {
		t.Fatalf("VerifyPath accepted a tampered sibling")
	}
}

func TestPathOutOfRange(t *testing.T) {
	leaves := make([][4]rescue.Fe, 4)
	for i := range leaves {
		leaves[i] = randomDigest()
	}
	tree, err := NewTree(leaves)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tree.Path(-1); err == nil {
		t.Fatalf("expected error for negative index")
	}
	if _, err := tree.Path(4); err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
}
