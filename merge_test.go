package rescue

import "testing"

func TestMergeDeterministic(t *testing.T) {
	var a, b [DigestWidth]Fe
	for i := range a {
		a[i] = Random()
		b[i] = Random()
	}
	m1 := Merge(a, b)
	m2 := Merge(a, b)
	if m1 != m2 {
		t.Fatalf("Merge is not deterministic")
	}
}

func TestMergeOrderMatters(t *testing.T) {
	var a, b [DigestWidth]Fe
	for i := range a {
		a[i] = Random()
		b[i] = Random()
	}
	if Merge(a, b) == Merge(b, a) {
		t.Fatalf("Merge(a, b) collided with Merge(b, a)")
	}
}

func TestMergeDistinctOnSample(t *testing.T) {
	const n = 1 << 10
	seen := make(map[[DigestWidth]Fe]struct{}, n)
	for i := 0; i < n; i++ {
		var a, b [DigestWidth]Fe
		for j := range a {
			a[j] = Random()
			b[j] = Random()
		}
		m := Merge(a, b)
		if _, dup := seen[m]; dup {
			t.Fatalf("Merge collision found at sample %d", i)
		}
		seen[m] = struct{}{}
	}
}

func TestMergeDiffersFromHashOfConcatenation(t *testing.T) {
	// Merge(left, right) is not the same as Hash(concat(left, right)) — the
	// latter sets a length prefix in the capacity, the former leaves the
	// capacity at zero. This test pins that distinction rather than
	// asserting equality.
	var left, right [DigestWidth]Fe
	for i := range left {
		left[i] = Random()
		right[i] = Random()
	}

	merged := Merge(left, right)

	concat := make([]Fe, 0, 2*DigestWidth)
	concat = append(concat, left[:]...)
	concat = append(concat, right[:]...)
	hashed := Hash(concat)

	if merged == hashed {
		t.Fatalf("Merge and Hash(concat) unexpectedly agree — capacity length-prefix should distinguish them")
	}
}
