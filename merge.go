package rescue

// Merge is the 2-to-1 specialization of the sponge: it absorbs exactly two
// digests (8 field elements, one full rate block) and returns one,
// compressing a Merkle tree's two children into their parent. Unlike Hash,
// it never needs a length prefix — the input shape is fixed by the type
// signature — so the capacity stays zero and exactly one Permute call is
// made.
func Merge(left, right [DigestWidth]Fe) [DigestWidth]Fe {
	var state [StateWidth]Fe
	for j, v := range left {
		state[Capacity+j] = state[Capacity+j].Add(v)
	}
	for j, v := range right {
		state[Capacity+DigestWidth+j] = state[Capacity+DigestWidth+j].Add(v)
	}
	Permute(&state)

	var out [DigestWidth]Fe
	copy(out[:], state[Capacity:Capacity+DigestWidth])
	return out
}
