package rescue

// Hash computes the Rescue-Prime digest of input, a sequence of field
// elements of arbitrary length.
//
// The state's capacity[0] is set to len(input) before absorption, so that
// Hash(x) and Hash(append(x, 0)) differ with overwhelming probability even
// though they'd otherwise absorb the same rate contents — this also rules
// out length-extension collisions.
//
// Absorption adds each block element-wise into the rate (never overwrites
// it), matching the canonical Winterfell test vectors. For input of length
// 0, no block is absorbed and Permute is never invoked; the digest is the
// all-zero state's rate, i.e. four zeros. This is the documented behavior
// of the original construction, not a later "fix" — see the package's
// design notes.
func Hash(input []Fe) [DigestWidth]Fe {
	var state [StateWidth]Fe
	state[0] = FromUint64(uint64(len(input)))

	fullBlocks, rem := blockCounts(len(input))

	for i := 0; i < fullBlocks; i++ {
		block := input[i*Rate : i*Rate+Rate]
		for j, v := range block {
			state[Capacity+j] = state[Capacity+j].Add(v)
		}
		Permute(&state)
	}

	if rem > 0 {
		tail := input[fullBlocks*Rate:]
		for j, v := range tail {
			state[Capacity+j] = state[Capacity+j].Add(v)
		}
		Permute(&state)
	}

	var digest [DigestWidth]Fe
	copy(digest[:], state[Capacity:Capacity+DigestWidth])
	return digest
}

// blockCounts splits an input of length n into full Rate-sized blocks plus
// a remainder, the same split Hash uses to decide how many times Permute
// runs.
func blockCounts(n int) (fullBlocks, rem int) {
	fullBlocks = n / Rate
	rem = n - fullBlocks*Rate
	return
}

// PermuteCalls returns the number of times Hash would invoke Permute for
// an input of length n, without running the hash. Useful for callers that
// need to budget permutation calls (e.g. cost estimation in a circuit),
// and exercised directly by the block-count tests.
func PermuteCalls(n int) int {
	fullBlocks, rem := blockCounts(n)
	if rem > 0 {
		return fullBlocks + 1
	}
	return fullBlocks
}
