package rescue

// Permute applies the 7-round Rescue permutation to state in place. It is
// exposed, beyond its use inside Hash, for building other sponge modes on
// top of the same core — see Merge and the merkle subpackage.
func Permute(state *[StateWidth]Fe) {
	for r := 0; r < Rounds; r++ {
		applyRound(state, r)
	}
}
