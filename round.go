package rescue

// addRC0 adds the round-r constants from RC0, used after the first MDS
// multiply of a round.
func addRC0(state *[StateWidth]Fe, round int) {
	off := round * StateWidth
	for i := range state {
		state[i] = state[i].Add(RC0[off+i])
	}
}

// addRC1 adds the round-r constants from RC1, used after the second MDS
// multiply of a round.
func addRC1(state *[StateWidth]Fe, round int) {
	off := round * StateWidth
	for i := range state {
		state[i] = state[i].Add(RC1[off+i])
	}
}

// applyRound performs one Rescue round: S-box, MDS, RC0, inverse S-box,
// MDS, RC1.
func applyRound(state *[StateWidth]Fe, round int) {
	applySBox(state)
	applyMDS(state)
	addRC0(state, round)

	applyInvSBox(state)
	applyMDS(state)
	addRC1(state, round)
}
