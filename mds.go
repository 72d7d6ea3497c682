package rescue

// applyMDS multiplies the state by the fixed 12x12 circulant MDS matrix:
// state <- M * state. Uses the naive 144-multiply form; the matrix being
// circulant is exploited only by the optional wide-lane path in lanes.go,
// which must produce the identical result.
func applyMDS(state *[StateWidth]Fe) {
	var tmp [StateWidth]Fe
	for i := 0; i < StateWidth; i++ {
		var acc Fe
		row := &MDS[i]
		for j := 0; j < StateWidth; j++ {
			acc = acc.Add(state[j].Mul(row[j]))
		}
		tmp[i] = acc
	}
	*state = tmp
}
