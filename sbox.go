package rescue

// exp7 raises v to its 7th power with 4 multiplications instead of the 6
// that repeated multiplication by v would need.
func exp7(v Fe) Fe {
	v2 := v.Square()
	v4 := v2.Square()
	v6 := v2.Mul(v4)
	return v.Mul(v6)
}

// applySBox raises every state element to the Alpha-th power (7).
func applySBox(state *[StateWidth]Fe) {
	for i := range state {
		state[i] = exp7(state[i])
	}
}

// expAcc computes, element-wise, (base^(2^m)) * tail: square base m times,
// then multiply by tail. This is the building block of the inverse S-box's
// addition chain, adapted from the Novi/Winterfell rp64_256 construction.
func expAcc(m int, base, tail [StateWidth]Fe) [StateWidth]Fe {
	res := base
	for i := 0; i < m; i++ {
		for j := range res {
			res[j] = res[j].Square()
		}
	}
	for j := range res {
		res[j] = res[j].Mul(tail[j])
	}
	return res
}

// applyInvSBox raises every state element to the InvAlpha-th power via a
// fixed 72-multiplication addition chain (versus ~96 operations for a naive
// binary exponentiation), undoing applySBox.
func applyInvSBox(state *[StateWidth]Fe) {
	var t1, t2 [StateWidth]Fe
	for i := range state {
		t1[i] = state[i].Square()
		t2[i] = t1[i].Square()
	}

	t3 := expAcc(3, t2, t2)
	t4 := expAcc(6, t3, t3)
	t5 := expAcc(12, t4, t4)
	t6 := expAcc(6, t5, t3)
	t7 := expAcc(31, t6, t6)

	for i := range state {
		a0 := t7[i].Square()
		a1 := a0.Mul(t6[i])
		a2 := a1.Square()
		a3 := a2.Square()

		b0 := t1[i].Mul(t2[i])
		b1 := b0.Mul(state[i])

		state[i] = a3.Mul(b1)
	}
}
