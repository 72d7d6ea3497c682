package rescue

// Lanes4 holds 4 field elements processed together as a unit, mirroring
// what a 256-bit vector register holds on amd64 (AVX2) or arm64 (NEON).
// Every operation here is defined lane-wise in terms of Fe, so results are
// bit-identical to the scalar path by construction — this is a grouping
// abstraction, not a distinct arithmetic.
type Lanes4 [4]Fe

// LoadLanes4 reads 4 consecutive field elements from src.
func LoadLanes4(src []Fe) Lanes4 {
	return Lanes4{src[0], src[1], src[2], src[3]}
}

// Store writes the 4 lanes back to dst.
func (l Lanes4) Store(dst []Fe) {
	dst[0], dst[1], dst[2], dst[3] = l[0], l[1], l[2], l[3]
}

// Add returns the lane-wise sum of l and r.
func (l Lanes4) Add(r Lanes4) Lanes4 {
	return Lanes4{l[0].Add(r[0]), l[1].Add(r[1]), l[2].Add(r[2]), l[3].Add(r[3])}
}

// Mul returns the lane-wise product of l and r.
func (l Lanes4) Mul(r Lanes4) Lanes4 {
	return Lanes4{l[0].Mul(r[0]), l[1].Mul(r[1]), l[2].Mul(r[2]), l[3].Mul(r[3])}
}

// Square returns the lane-wise square of l.
func (l Lanes4) Square() Lanes4 {
	return l.Mul(l)
}

// rotateRowRight produces the next MDS row from the current one, exploiting
// the matrix's circulant structure: rotating a row right by one position
// yields the next row down (see constants.go). Equivalent to, but cheaper
// than, re-deriving the row from mdsRow0 and an offset.
func rotateRowRight(row [StateWidth]Fe) [StateWidth]Fe {
	var out [StateWidth]Fe
	out[0] = row[StateWidth-1]
	copy(out[1:], row[:StateWidth-1])
	return out
}

// applyMDSWide multiplies the state by the MDS matrix using the Lanes4
// grouping and the circulant rotation trick instead of indexing the
// precomputed MDS table row by row. Functionally identical to applyMDS.
func applyMDSWide(state *[StateWidth]Fe) {
	row := mdsRow0
	var tmp [StateWidth]Fe
	for i := 0; i < StateWidth; i++ {
		var acc Fe
		for j := 0; j < StateWidth; j += 4 {
			s := LoadLanes4(state[j : j+4])
			r := LoadLanes4(row[j : j+4])
			p := s.Mul(r)
			acc = acc.Add(p[0]).Add(p[1]).Add(p[2]).Add(p[3])
		}
		tmp[i] = acc
		row = rotateRowRight(row)
	}
	*state = tmp
}

// applyRoundWide is applyRound, but using applyMDSWide in place of applyMDS.
func applyRoundWide(state *[StateWidth]Fe, round int) {
	applySBox(state)
	applyMDSWide(state)
	addRC0(state, round)

	applyInvSBox(state)
	applyMDSWide(state)
	addRC1(state, round)
}

// PermuteWide is an alternate entry point to the same 7-round permutation
// as Permute, using the Lanes4 abstraction for the MDS multiply when the
// build target exposes one (Accelerated). Its output is always
// bit-identical to Permute — this is a performance path, not a different
// algorithm.
func PermuteWide(state *[StateWidth]Fe) {
	if !Accelerated {
		Permute(state)
		return
	}
	for r := 0; r < Rounds; r++ {
		applyRoundWide(state, r)
	}
}
