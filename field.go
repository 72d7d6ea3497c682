package rescue

import (
	"math/bits"
	"math/rand"
)

// Q is the Goldilocks prime: 2^64 - 2^32 + 1.
const Q uint64 = 0xFFFFFFFF00000001

// epsilon is 2^32 - 1, which is congruent to -Q modulo 2^64. Wrapping past
// 2^64 during a 64-bit add or during 128-bit reduction is corrected by
// adding epsilon rather than subtracting Q, since epsilon fits in 32 bits.
const epsilon uint64 = 0xFFFFFFFF

// Alpha is the Rescue S-box exponent, chosen coprime to Q-1.
const Alpha uint64 = 7

// InvAlpha is the inverse S-box exponent: Alpha * InvAlpha ≡ 1 (mod Q-1).
const InvAlpha uint64 = 10540996611094048183

// Fe is an element of the prime field F_q, always held in canonical form,
// i.e. in the range [0, Q).
type Fe uint64

// FromUint64 reduces a into its canonical representative in F_q. Any
// uint64 value is less than 2*Q, so a single conditional subtraction
// suffices.
func FromUint64(a uint64) Fe {
	if a >= Q {
		a -= Q
	}
	return Fe(a)
}

// Zero is the additive identity of F_q.
const Zero Fe = 0

// One is the multiplicative identity of F_q.
const One Fe = 1

// Add returns a + b mod Q.
func (a Fe) Add(b Fe) Fe {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		sum, _ = bits.Add64(sum, epsilon, 0)
	}
	if sum >= Q {
		sum -= Q
	}
	return Fe(sum)
}

// Neg returns -a mod Q, canonical (0 for a == 0).
func (a Fe) Neg() Fe {
	if a == 0 {
		return 0
	}
	return Fe(Q - uint64(a))
}

// Sub returns a - b mod Q.
func (a Fe) Sub(b Fe) Fe {
	return a.Add(b.Neg())
}

// Mul returns a * b mod Q, using the Goldilocks reduction identity
// 2^64 ≡ 2^32 - 1 (mod Q): split the 128-bit product hi:lo with
// hi = d*2^32 + c, then a*b ≡ lo + c*(2^32-1) - d (mod Q).
func (a Fe) Mul(b Fe) Fe {
	hi, lo := bits.Mul64(uint64(a), uint64(b))

	c := hi & epsilon
	d := hi >> 32

	t, borrow := bits.Sub64(lo, d, 0)
	if borrow != 0 {
		t -= epsilon
	}

	prod := c * epsilon
	sum, carry := bits.Add64(t, prod, 0)
	if carry != 0 {
		sum, _ = bits.Add64(sum, epsilon, 0)
	}
	if sum >= Q {
		sum -= Q
	}
	return Fe(sum)
}

// Square returns a * a mod Q.
func (a Fe) Square() Fe {
	return a.Mul(a)
}

// Pow raises a to the n-th power using MSB-first square-and-multiply.
// n is a public exponent; this is not constant-time.
func (a Fe) Pow(n uint64) Fe {
	res := One
	for i := 63; i >= 0; i-- {
		res = res.Mul(res)
		if (n>>uint(i))&1 == 1 {
			res = res.Mul(a)
		}
	}
	return res
}

// Inv returns the multiplicative inverse of a via Fermat's little theorem
// (a^(Q-2)). Inv(0) returns 0 by convention.
func (a Fe) Inv() Fe {
	if a == 0 {
		return 0
	}
	return a.Pow(Q - 2)
}

// Div returns a / b = a * Inv(b). Division by zero yields 0.
func (a Fe) Div(b Fe) Fe {
	return a.Mul(b.Inv())
}

// Equal reports whether a and b denote the same canonical value.
func (a Fe) Equal(b Fe) bool {
	return a == b
}

// Uint64 returns the canonical uint64 representation of a.
func (a Fe) Uint64() uint64 {
	return uint64(a)
}

// Random returns a uniformly distributed element of F_q, for use in tests
// and benchmarks only.
func Random() Fe {
	// Q is within 2^32 of 2^64, so rand.Uint64() % Q has bias of about
	// 2^-32 — negligible for test/benchmark sampling, never used on a
	// security-relevant path.
	return Fe(rand.Uint64() % Q)
}
