// Package rescue implements Rescue-Prime, an arithmetic sponge hash over the
// Goldilocks prime field F_q, q = 2^64 - 2^32 + 1, targeting 128-bit security.
//
// Rescue-Prime is built for use inside STARK/SNARK circuits, where algebraic
// structure (low multiplicative degree, a small number of field
// multiplications per round) matters more than bit-level diffusion. This
// package provides the field arithmetic (Fe), the 12-element permutation
// (Permute), the sponge construction that turns it into a variable-length
// hash (Hash), and a 2-to-1 compression function (Merge) for building Merkle
// trees on top of it — see the merkle subpackage.
//
// Constants (the modulus, the S-box exponent and its inverse, the MDS
// matrix, and the round constants) match the Novi/Winterfell rp64_256
// construction bit-for-bit; see constants.go for provenance.
package rescue
