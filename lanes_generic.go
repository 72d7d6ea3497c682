//go:build (!amd64 && !arm64) || purego

package rescue

// Accelerated is always false on build targets with no dedicated wide-lane
// dispatch; PermuteWide falls back to Permute unconditionally.
var Accelerated = false
