//go:build arm64 && !purego

package rescue

import "golang.org/x/sys/cpu"

// Accelerated is true when the CPU has NEON (ASIMD), the width this
// package's Lanes4 type is modeled after. See lanes.go: it only affects
// which code path PermuteWide takes, never the result.
var Accelerated = cpu.ARM64.HasASIMD
