//go:build amd64 && !purego

package rescue

import "golang.org/x/sys/cpu"

// Accelerated is true when the CPU has AVX2, the width this package's
// Lanes4 type is modeled after. See lanes.go: it only affects which code
// path PermuteWide takes, never the result.
var Accelerated = cpu.X86.HasAVX2
