package blogmark

import "runtime"

// Worker count bounds for batch rendering. A Renderer is shared by all
// workers, so each one costs a goroutine and little else.
const (
	MinPoolSize = 1
	MaxPoolSize = 16
)

// ResolvePoolSize returns workers when positive. Otherwise it derives a
// count from GOMAXPROCS, which automaxprocs adjusts to container quotas,
// clamped to [MinPoolSize, MaxPoolSize].
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	return min(max(runtime.GOMAXPROCS(0), MinPoolSize), MaxPoolSize)
}
