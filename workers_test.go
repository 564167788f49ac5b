package blogmark

import (
	"runtime"
	"testing"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	auto := runtime.GOMAXPROCS(0)
	if auto > MaxPoolSize {
		auto = MaxPoolSize
	}

	tests := map[string]struct {
		workers int
		want    int
	}{
		"sequential":            {workers: 1, want: 1},
		"explicit":              {workers: 6, want: 6},
		"explicit above cap":    {workers: 64, want: 64},
		"zero derives from cpu": {workers: 0, want: auto},
		"negative derives too":  {workers: -3, want: auto},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestResolvePoolSize_AutoWithinBounds(t *testing.T) {
	t.Parallel()

	if got := ResolvePoolSize(0); got < MinPoolSize || got > MaxPoolSize {
		t.Errorf("ResolvePoolSize(0) = %d, outside [%d, %d]", got, MinPoolSize, MaxPoolSize)
	}
}
