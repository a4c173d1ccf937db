package implicit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	opts = append(opts, cmp.AllowUnexported(BiPoly{}, Bernstein{}))
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}
