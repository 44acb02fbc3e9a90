package wdf

import (
	"strings"
	"testing"
)

func TestDiffNearIdenticalAllocations(t *testing.T) {
	doc := syntheticDocument(2000)
	edited := strings.Replace(doc, "token50 ", "edited ", 1)
	allocs := testing.AllocsPerRun(50, func() {
		_ = Diff(doc, edited)
	})
	if allocs > 100 {
		t.Fatalf("too many allocations per Diff: got %.2f", allocs)
	}
}
