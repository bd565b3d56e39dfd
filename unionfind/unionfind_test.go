package unionfind_test

import (
	"testing"

	"github.com/gabmei/spatio-temporal-data-driven-sfc/unionfind"
)

func TestNew_AllSingletons(t *testing.T) {
	u := unionfind.New(5)
	if got := u.Components(); got != 5 {
		t.Fatalf("Components() = %d, want 5", got)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i == j {
				continue
			}
			if u.Connected(i, j) {
				t.Fatalf("Connected(%d,%d) = true before any Union", i, j)
			}
		}
	}
}

func TestUnion_MergesAndCountsComponents(t *testing.T) {
	u := unionfind.New(4)
	if !u.Union(0, 1) {
		t.Fatal("Union(0,1) = false, want true")
	}
	if u.Union(0, 1) {
		t.Fatal("Union(0,1) again = true, want false (already connected)")
	}
	if !u.Connected(0, 1) {
		t.Fatal("expected 0 and 1 connected")
	}
	if u.Components() != 3 {
		t.Fatalf("Components() = %d, want 3", u.Components())
	}

	u.Union(2, 3)
	u.Union(1, 2)
	if u.Components() != 1 {
		t.Fatalf("Components() = %d, want 1", u.Components())
	}
	for i := 0; i < 4; i++ {
		if !u.Connected(0, i) {
			t.Fatalf("expected 0 and %d connected after chain of unions", i)
		}
	}
}
