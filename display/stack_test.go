package display

import (
	"math/rand"
	"testing"
)

// checkStack verifies the chain bottom..top is unbroken and matches want (bottom first)
func checkStack(t *testing.T, d *Display, want []*Window) {
	t.Helper()
	got := d.Windows()
	if len(got) != len(want) {
		t.Fatalf("Expected %d windows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Position %d: expected window %d, got %d", i, want[i].ID(), got[i].ID())
		}
	}
	if len(want) == 0 {
		if d.Top() != nil || d.Bottom() != nil {
			t.Fatal("Expected empty stack to have no ends")
		}
		return
	}
	if d.Bottom() != want[0] || d.Top() != want[len(want)-1] {
		t.Fatalf("Expected ends %d..%d, got %d..%d",
			want[0].ID(), want[len(want)-1].ID(), d.Bottom().ID(), d.Top().ID())
	}
	if d.Bottom().Prev() != nil || d.Top().Next() != nil {
		t.Fatal("Expected bottom to have no prev and top to have no next")
	}
	for i, w := range want {
		if i > 0 && w.Prev() != want[i-1] {
			t.Fatalf("Window %d: broken prev link", w.ID())
		}
		if i < len(want)-1 && w.Next() != want[i+1] {
			t.Fatalf("Window %d: broken next link", w.ID())
		}
	}
}

func TestStackPushOrder(t *testing.T) {
	d, _ := newTestDisplay(t, 10, 10)
	checkStack(t, d, nil)

	a := mustWindow(t, d, false, 0, 0, 1, 1)
	checkStack(t, d, []*Window{a})
	b := mustWindow(t, d, false, 0, 0, 1, 1)
	c := mustWindow(t, d, false, 0, 0, 1, 1)
	checkStack(t, d, []*Window{a, b, c})

	if a.ID() == b.ID() || b.ID() == c.ID() {
		t.Error("Expected distinct window handles")
	}
}

func TestStackRaise(t *testing.T) {
	d, _ := newTestDisplay(t, 10, 10)
	a := mustWindow(t, d, false, 0, 0, 1, 1)
	b := mustWindow(t, d, false, 0, 0, 1, 1)
	c := mustWindow(t, d, false, 0, 0, 1, 1)
	if err := d.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	c.Raise()
	checkStack(t, d, []*Window{a, b, c})
	if d.Dirty() {
		t.Error("Expected raising the top window to be a no-op")
	}

	a.Raise()
	checkStack(t, d, []*Window{b, c, a})
	if !d.Dirty() {
		t.Error("Expected raise to mark display dirty")
	}

	c.Raise()
	checkStack(t, d, []*Window{b, a, c})
}

func TestStackDestroy(t *testing.T) {
	d, _ := newTestDisplay(t, 10, 10)
	a := mustWindow(t, d, false, 0, 0, 1, 1)
	b := mustWindow(t, d, false, 0, 0, 1, 1)
	c := mustWindow(t, d, false, 0, 0, 1, 1)
	e := mustWindow(t, d, false, 0, 0, 1, 1)

	b.Destroy() // middle
	checkStack(t, d, []*Window{a, c, e})
	a.Destroy() // bottom
	checkStack(t, d, []*Window{c, e})
	e.Destroy() // top
	checkStack(t, d, []*Window{c})
	c.Destroy() // last
	checkStack(t, d, nil)

	f := mustWindow(t, d, false, 0, 0, 1, 1)
	checkStack(t, d, []*Window{f})
	if f.ID() <= e.ID() {
		t.Errorf("Expected handles not to be reused, got %d after %d", f.ID(), e.ID())
	}
}

func TestStackRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	d, _ := newTestDisplay(t, 10, 10)
	var model []*Window

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(3); {
		case op == 0 || len(model) == 0:
			w := mustWindow(t, d, rng.Intn(2) == 0, rng.Intn(12)-1, rng.Intn(12)-1, rng.Intn(3)+1, rng.Intn(3)+1)
			model = append(model, w)
		case op == 1:
			i := rng.Intn(len(model))
			w := model[i]
			w.Raise()
			model = append(append(model[:i:i], model[i+1:]...), w)
		default:
			i := rng.Intn(len(model))
			model[i].Destroy()
			model = append(model[:i:i], model[i+1:]...)
		}
		checkStack(t, d, model)
	}
}
