package elementary

import "testing"

func TestRule90Triangle(t *testing.T) {
	e := New(7, 3, 90)
	e.Reset(0)
	e.Step()

	w := e.Size().W
	row0 := e.Cells()[:w]
	want := []uint8{0, 0, 1, 0, 1, 0, 0}
	for i := range want {
		if row0[i] != want[i] {
			t.Fatalf("row 0 = %v, want %v", row0, want)
		}
	}
	if e.Cells()[w+3] != 1 {
		t.Fatal("the previous generation should scroll into row 1")
	}
}

func TestFromMapRule(t *testing.T) {
	if c := FromMap(map[string]string{"rule": "30"}); c.Rule != 30 {
		t.Fatalf("rule = %d, want 30", c.Rule)
	}
	if c := FromMap(map[string]string{"rule": "300"}); c.Rule != 110 {
		t.Fatalf("out-of-range rule should keep default, got %d", c.Rule)
	}
}

func TestRandomizeSeedsTopRowOnly(t *testing.T) {
	a, b := New(32, 4, 110), New(32, 4, 110)
	a.Randomize(11)
	b.Randomize(11)

	w := a.Size().W
	lit := 0
	for i, c := range a.Cells() {
		if c != b.Cells()[i] {
			t.Fatalf("cell %d differs between equal seeds", i)
		}
		if i >= w && c != 0 {
			t.Fatalf("history cell %d = %d, want 0", i, c)
		}
		lit += int(c)
	}
	if lit == 0 {
		t.Fatal("expected some active cells in the top row")
	}
}
