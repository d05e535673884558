package tetris

import "testing"

func TestBagSourceDealsEveryShapePerBag(t *testing.T) {
	src := NewBagSource(42)

	for bag := 0; bag < 5; bag++ {
		seen := make(map[Shape]int)
		for i := 0; i < len(Shapes); i++ {
			seen[src.Next()]++
		}
		for _, s := range Shapes {
			if seen[s] != 1 {
				t.Fatalf("bag %d dealt %s %d times", bag, s, seen[s])
			}
		}
	}
}

func TestSeededSourcesAreDeterministic(t *testing.T) {
	sources := map[string]func() Source{
		"random": func() Source { return NewRandomSource(7) },
		"bag":    func() Source { return NewBagSource(7) },
	}

	for name, mk := range sources {
		a, b := mk(), mk()
		for i := 0; i < 50; i++ {
			x, y := a.Next(), b.Next()
			if x != y {
				t.Fatalf("%s: draw %d differs: %s vs %s", name, i, x, y)
			}
			if !x.Valid() {
				t.Fatalf("%s: invalid shape %d", name, x)
			}
		}
	}
}

func TestQueueSourceCycles(t *testing.T) {
	src := NewQueueSource(ShapeT, ShapeO, ShapeZ)
	want := []Shape{ShapeT, ShapeO, ShapeZ, ShapeT, ShapeO, ShapeZ, ShapeT}
	for i, w := range want {
		if got := src.Next(); got != w {
			t.Fatalf("draw %d = %s, expected %s", i, got, w)
		}
	}

	empty := NewQueueSource()
	if got := empty.Next(); got != ShapeI {
		t.Errorf("empty queue = %s, expected I", got)
	}
}

func TestParseShape(t *testing.T) {
	for _, s := range Shapes {
		got, err := ParseShape(" " + s.String() + " ")
		if err != nil || got != s {
			t.Errorf("ParseShape(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got, err := ParseShape("t"); err != nil || got != ShapeT {
		t.Errorf("ParseShape(\"t\") = %v, %v", got, err)
	}
	if _, err := ParseShape("X"); err == nil {
		t.Error("expected an error for an unknown shape")
	}
	if Shape(12).Valid() || Shape(12).String() != "Shape(12)" {
		t.Error("out-of-range shape should be invalid")
	}
}
