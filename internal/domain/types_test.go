package domain

import "testing"

func TestContainsMatchesKindAndValue(t *testing.T) {
	fa := FloorAssignment{Floor: Second, Color: Green, Animal: Rabbit}
	for _, a := range []Attribute{Second, Green, Rabbit} {
		if !fa.Contains(a) {
			t.Fatalf("%v should contain %v", fa, a)
		}
	}
	// Green and Rabbit share the underlying value 1 but are different kinds.
	other := FloorAssignment{Floor: Second, Color: Green, Animal: Frog}
	if other.Contains(Rabbit) {
		t.Fatalf("%v should not contain %v", other, Rabbit)
	}
	if Attribute(Green) == Attribute(Rabbit) {
		t.Fatal("attributes of different kinds compared equal")
	}
	if fa.Contains(Floor(1)) || fa.Contains(Blue) || fa.Contains(Bird) {
		t.Fatalf("%v matched an attribute it does not hold", fa)
	}
}

func TestFloorOffset(t *testing.T) {
	cases := []struct {
		from Floor
		d    int
		want Floor
		ok   bool
	}{
		{First, 0, First, true},
		{First, 4, Fifth, true},
		{Fifth, -4, First, true},
		{Third, 3, 0, false},
		{Second, -2, 0, false},
	}
	for _, tc := range cases {
		got, ok := tc.from.Offset(tc.d)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("%v.Offset(%d) = %v,%v want %v,%v", tc.from, tc.d, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPoolsRestrictAndEach(t *testing.T) {
	p := FullPools()
	for _, f := range Floors {
		if !p.Has(f) {
			t.Fatalf("full pools missing %v", f)
		}
	}
	n := 0
	p.Each(func(FloorAssignment) { n++ })
	if n != Size*Size*Size {
		t.Fatalf("Each visited %d rows, want %d", n, Size*Size*Size)
	}

	r := p.Restrict(Rabbit).Restrict(First)
	var rows []FloorAssignment
	r.Each(func(fa FloorAssignment) { rows = append(rows, fa) })
	if len(rows) != Size {
		t.Fatalf("restricted rows = %d, want %d", len(rows), Size)
	}
	for _, fa := range rows {
		if fa.Floor != First || fa.Animal != Rabbit {
			t.Fatalf("unexpected row %v", fa)
		}
	}

	// two different floors leave nothing
	empty := p.Restrict(First).Restrict(Second)
	empty.Each(func(fa FloorAssignment) { t.Fatalf("unexpected row %v", fa) })

	gone := p.Without(FloorAssignment{Floor: First, Color: Red, Animal: Rabbit})
	if gone.Has(First) || gone.Has(Red) || gone.Has(Rabbit) {
		t.Fatal("Without kept a committed attribute")
	}
	if gone.Restrict(Rabbit).Animals != 0 {
		t.Fatal("restricting to a committed attribute should empty the pool")
	}
}

func TestStateCommitDoesNotAlias(t *testing.T) {
	base := NewState().Commit(FloorAssignment{Floor: First, Color: Red, Animal: Frog})
	left := base.Commit(FloorAssignment{Floor: Second, Color: Blue, Animal: Bird})
	right := base.Commit(FloorAssignment{Floor: Third, Color: Green, Animal: Chicken})

	if len(base.Committed) != 1 {
		t.Fatalf("base grew to %d rows", len(base.Committed))
	}
	if left.Committed[1].Floor != Second || right.Committed[1].Floor != Third {
		t.Fatalf("sibling branches share rows: left=%v right=%v", left.Committed, right.Committed)
	}
	if left.Floors.Len() != 3 || right.Colors.Len() != 3 || base.Animals.Len() != 4 {
		t.Fatal("pool sizes out of step with committed rows")
	}
}
