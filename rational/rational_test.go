package rational

import "testing"

func TestArithmetic(t *testing.T) {
	half := FromFrac(1, 2)
	third := FromFrac(1, 3)
	sum := half.Add(third)
	if !sum.Equal(FromFrac(5, 6)) {
		t.Fatalf("1/2 + 1/3 = %s, want 5/6", sum)
	}
	if !half.Mul(third).Equal(FromFrac(1, 6)) {
		t.Fatalf("1/2 * 1/3 wrong")
	}
	if !half.Sub(third).Equal(FromFrac(1, 6)) {
		t.Fatalf("1/2 - 1/3 wrong")
	}
}

func TestFloorCeil(t *testing.T) {
	cases := []struct {
		v          Rat
		floor, ceil Rat
	}{
		{FromFrac(7, 2), FromInt(3), FromInt(4)},
		{FromFrac(-7, 2), FromInt(-4), FromInt(-3)},
		{FromInt(5), FromInt(5), FromInt(5)},
	}
	for _, c := range cases {
		if !c.v.Floor().Equal(c.floor) {
			t.Errorf("Floor(%s) = %s, want %s", c.v, c.v.Floor(), c.floor)
		}
		if !c.v.Ceil().Equal(c.ceil) {
			t.Errorf("Ceil(%s) = %s, want %s", c.v, c.v.Ceil(), c.ceil)
		}
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on division by zero")
		}
	}()
	One.Div(Zero)
}
