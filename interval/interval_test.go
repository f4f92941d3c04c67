package interval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduceMergesOverlapping(t *testing.T) {
	u := MkIntervalUnion(Interval{Lo: 0, Hi: 2}, Interval{Lo: 1, Hi: 3}, Interval{Lo: 10, Hi: 12})
	got := u.Parts()
	want := []Interval{{Lo: 0, Hi: 3}, {Lo: 10, Hi: 12}}
	require.Lenf(t, got, len(want), "got %v, want %v", got, want)
	for i := range want {
		require.Equalf(t, want[i], got[i], "part %d mismatch", i)
	}
}

func TestIntersectNeverWidens(t *testing.T) {
	a := MkIntervalUnion(Interval{Lo: -1, Hi: 1})
	b := MkIntervalUnion(Interval{Lo: 0, Hi: 5})
	got := a.Intersect(b)
	require.LessOrEqualf(t, got.Diameter(), a.Diameter(), "intersection widened: %v", got)
}

func TestMulSignHandling(t *testing.T) {
	a := Interval{Lo: -2, Hi: 3}
	b := Interval{Lo: -4, Hi: 1}
	got := a.Mul(b)
	for _, x := range []Num{-2, 3} {
		for _, y := range []Num{-4, 1} {
			p := x * y
			require.Falsef(t, p < got.Lo || p > got.Hi, "product %v*%v=%v outside %v", x, y, p, got)
		}
	}
}

func TestDivByZeroContainingIsUndefined(t *testing.T) {
	a := Point(1)
	b := Interval{Lo: -1, Hi: 1}
	_, ok := a.Div(b)
	require.False(t, ok, "expected division by a zero-containing interval to be undefined")
}

func TestNthRootEvenSplitsIntoTwoBranches(t *testing.T) {
	u := NthRootUnion(Interval{Lo: 0, Hi: 4}, 2)
	require.Truef(t, u.Contains(2) && u.Contains(-2), "sqrt([0,4]) = %v, want to contain +-2", u.Parts())
}
