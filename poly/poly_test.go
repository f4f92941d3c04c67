package poly

import (
	"testing"

	"github.com/gruhn/SMT-solver/rational"
)

func TestMkPolynomialCombinesLikeMonomials(t *testing.T) {
	x := MkMonomial(map[Var]int{0: 1})
	p := MkPolynomial([]Term{
		{Coeff: rational.FromInt(2), Mono: x},
		{Coeff: rational.FromInt(3), Mono: x},
		{Coeff: rational.FromInt(-3), Mono: x},
	})
	terms := p.Terms()
	if len(terms) != 1 {
		t.Fatalf("got %d terms, want 1: %v", len(terms), terms)
	}
	if !terms[0].Coeff.Equal(rational.FromInt(2)) {
		t.Fatalf("got coeff %s, want 2", terms[0].Coeff)
	}
}

func TestMkMonomialDropsZeroExponents(t *testing.T) {
	m := MkMonomial(map[Var]int{0: 2, 1: 0, 2: 1})
	if _, ok := m[1]; ok {
		t.Fatal("zero-exponent variable must not be stored")
	}
	if m.Degree() != 3 {
		t.Fatalf("degree = %d, want 3", m.Degree())
	}
}

func TestIsLinear(t *testing.T) {
	x := MkMonomial(map[Var]int{0: 1})
	xy := MkMonomial(map[Var]int{0: 1, 1: 1})
	linear := MkPolynomial([]Term{{Coeff: rational.One, Mono: x}})
	nonlinear := MkPolynomial([]Term{{Coeff: rational.One, Mono: xy}})
	if !linear.IsLinear() {
		t.Error("expected linear polynomial to report IsLinear")
	}
	if nonlinear.IsLinear() {
		t.Error("expected degree-2 polynomial to report !IsLinear")
	}
}
