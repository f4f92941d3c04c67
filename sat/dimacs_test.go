package sat

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDIMACS(t *testing.T) {
	const text = `c a comment
p cnf 3 2
1 -2 0
c another comment
-3 0
`
	got, err := ParseDIMACS(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	want := CNF{NumVars: 3, Clauses: []Clause{
		clauseOf(Pos(0), Neg(1)),
		clauseOf(Neg(2)),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseDIMACS mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDIMACSRejectsClauseCountMismatch(t *testing.T) {
	const text = `p cnf 1 2
1 0
`
	if _, err := ParseDIMACS(strings.NewReader(text)); err == nil {
		t.Fatal("expected error for declared/actual clause count mismatch")
	}
}
