package sat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS parses the DIMACS CNF format into a CNF value, adapted from
// the teacher package's ParseDIMACS. Parsing itself is an external
// collaborator per spec (§1): this exists only to load test fixtures, not
// as part of the solved-core API.
//
// The same non-standard leniencies as the teacher are kept: comment lines
// may appear anywhere, and the problem line is optional.
func ParseDIMACS(r io.Reader) (CNF, error) {
	var f CNF
	var declaredVars, declaredClauses int
	haveProblemLine := false

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(f.Clauses) > 0 {
				return CNF{}, errors.New("dimacs: problem line appears after clauses")
			}
			if haveProblemLine {
				return CNF{}, errors.New("dimacs: multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return CNF{}, errors.Errorf("dimacs: malformed problem line %q", line)
			}
			var err error
			declaredVars, err = strconv.Atoi(fields[2])
			if err != nil {
				return CNF{}, errors.Wrap(err, "dimacs: malformed #vars")
			}
			declaredClauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return CNF{}, errors.Wrap(err, "dimacs: malformed #clauses")
			}
			haveProblemLine = true
			continue
		}

		var clause []Lit
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return CNF{}, errors.Wrap(err, "dimacs: invalid literal")
			}
			if n == 0 {
				f.AddClause(clause...)
				clause = nil
				continue
			}
			if n < 0 {
				clause = append(clause, Neg(Var(-n-1)))
			} else {
				clause = append(clause, Pos(Var(n-1)))
			}
		}
		if len(clause) > 0 {
			f.AddClause(clause...)
			clause = nil
		}
	}
	if err := s.Err(); err != nil {
		return CNF{}, err
	}
	if haveProblemLine && declaredClauses != len(f.Clauses) {
		return CNF{}, errors.Errorf("dimacs: problem line declares %d clauses, found %d", declaredClauses, len(f.Clauses))
	}
	if haveProblemLine && f.NumVars > declaredVars {
		return CNF{}, errors.Errorf("dimacs: formula uses more variables than declared (%d > %d)", f.NumVars, declaredVars)
	}
	return f, nil
}
