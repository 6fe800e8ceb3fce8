/*
Package parse reads the line-oriented problem format.

Each line starts with a keyword:

	name <free-form text>
	point <Name> <x> <y>
	assume <predicate> <args…>
	prove <predicate> <args…>

Predicates are whitespace-separated; point names are alphanumeric
starting with a letter; rational constants accept `p/q` and decimal
notation.
*/
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
	"github.com/npillmayer/geoproof/solver"
	"github.com/npillmayer/geoproof/statement"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'geoproof.parse'.
func tracer() tracing.Trace {
	return tracing.Select("geoproof.parse")
}

// Problem reads a whole problem from the input.
func Problem(input io.Reader) (*solver.Problem, error) {
	prob := &solver.Problem{Geometry: geom.NewProblem()}
	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := parseLine(prob, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return prob, nil
}

func parseLine(prob *solver.Problem, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "name":
		prob.Geometry.SetName(strings.TrimSpace(strings.TrimPrefix(line, "name")))
		return nil
	case "point":
		if len(fields) != 4 {
			return fmt.Errorf("incorrect line %q", line)
		}
		x, errx := strconv.ParseFloat(fields[2], 64)
		y, erry := strconv.ParseFloat(fields[3], 64)
		if errx != nil || erry != nil {
			return fmt.Errorf("incorrect coordinates in line %q", line)
		}
		_, err := prob.Geometry.AddPoint(fields[1], x, y)
		return err
	case "assume", "prove":
		stmts, err := parsePredicate(prob.Geometry, fields[1:], line)
		if err != nil {
			return err
		}
		if fields[0] == "assume" {
			prob.Hypotheses = append(prob.Hypotheses, stmts...)
		} else {
			prob.Goals = append(prob.Goals, stmts...)
		}
		return nil
	}
	return fmt.Errorf("incorrect line %q", line)
}

type argReader struct {
	prob *geom.Problem
	args []string
	pos  int
	err  error
}

func (r *argReader) next() string {
	if r.err != nil {
		return ""
	}
	if r.pos >= len(r.args) {
		r.err = fmt.Errorf("missing argument")
		return ""
	}
	tok := r.args[r.pos]
	r.pos++
	return tok
}

func (r *argReader) point() geom.Point {
	tok := r.next()
	if r.err != nil {
		return geom.Point{}
	}
	pt, err := r.prob.FindPoint(tok)
	if err != nil {
		r.err = err
	}
	return pt
}

func (r *argReader) dist() geom.Dist { return geom.NewDist(r.point(), r.point()) }

func (r *argReader) squaredDist() geom.SquaredDist {
	return geom.NewSquaredDist(r.point(), r.point())
}

func (r *argReader) slope() geom.SlopeAngle {
	a, b := r.point(), r.point()
	if r.err == nil && a == b {
		r.err = fmt.Errorf("line through a single point %s", a.Name())
	}
	if r.err != nil {
		return geom.SlopeAngle{}
	}
	return geom.NewSlopeAngle(a, b)
}

func (r *argReader) angle() geom.Angle {
	a, b, c := r.point(), r.point(), r.point()
	if r.err == nil && (b == a || b == c) {
		r.err = fmt.Errorf("degenerate angle at %s", b.Name())
	}
	if r.err != nil {
		return geom.Angle{}
	}
	return geom.NewAngle(a, b, c)
}

func (r *argReader) triangle() geom.Triangle {
	return geom.NewTriangle(r.point(), r.point(), r.point())
}

func (r *argReader) rat() number.Rat {
	tok := r.next()
	if r.err != nil {
		return number.Rat{}
	}
	q, err := number.ParseRat(tok)
	if err != nil {
		r.err = err
	}
	return q
}

func (r *argReader) exhausted() bool { return r.pos >= len(r.args) }

func parsePredicate(prob *geom.Problem, args []string, line string) ([]statement.Statement, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("incorrect line %q", line)
	}
	head := args[0]
	r := &argReader{prob: prob, args: args[1:]}
	var stmts []statement.Statement
	add := func(s statement.Statement) { stmts = append(stmts, s) }

	switch head {
	case "coll":
		a, b, c := r.point(), r.point(), r.point()
		if r.err == nil {
			add(statement.NewCollinear(a, b, c))
		}
		for r.err == nil && !r.exhausted() {
			a, b = b, c
			c = r.point()
			if r.err == nil {
				add(statement.NewCollinear(a, b, c))
			}
		}
	case "cong":
		d1, d2 := r.dist(), r.dist()
		if r.err == nil {
			add(statement.NewDistEqDist(d1, d2))
		}
	case "para":
		s1, s2 := r.slope(), r.slope()
		if r.err == nil {
			add(statement.NewParallel(s1, s2))
		}
	case "perp":
		s1, s2 := r.slope(), r.slope()
		if r.err == nil {
			add(statement.NewPerpendicular(s1, s2))
		}
	case "eqangle", "equal_angles":
		switch len(args) - 1 {
		case 6:
			a1, a2 := r.angle(), r.angle()
			if r.err == nil {
				add(statement.NewEqualAngles(a1, a2))
			}
		case 8:
			l1, l2, l3, l4 := r.slope(), r.slope(), r.slope(), r.slope()
			if r.err == nil {
				add(statement.NewEqualLineAngles(l1, l2, l3, l4))
			}
		default:
			return nil, fmt.Errorf("incorrect line %q, unexpected number of arguments", line)
		}
	case "eqratio":
		d1, d2, d3, d4 := r.dist(), r.dist(), r.dist(), r.dist()
		if r.err == nil {
			add(statement.NewEqualRatios(d1, d2, d3, d4))
		}
	case "cyclic":
		a, b, c, d := r.point(), r.point(), r.point(), r.point()
		if r.err == nil {
			add(statement.NewCyclicQuadrangle(a, b, c, d))
		}
		for r.err == nil && !r.exhausted() {
			a, b, c = b, c, d
			d = r.point()
			if r.err == nil {
				add(statement.NewCyclicQuadrangle(a, b, c, d))
			}
		}
	case "circle", "circumcenter":
		o, a, b, c := r.point(), r.point(), r.point(), r.point()
		if r.err == nil {
			add(statement.NewCircumcenter(o, geom.NewTriangle(a, b, c)))
		}
		for r.err == nil && !r.exhausted() {
			a, b = b, c
			c = r.point()
			if r.err == nil {
				add(statement.NewCircumcenter(o, geom.NewTriangle(a, b, c)))
			}
		}
	case "simtri", "simtrir":
		t1, t2 := r.triangle(), r.triangle()
		if r.err == nil {
			add(statement.NewSimilarTriangles(t1, t2, head == "simtri"))
		}
	case "contri", "contrir":
		t1, t2 := r.triangle(), r.triangle()
		if r.err == nil {
			add(statement.NewCongruentTriangles(t1, t2, head == "contri"))
		}
	case "midp":
		m, a, b := r.point(), r.point(), r.point()
		if r.err == nil {
			add(statement.NewMidpoint(a, m, b))
		}
	case "rconst":
		d1, d2, q := r.dist(), r.dist(), r.rat()
		if r.err == nil {
			add(statement.NewRatioDistEq(d1, d2, q))
		}
	case "r2const":
		d1, d2, q := r.squaredDist(), r.squaredDist(), r.rat()
		if r.err == nil {
			add(statement.NewRatioSquaredDist(d1, d2, q))
		}
	case "lconst":
		d, q := r.dist(), r.rat()
		if r.err == nil {
			add(statement.NewDistEq(d, q))
		}
	case "l2const":
		d, q := r.squaredDist(), r.rat()
		if r.err == nil {
			add(statement.NewSquaredDistEq(d, q))
		}
	case "aconst":
		l1, l2, q := r.slope(), r.slope(), r.rat()
		if r.err == nil {
			add(statement.NewLineAngleEq(l1, l2, number.NewAddCircle(q)).Normalize())
		}
	case "sameclock":
		t1, t2 := r.triangle(), r.triangle()
		if r.err == nil {
			add(statement.NewSameClock(t1, t2))
		}
	case "nsameclock":
		t1, t2 := r.triangle(), r.triangle()
		if r.err == nil {
			add(statement.NewNotSameClock(t1, t2))
		}
	case "obtuse_angle":
		a := r.angle()
		if r.err == nil {
			add(statement.NewObtuseAngle(a))
		}
	case "sameside", "nsameside":
		a, b, c := r.point(), r.point(), r.point()
		d, e, f := r.point(), r.point(), r.point()
		if r.err == nil {
			if head == "sameside" {
				add(statement.NewSameSignDot(a, b, c, d, e, f))
			} else {
				add(statement.NewDiffSignDot(a, b, c, d, e, f))
			}
		}
	case "diff":
		a, b := r.point(), r.point()
		if r.err == nil {
			add(statement.NewNotEqual(a, b))
		}
	case "ncoll":
		a, b, c := r.point(), r.point(), r.point()
		if r.err == nil {
			add(statement.NewNonCollinear(a, b, c))
		}
	case "npara":
		s1, s2 := r.slope(), r.slope()
		if r.err == nil {
			add(statement.NewNonParallel(s1, s2))
		}
	case "nperp":
		s1, s2 := r.slope(), r.slope()
		if r.err == nil {
			add(statement.NewNonPerpendicular(s1, s2))
		}
	default:
		return nil, fmt.Errorf("unknown statement %q in line %q", head, line)
	}
	if r.err != nil {
		return nil, fmt.Errorf("%w in line %q", r.err, line)
	}
	tracer().Debugf("parsed %d statement(s) from %q", len(stmts), line)
	return stmts, nil
}
