// Package solver classifies and solves one- and two-variable linear systems,
// narrating each step in plain text.
package solver

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Outcome classifies the solution set of a system.
type Outcome int

const (
	Unique Outcome = iota
	NoSolution
	Infinite
	Degenerate
)

func (o Outcome) String() string {
	switch o {
	case Unique:
		return "unique"
	case NoSolution:
		return "none"
	case Infinite:
		return "infinite"
	case Degenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

const (
	resultHeading    = "Result:"
	noSolutionText   = "No solution"
	infiniteText     = "No unique solution (every real number satisfies the equation)"
	degenerateText   = "No unique solution (the system is degenerate: D = 0)"
	resultPrecision  = 2
	roundingMultiple = 100
)

// Doubles at or above 2^52 have no fractional bits left to round.
const integralMagnitude = 1 << 52

// OneVarSolution is the result of solving a·x + b = 0.
type OneVarSolution struct {
	Outcome Outcome
	X       float64
	Steps   []string
}

// Text renders the narration followed by the outcome.
func (s OneVarSolution) Text() string {
	var tail string
	switch s.Outcome {
	case Unique:
		tail = fmt.Sprintf("%s\n  x = %s", resultHeading, formatResult(s.X))
	case Infinite:
		tail = infiniteText
	default:
		tail = noSolutionText
	}
	return joinNarration(s.Steps, tail)
}

// TwoVarSolution is the result of solving a 2x2 system with Cramer's rule.
type TwoVarSolution struct {
	Outcome Outcome
	X, Y    float64
	Steps   []string

	d, dx, dy float64
}

// Text renders the narration followed by the outcome.
func (s TwoVarSolution) Text() string {
	var tail string
	switch s.Outcome {
	case Unique:
		tail = fmt.Sprintf("%s\n  x = %s, y = %s", resultHeading, formatResult(s.X), formatResult(s.Y))
	case Degenerate:
		tail = degenerateText
	default:
		tail = noSolutionText
	}
	return joinNarration(s.Steps, tail)
}

// SolveOneVar solves a·x + b = 0. Zero checks are exact.
func SolveOneVar(a, b float64) OneVarSolution {
	steps := []string{
		"Equation:",
		fmt.Sprintf("  %s%s = 0", leadTerm(a, "x"), nextTerm(b, "")),
	}
	if a == 0 {
		steps = append(steps, "Coefficient a is 0, so x vanishes:", fmt.Sprintf("  %s = 0", formatCoeff(b)))
		if b == 0 {
			steps = append(steps, "  0 = 0 holds for every x")
			return OneVarSolution{Outcome: Infinite, Steps: steps}
		}
		steps = append(steps, fmt.Sprintf("  %s = 0 is never true", formatCoeff(b)))
		return OneVarSolution{Outcome: NoSolution, Steps: steps}
	}

	x := round2(-b / a)
	steps = append(steps,
		"Move b to the right-hand side:",
		fmt.Sprintf("  %s = %s", leadTerm(a, "x"), formatCoeff(-b)),
		"Divide both sides by a:",
		fmt.Sprintf("  x = %s / %s", formatCoeff(-b), formatDivisor(a)),
		fmt.Sprintf("  x = %s", formatResult(x)),
	)
	return OneVarSolution{Outcome: Unique, X: x, Steps: steps}
}

// SolveTwoVar solves
//
//	a1·x + b1·y = c1
//	a2·x + b2·y = c2
//
// by determinants. A zero determinant covers both parallel and coincident
// lines and is reported as Degenerate.
func SolveTwoVar(a1, b1, c1, a2, b2, c2 float64) TwoVarSolution {
	steps := []string{
		"System:",
		fmt.Sprintf("  %s%s = %s", leadTerm(a1, "x"), nextTerm(b1, "y"), formatCoeff(c1)),
		fmt.Sprintf("  %s%s = %s", leadTerm(a2, "x"), nextTerm(b2, "y"), formatCoeff(c2)),
	}

	d := a1*b2 - a2*b1
	steps = append(steps,
		"Determinant:",
		fmt.Sprintf("  D = a1*b2 - a2*b1 = (%s)(%s) - (%s)(%s) = %s",
			formatCoeff(a1), formatCoeff(b2), formatCoeff(a2), formatCoeff(b1), formatCoeff(d)),
	)
	if d == 0 {
		steps = append(steps, "  D = 0: the lines are parallel or coincident")
		return TwoVarSolution{Outcome: Degenerate, Steps: steps, d: d}
	}

	dx := c1*b2 - c2*b1
	dy := a1*c2 - a2*c1
	x := round2(dx / d)
	y := round2(dy / d)
	steps = append(steps,
		fmt.Sprintf("  Dx = c1*b2 - c2*b1 = (%s)(%s) - (%s)(%s) = %s",
			formatCoeff(c1), formatCoeff(b2), formatCoeff(c2), formatCoeff(b1), formatCoeff(dx)),
		fmt.Sprintf("  Dy = a1*c2 - a2*c1 = (%s)(%s) - (%s)(%s) = %s",
			formatCoeff(a1), formatCoeff(c2), formatCoeff(a2), formatCoeff(c1), formatCoeff(dy)),
		"Divide by D:",
		fmt.Sprintf("  x = Dx / D = %s / %s = %s", formatCoeff(dx), formatDivisor(d), formatResult(x)),
		fmt.Sprintf("  y = Dy / D = %s / %s = %s", formatCoeff(dy), formatDivisor(d), formatResult(y)),
	)
	return TwoVarSolution{Outcome: Unique, X: x, Y: y, Steps: steps, d: d, dx: dx, dy: dy}
}

func joinNarration(steps []string, tail string) string {
	return strings.Join(steps, "\n") + "\n\n" + tail
}

// round2 rounds half away from zero and folds -0 into 0. Magnitudes past
// integralMagnitude are returned as is, so v*100 cannot overflow.
func round2(v float64) float64 {
	if math.Abs(v) >= integralMagnitude {
		return v
	}
	r := math.Round(v*roundingMultiple) / roundingMultiple
	if r == 0 {
		return 0
	}
	return r
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', resultPrecision, 64)
}

// formatCoeff prints inputs and intermediate values without trailing zeros.
func formatCoeff(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// leadTerm writes the first term of an equation side, e.g. "2x", "-x" or "3".
func leadTerm(coeff float64, variable string) string {
	if coeff < 0 {
		return "-" + magnitudeTerm(-coeff, variable)
	}
	return magnitudeTerm(coeff, variable)
}

// nextTerm writes a following term with its sign as an operator: " - 4y".
func nextTerm(coeff float64, variable string) string {
	if coeff < 0 {
		return " - " + magnitudeTerm(-coeff, variable)
	}
	return " + " + magnitudeTerm(coeff, variable)
}

func magnitudeTerm(v float64, variable string) string {
	if variable != "" && v == 1 {
		return variable
	}
	return formatCoeff(v) + variable
}

// formatDivisor parenthesizes negative divisors: "4 / (-2)".
func formatDivisor(v float64) string {
	if v < 0 {
		return "(" + formatCoeff(v) + ")"
	}
	return formatCoeff(v)
}
