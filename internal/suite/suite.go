package suite

import (
	"fmt"

	"github.com/roach88/lanegen/internal/literal"
	"github.com/roach88/lanegen/internal/oracle"
)

// Family groups operations that share an enumeration and NaN policy.
type Family string

const (
	// FamilyArith covers neg, sqrt, add, sub, mul, div.
	FamilyArith Family = "arith"
	// FamilySimple covers abs, min, max.
	FamilySimple Family = "simple"
	// FamilyCmp covers the lane-mask comparisons.
	FamilyCmp Family = "cmp"
)

// Spec is one compiled suite definition.
type Spec struct {
	// Name is the suite identifier and the fixture file basename.
	Name string

	// Lane is the packed shape, "f32x4" or "f64x2".
	Lane string

	// Family selects the enumeration.
	Family Family

	// MaxFinite is the literal spelling of the largest finite lane value,
	// e.g. "0x1.fffffep+127" for f32x4.
	MaxFinite string

	// UnaryOps and BinaryOps list the operations to enumerate, in
	// emission order.
	UnaryOps  []string
	BinaryOps []string

	// Floats are the boundary and special values walked pairwise.
	Floats []string

	// Literals are decimal/hex spelling edge cases, applied as self-pairs.
	Literals []string

	// NaNs are the NaN operand forms, canonical and payload-bearing.
	NaNs []string
}

// LaneCount returns the number of lanes in the packed shape.
func (s *Spec) LaneCount() int {
	if s.Lane == "f64x2" {
		return 2
	}
	return 4
}

// Scalar returns the scalar lane type, "f32" or "f64".
func (s *Spec) Scalar() string {
	if s.Lane == "f64x2" {
		return "f64"
	}
	return "f32"
}

// MaskLane returns the integer shape comparison results land in.
func (s *Spec) MaskLane() string {
	if s.Lane == "f64x2" {
		return "i64x2"
	}
	return "i32x4"
}

// OracleConfig builds the oracle configuration for this suite's lane type.
func (s *Spec) OracleConfig() (oracle.Config, error) {
	max, err := literal.Parse(s.MaxFinite)
	if err != nil {
		return oracle.Config{}, fmt.Errorf("suite %s: max_finite: %w", s.Name, err)
	}
	f, ok := max.(literal.Finite)
	if !ok {
		return oracle.Config{}, fmt.Errorf("suite %s: max_finite %q is not a finite literal", s.Name, s.MaxFinite)
	}

	prec := oracle.Double
	if s.Lane == "f32x4" {
		prec = oracle.Single
	}
	return oracle.Config{Precision: prec, MaxFinite: f.Magnitude}, nil
}

// opArity maps every known operation to its family and operand count.
var opArity = map[Family]map[string]int{
	FamilyArith: {
		"neg": 1, "sqrt": 1,
		"add": 2, "sub": 2, "mul": 2, "div": 2,
	},
	FamilySimple: {
		"abs": 1,
		"min": 2, "max": 2,
	},
	FamilyCmp: {
		"eq": 2, "ne": 2, "lt": 2, "le": 2, "gt": 2, "ge": 2,
	},
}

// Validate checks the compiled definition: known lane and family, known
// operations at the right arity, and parseable operand tables.
func (s *Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("suite has no name")
	}
	if s.Lane != "f32x4" && s.Lane != "f64x2" {
		return fmt.Errorf("suite %s: unknown lane %q", s.Name, s.Lane)
	}
	ops, ok := opArity[s.Family]
	if !ok {
		return fmt.Errorf("suite %s: unknown family %q", s.Name, s.Family)
	}
	if s.MaxFinite == "" {
		return fmt.Errorf("suite %s: max_finite is required", s.Name)
	}
	if _, err := s.OracleConfig(); err != nil {
		return err
	}

	for _, op := range s.UnaryOps {
		if ops[op] != 1 {
			return fmt.Errorf("suite %s: %q is not a unary %s operation", s.Name, op, s.Family)
		}
	}
	for _, op := range s.BinaryOps {
		if ops[op] != 2 {
			return fmt.Errorf("suite %s: %q is not a binary %s operation", s.Name, op, s.Family)
		}
	}
	if len(s.UnaryOps)+len(s.BinaryOps) == 0 {
		return fmt.Errorf("suite %s: no operations", s.Name)
	}
	if len(s.Floats) == 0 {
		return fmt.Errorf("suite %s: empty float table", s.Name)
	}

	for _, table := range [][]string{s.Floats, s.Literals, s.NaNs} {
		for _, spell := range table {
			if _, err := literal.Parse(spell); err != nil {
				return fmt.Errorf("suite %s: %w", s.Name, err)
			}
		}
	}
	return nil
}
