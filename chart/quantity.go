package chart

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNegativeInput is returned by BirthInputs.Validate when a field is negative.
var ErrNegativeInput = errors.New("chart: negative input")

// BirthInputs holds the raw chart inputs.
// No calendar validation is performed: day 30 in February is accepted.
type BirthInputs struct {
	Day   int
	Month int
	Year  int
	Age   int
}

// Validate reports whether all fields are non-negative.
func (in BirthInputs) Validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"day", in.Day},
		{"month", in.Month},
		{"year", in.Year},
		{"age", in.Age},
	} {
		if f.v < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeInput, f.name, f.v)
		}
	}
	return nil
}

// hasVariantB reports whether the month gets a B variant.
func (in BirthInputs) hasVariantB() bool {
	return in.Day > 22
}

// Quantity is a reduced value together with its significance.
// A suppressed quantity keeps its computed value so that sums depending on
// it stay well defined, but it is never encoded into a layer code.
type Quantity struct {
	Value       int
	Significant bool
}

// present returns a significant quantity.
func present(v int) Quantity {
	return Quantity{Value: v, Significant: true}
}

// gated returns a quantity that is significant only when ok is true.
func gated(v int, ok bool) Quantity {
	return Quantity{Value: v, Significant: ok}
}

// String implements fmt.Stringer.
func (q Quantity) String() string {
	if !q.Significant {
		return fmt.Sprintf("(%d)", q.Value)
	}
	return fmt.Sprintf("%d", q.Value)
}

// Role identifies one of the four role slots of a quantity.
type Role uint8

const (
	RolePA Role = iota // primary
	RolePB             // primary, variant B
	RoleSA             // secondary
	RoleSB             // secondary, variant B
)

// String returns the two-letter role tag used in layer codes.
func (r Role) String() string {
	switch r {
	case RolePA:
		return "PA"
	case RolePB:
		return "PB"
	case RoleSA:
		return "SA"
	case RoleSB:
		return "SB"
	default:
		return "??"
	}
}

// variantB reports whether r is one of the B variant roles.
func (r Role) variantB() bool {
	return r == RolePB || r == RoleSB
}

// Roles holds a quantity for every role.
// Families without B variants leave PB and SB suppressed.
type Roles struct {
	PA Quantity
	PB Quantity
	SA Quantity
	SB Quantity
}

// Get returns the quantity stored for role r.
func (rs Roles) Get(r Role) Quantity {
	switch r {
	case RolePB:
		return rs.PB
	case RoleSA:
		return rs.SA
	case RoleSB:
		return rs.SB
	default:
		return rs.PA
	}
}

// LogValue implements slog.LogValuer.
func (rs Roles) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("pa", rs.PA.String()),
		slog.String("pb", rs.PB.String()),
		slog.String("sa", rs.SA.String()),
		slog.String("sb", rs.SB.String()),
	)
}
