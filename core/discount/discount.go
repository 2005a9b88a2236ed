// Package discount applies at most one percentage discount to a base price.
package discount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"webdev-cost/internal/errors"
)

// Kind is the single discount in effect. Holding one value makes "at most
// one discount" structural.
type Kind string

const (
	None     Kind = "none"
	Referral Kind = "referral"
	Student  Kind = "student"
	PlanA    Kind = "plan_a"
)

// Kinds lists the selectable discounts in priority order
func Kinds() []Kind {
	return []Kind{Referral, Student, PlanA}
}

// Rate returns the fraction of the base price taken off
func (k Kind) Rate() decimal.Decimal {
	switch k {
	case Referral:
		return decimal.RequireFromString("0.05")
	case Student, PlanA:
		return decimal.RequireFromString("0.10")
	default:
		return decimal.Zero
	}
}

// Label returns the breakdown label for the discount line
func (k Kind) Label() string {
	switch k {
	case Referral:
		return "Referral Discount (5%)"
	case Student:
		return "Student/Thesis Discount (10%)"
	case PlanA:
		return "Plan A Discount (10% Off)"
	default:
		return ""
	}
}

// String returns the string representation
func (k Kind) String() string {
	return string(k)
}

// ParseKind maps free text onto a Kind. Empty text is None.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	switch norm {
	case "", "none":
		return None, nil
	case "referral":
		return Referral, nil
	case "student", "thesis":
		return Student, nil
	case "plan_a", "plana":
		return PlanA, nil
	}
	return None, errors.InvalidInput(fmt.Sprintf("unknown discount %q", s)).WithContext("discount", s)
}

// Flags is the checkbox view of a selection
type Flags struct {
	Referral bool `json:"referral"`
	Student  bool `json:"student"`
	PlanA    bool `json:"plan_a"`
}

// Selection collapses flags onto a single Kind with priority
// referral > student > planA.
func (f Flags) Selection() Kind {
	switch {
	case f.Referral:
		return Referral
	case f.Student:
		return Student
	case f.PlanA:
		return PlanA
	default:
		return None
	}
}

// Toggle returns the flags after the user checks (on=true) or unchecks k.
// Checking one discount clears the others.
func Toggle(k Kind, on bool) Flags {
	if !on {
		return Flags{}
	}
	switch k {
	case Referral:
		return Flags{Referral: true}
	case Student:
		return Flags{Student: true}
	case PlanA:
		return Flags{PlanA: true}
	default:
		return Flags{}
	}
}
