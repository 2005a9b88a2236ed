package estimate

import (
	"math"
	"strings"

	"webdev-cost/core/types"
)

// Inputs holds the parsed quantities an estimate reads. Only the subset a
// site type's catalog binds to is consulted.
type Inputs struct {
	Pages         int `json:"pages"`
	Tables        int `json:"tables"`
	Roles         int `json:"roles"`
	Notifications int `json:"notifications"`
	Gateways      int `json:"gateways"`
}

// DefaultInputs mirrors the form defaults a fresh session starts with
func DefaultInputs() Inputs {
	return Inputs{
		Pages:  5,
		Tables: 5,
		Roles:  1,
	}
}

// Quantity returns the input bound to key. QuantityNone and negative
// values both yield 0.
func (in Inputs) Quantity(key types.QuantityKey) int {
	var q int
	switch key {
	case types.QuantityPages:
		q = in.Pages
	case types.QuantityTables:
		q = in.Tables
	case types.QuantityRoles:
		q = in.Roles
	case types.QuantityNotifications:
		q = in.Notifications
	case types.QuantityGateways:
		q = in.Gateways
	}
	if q < 0 {
		return 0
	}
	return q
}

// ParseQuantity reads the leading decimal integer of s. Text with no
// leading digits, and negative values, parse as 0. Values clamp at
// math.MaxInt32.
func ParseQuantity(s string) int {
	s = strings.TrimSpace(s)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int64(c-'0')
		if n > math.MaxInt32 {
			n = math.MaxInt32
		}
	}
	if negative {
		return 0
	}
	return int(n)
}
