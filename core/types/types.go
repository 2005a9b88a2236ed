// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import "strings"

// SiteType selects which pricing catalog applies
type SiteType string

const (
	// SiteDynamic has a backend and database
	SiteDynamic SiteType = "dynamic"

	// SiteStatic is frontend-only
	SiteStatic SiteType = "static"
)

// String returns the string representation
func (s SiteType) String() string {
	return string(s)
}

// IsValid checks if the site type has a catalog
func (s SiteType) IsValid() bool {
	switch s {
	case SiteDynamic, SiteStatic:
		return true
	default:
		return false
	}
}

// Title returns the site type with its first letter upper-cased
func (s SiteType) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// SiteTypes lists the site types in display order
func SiteTypes() []SiteType {
	return []SiteType{SiteDynamic, SiteStatic}
}

// ClientType selects whether the foreign markup applies
type ClientType string

const (
	// ClientLocal pays the catalog price
	ClientLocal ClientType = "local"

	// ClientForeign pays the catalog price times the foreign multiplier
	ClientForeign ClientType = "foreign"
)

// String returns the string representation
func (c ClientType) String() string {
	return string(c)
}

// IsForeign reports whether the foreign multiplier applies
func (c ClientType) IsForeign() bool {
	return c == ClientForeign
}

// Label returns the client type as shown on reports
func (c ClientType) Label() string {
	if c.IsForeign() {
		return "Foreign Client"
	}
	return "Local Client"
}

// ParseClientType maps free text onto a client type. Anything other than
// "foreign" is a local client.
func ParseClientType(s string) ClientType {
	if strings.EqualFold(strings.TrimSpace(s), string(ClientForeign)) {
		return ClientForeign
	}
	return ClientLocal
}

// QuantityKey names the estimate input a pricing rule reads
type QuantityKey string

const (
	// QuantityNone marks a fixed-cost rule that reads no input
	QuantityNone QuantityKey = ""

	QuantityTables        QuantityKey = "tables"
	QuantityRoles         QuantityKey = "roles"
	QuantityPages         QuantityKey = "pages"
	QuantityNotifications QuantityKey = "notifications"
	QuantityGateways      QuantityKey = "gateways"
)
