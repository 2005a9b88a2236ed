// Package catalog - Builtin rule tables
package catalog

import (
	"github.com/shopspring/decimal"

	"webdev-cost/core/types"
)

// Component names shared by the builtin tables
const (
	SystemArchitecture  = "System Architecture & DB"
	BackendDevelopment  = "Backend Development"
	FrontendDevelopment = "Frontend Development"
	Notifications       = "Notifications"
	PaymentGateways     = "Payment Gateways"
	Cybersecurity       = "Cybersecurity (Standard)"
	Deployment          = "Deployment & Hosting Setup"
	Testing             = "Testing & Documentation"
	Miscellaneous       = "Miscellaneous"
)

func php(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func fixed(component string, base int64, description string) PricingRule {
	return PricingRule{
		Component:   component,
		Base:        php(base),
		Unit:        decimal.Zero,
		Description: description,
	}
}

func frontendRule() PricingRule {
	return PricingRule{
		Component:   FrontendDevelopment,
		Base:        php(1500),
		Unit:        php(500),
		Threshold:   1,
		Quantity:    types.QuantityPages,
		Description: "Cost for the initial Homepage. +₱500 for every other unique page.",
	}
}

func dynamicRules() Rules {
	return Rules{
		{
			Component:   SystemArchitecture,
			Base:        php(3500),
			Unit:        php(500),
			Threshold:   5,
			Quantity:    types.QuantityTables,
			Description: "Initial cost covers up to 5 database tables. +₱500 for every additional table.",
		},
		{
			Component:   BackendDevelopment,
			Base:        php(8000),
			Unit:        php(1000),
			Threshold:   1,
			Quantity:    types.QuantityRoles,
			Description: "Covers 1 default user role/type. +₱1000 for every additional user type/role.",
		},
		frontendRule(),
		{
			Component:   Notifications,
			Base:        decimal.Zero,
			Unit:        php(2500),
			Quantity:    types.QuantityNotifications,
			Description: "In-app notifications are default. +₱2500 for every external service (e.g., email/SMS API).",
		},
		{
			Component:   PaymentGateways,
			Base:        decimal.Zero,
			Unit:        php(3000),
			Quantity:    types.QuantityGateways,
			Description: "+₱3000 flat fee for integrating each online payment method (e.g., PayPal, Stripe).",
		},
		fixed(Cybersecurity, 5000, "Fixed cost for standard security setup (SSL, input sanitization, etc.)."),
		fixed(Deployment, 5000, "Fixed cost for setting up the live production environment."),
		fixed(Testing, 4000, "Fixed cost for quality assurance and comprehensive project handover documents."),
		fixed(Miscellaneous, 5000, "Fixed cost for unforeseen minor items and general overhead."),
	}
}

func staticRules() Rules {
	return Rules{
		frontendRule(),
		fixed(Deployment, 3500, "Fixed cost for setting up static hosting environment."),
		fixed(Testing, 3000, "Fixed cost for quality assurance and basic handover documentation."),
		fixed(Miscellaneous, 3000, "Fixed cost for unforeseen minor items and general overhead."),
	}
}
