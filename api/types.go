package api

import (
	"github.com/shopspring/decimal"

	"webdev-cost/core/discount"
	"webdev-cost/core/estimate"
)

// EstimateRequest is the body of POST /estimate and POST /report.
// Omitted quantities take the form defaults (5 pages, 5 tables, 1 role).
type EstimateRequest struct {
	SiteType      string `json:"site_type"`
	ClientType    string `json:"client_type"`
	Pages         *int   `json:"pages,omitempty"`
	Tables        *int   `json:"tables,omitempty"`
	Roles         *int   `json:"roles,omitempty"`
	Notifications *int   `json:"notifications,omitempty"`
	Gateways      *int   `json:"gateways,omitempty"`

	// Discount optionally discounts the computed total
	Discount string `json:"discount,omitempty"`
}

// Inputs resolves the request quantities over the defaults
func (r *EstimateRequest) Inputs() estimate.Inputs {
	in := estimate.DefaultInputs()
	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	set(&in.Pages, r.Pages)
	set(&in.Tables, r.Tables)
	set(&in.Roles, r.Roles)
	set(&in.Notifications, r.Notifications)
	set(&in.Gateways, r.Gateways)
	return in
}

// EstimateResponse is the body returned by POST /estimate
type EstimateResponse struct {
	RequestID string             `json:"request_id"`
	Estimate  *estimate.Estimate `json:"estimate"`
	Chart     estimate.ChartData `json:"chart"`
	Headline  string             `json:"headline"`

	// Placeholder is the breakdown text shown in place of an estimate
	Placeholder string `json:"placeholder,omitempty"`

	Discount *discount.Result `json:"discount,omitempty"`
	Error    *ErrorBody       `json:"error,omitempty"`
}

// DiscountRequest is the body of POST /discount. Discount takes precedence;
// otherwise the flags are collapsed by priority.
type DiscountRequest struct {
	BasePrice decimal.Decimal `json:"base_price"`
	Discount  string          `json:"discount,omitempty"`
	Flags     discount.Flags  `json:"flags"`
}

// DiscountResponse is the body returned by POST /discount
type DiscountResponse struct {
	RequestID string          `json:"request_id"`
	Result    discount.Result `json:"result"`
	Headline  string          `json:"headline"`
	Error     *ErrorBody      `json:"error,omitempty"`
}

// ErrorBody is the error envelope
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
