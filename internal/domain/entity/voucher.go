package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherItem represents a single sold line as entered at the point of
// sale: quantity, tax-inclusive unit rate and GST rate.
type VoucherItem struct {
	Name     string          `json:"name"`
	IMEI     string          `json:"imei,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	GSTRate  decimal.Decimal `json:"gst_rate"`
}

// VoucherItemResult carries the derived tax-exclusive amounts for one line.
// BaseAmount + GSTAmount equals the rounded line total to the penny.
type VoucherItemResult struct {
	VoucherItem
	BaseAmount  decimal.Decimal `json:"base_amount"`
	GSTAmount   decimal.Decimal `json:"gst_amount"`
	BaseRate    decimal.Decimal `json:"base_rate"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// VoucherTotals holds transaction-level amounts. The combined GST is split
// into equal CGST and SGST halves and the round-off reconciles the grand
// total against its nearest-rupee rounding.
type VoucherTotals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	RoundedTotal decimal.Decimal `json:"rounded_total"`
	RoundOff     decimal.Decimal `json:"round_off"`
}

// Voucher is the fully computed retail sale record handed to the document
// builder. It is constructed once per request and never mutated.
type Voucher struct {
	CompanyName   string              `json:"company_name,omitempty"`
	PartyName     string              `json:"party_name"`
	CustomerName  string              `json:"customer_name"`
	Address       string              `json:"address,omitempty"`
	Phone         string              `json:"phone,omitempty"`
	Date          time.Time           `json:"date"`
	VoucherNumber string              `json:"voucher_number"`
	Items         []VoucherItemResult `json:"items"`
	Totals        VoucherTotals       `json:"totals"`
}
