package request

import "github.com/shopspring/decimal"

// CreateVoucherRequest represents a retail sale voucher creation request
type CreateVoucherRequest struct {
	CompanyName  string               `json:"companyName"`
	PartyName    string               `json:"partyName" binding:"required"`
	CustomerName string               `json:"customerName" binding:"required"`
	Address      string               `json:"address"`
	Phone        string               `json:"phone"`
	Date         string               `json:"date" binding:"required,datetime=2006-01-02"`
	Items        []VoucherItemRequest `json:"items" binding:"required,min=1,dive"`
}

// VoucherItemRequest represents a line item in a voucher request.
// Quantities and rates arrive as JSON numbers or strings; decimal keeps
// them exact all the way into the monetary decomposition.
type VoucherItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	IMEI     string          `json:"imei"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Rate     decimal.Decimal `json:"rate" binding:"required"`
	GSTRate  decimal.Decimal `json:"gstRate"`
}
