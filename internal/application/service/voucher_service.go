package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sangkips/tally-bridge/internal/domain/entity"
	"github.com/sangkips/tally-bridge/internal/domain/gateway"
	"github.com/sangkips/tally-bridge/pkg/money"
	"github.com/sangkips/tally-bridge/pkg/reference"
)

// ErrNoItems is returned when a voucher is computed over an empty item list.
var ErrNoItems = errors.New("at least one item is required")

// VoucherService builds retail sale vouchers from POS input and posts them
// to Tally.
type VoucherService struct {
	tally gateway.TallyGateway
	refs  *reference.Generator
}

// NewVoucherService creates a new voucher service
func NewVoucherService(tally gateway.TallyGateway, refs *reference.Generator) *VoucherService {
	return &VoucherService{
		tally: tally,
		refs:  refs,
	}
}

// CreateVoucherInput represents the input for creating a retail sale voucher
type CreateVoucherInput struct {
	CompanyName  string
	PartyName    string
	CustomerName string
	Address      string
	Phone        string
	Date         time.Time
	Items        []entity.VoucherItem
}

// CreateVoucherResult carries the voucher number confirmed for the sale.
type CreateVoucherResult struct {
	VoucherNumber string
	Verified      bool
}

// CreateVoucher decomposes each line, aggregates the totals, renders the
// voucher and posts it to Tally. The whole voucher either lands in Tally or
// nothing does; Tally performs the ledger write atomically on its side.
func (s *VoucherService) CreateVoucher(ctx context.Context, input *CreateVoucherInput) (*CreateVoucherResult, error) {
	voucher, err := s.buildVoucher(input)
	if err != nil {
		return nil, err
	}

	imported, err := s.tally.ImportVoucher(ctx, voucher)
	if err != nil {
		return nil, err
	}

	return &CreateVoucherResult{
		VoucherNumber: imported.VoucherNumber,
		Verified:      imported.Verified,
	}, nil
}

func (s *VoucherService) buildVoucher(input *CreateVoucherInput) (*entity.Voucher, error) {
	results, err := ComputeItemResults(input.Items)
	if err != nil {
		return nil, err
	}

	totals, err := ComputeTotals(results)
	if err != nil {
		return nil, err
	}

	return &entity.Voucher{
		CompanyName:   input.CompanyName,
		PartyName:     input.PartyName,
		CustomerName:  input.CustomerName,
		Address:       input.Address,
		Phone:         input.Phone,
		Date:          input.Date,
		VoucherNumber: s.refs.Generate(time.Now()),
		Items:         results,
		Totals:        totals,
	}, nil
}

// ComputeItemResults runs the monetary decomposition for every line item.
func ComputeItemResults(items []entity.VoucherItem) ([]entity.VoucherItemResult, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	results := make([]entity.VoucherItemResult, 0, len(items))
	for _, item := range items {
		amounts, err := money.Decompose(item.Quantity, item.Rate, item.GSTRate)
		if err != nil {
			return nil, err
		}
		results = append(results, entity.VoucherItemResult{
			VoucherItem: item,
			BaseAmount:  amounts.Base,
			GSTAmount:   amounts.Tax,
			BaseRate:    amounts.UnitRate,
			TotalAmount: amounts.Total,
		})
	}
	return results, nil
}

// ComputeTotals aggregates per-line results into voucher totals. The
// combined GST splits into equal CGST and SGST halves, each rounded
// independently; the round-off entry absorbs any cent-level discrepancy
// against the nearest-rupee grand total, so
// subtotal + cgst + sgst + roundOff == roundedTotal holds exactly.
func ComputeTotals(results []entity.VoucherItemResult) (entity.VoucherTotals, error) {
	if len(results) == 0 {
		return entity.VoucherTotals{}, ErrNoItems
	}

	subtotal := decimal.Zero
	combinedGST := decimal.Zero
	for _, r := range results {
		subtotal = subtotal.Add(r.BaseAmount)
		combinedGST = combinedGST.Add(r.GSTAmount)
	}
	// Each term is already a 2-place value; the re-round is part of the
	// contract with Tally's own accumulation behaviour.
	subtotal = money.Round(subtotal)
	combinedGST = money.Round(combinedGST)

	cgst := money.SplitHalf(combinedGST)
	sgst := money.SplitHalf(combinedGST)

	grandTotal := subtotal.Add(cgst).Add(sgst)
	roundedTotal := money.RoundUnit(grandTotal)
	roundOff := money.Round(roundedTotal.Sub(grandTotal))

	return entity.VoucherTotals{
		Subtotal:     subtotal,
		CGST:         cgst,
		SGST:         sgst,
		GrandTotal:   grandTotal,
		RoundedTotal: roundedTotal,
		RoundOff:     roundOff,
	}, nil
}
