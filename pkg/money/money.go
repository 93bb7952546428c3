package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Currency values are finalized to 2 places, rounding half away from zero.
// This must match TallyPrime's own rounding exactly or the imported voucher
// fails its base+tax=total cross-check.
const currencyPlaces = 2

var (
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")
	ErrNonPositiveRate     = errors.New("rate must be greater than zero")
	ErrNegativeTaxRate     = errors.New("tax rate must not be negative")
)

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// LineAmounts holds the decomposition of a single tax-inclusive line.
type LineAmounts struct {
	// Total is quantity * inclusive rate, rounded to 2 places.
	Total decimal.Decimal
	// Base is the tax-exclusive portion of Total.
	Base decimal.Decimal
	// Tax is the residual Total - Base. It is never recomputed from the
	// rate, which keeps Base + Tax == Total exact at the penny.
	Tax decimal.Decimal
	// UnitRate is the tax-exclusive rate per unit.
	UnitRate decimal.Decimal
}

// Round finalizes a monetary value: 2 places, half away from zero.
// decimal.Round already rounds half away from zero, so 0.005 becomes 0.01.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(currencyPlaces)
}

// RoundUnit rounds to the nearest whole currency unit, half away from zero.
func RoundUnit(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Decompose reverses a tax-inclusive unit price into exact base and tax
// amounts for the given quantity.
//
//	Total    = round(qty * inclusiveRate)
//	Base     = round(Total / (1 + taxRatePct/100))
//	Tax      = Total - Base
//	UnitRate = round(Base / qty)
func Decompose(qty, inclusiveRate, taxRatePct decimal.Decimal) (LineAmounts, error) {
	if !qty.IsPositive() {
		return LineAmounts{}, ErrNonPositiveQuantity
	}
	if !inclusiveRate.IsPositive() {
		return LineAmounts{}, ErrNonPositiveRate
	}
	if taxRatePct.IsNegative() {
		return LineAmounts{}, ErrNegativeTaxRate
	}

	total := Round(qty.Mul(inclusiveRate))
	divisor := one.Add(taxRatePct.Div(hundred))
	base := Round(total.Div(divisor))
	tax := total.Sub(base)
	unitRate := Round(base.Div(qty))

	return LineAmounts{
		Total:    total,
		Base:     base,
		Tax:      tax,
		UnitRate: unitRate,
	}, nil
}

// SplitHalf returns one half of the given amount, rounded to 2 places.
// Both tax components take the same independently rounded half, so an
// odd-cent total can leave a 1 cent discrepancy for the round-off entry
// to absorb.
func SplitHalf(d decimal.Decimal) decimal.Decimal {
	return Round(d.Div(two))
}
