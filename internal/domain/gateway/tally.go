package gateway

import (
	"context"

	"github.com/sangkips/tally-bridge/internal/domain/entity"
)

// ImportResult is the outcome of posting a voucher to Tally. When Tally
// assigns its own voucher number it supersedes the locally generated one.
type ImportResult struct {
	VoucherNumber string
	Verified      bool
}

// TallyGateway defines the interface for talking to the TallyPrime XML API.
type TallyGateway interface {
	ImportVoucher(ctx context.Context, voucher *entity.Voucher) (*ImportResult, error)
	ListCompanies(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
