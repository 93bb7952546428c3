package service

import (
	"context"

	"github.com/sangkips/tally-bridge/internal/domain/gateway"
)

// CompanyService exposes read-only queries against the Tally instance.
type CompanyService struct {
	tally gateway.TallyGateway
}

// NewCompanyService creates a new company service
func NewCompanyService(tally gateway.TallyGateway) *CompanyService {
	return &CompanyService{tally: tally}
}

// ListCompanies returns the names of companies currently open in Tally.
func (s *CompanyService) ListCompanies(ctx context.Context) ([]string, error) {
	return s.tally.ListCompanies(ctx)
}

// CheckConnection reports whether the Tally endpoint is reachable.
func (s *CompanyService) CheckConnection(ctx context.Context) bool {
	return s.tally.Ping(ctx) == nil
}
