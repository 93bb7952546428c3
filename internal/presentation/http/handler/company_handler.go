package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/tally-bridge/internal/application/service"
	"github.com/sangkips/tally-bridge/internal/presentation/http/dto/response"
)

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// List handles listing companies open in Tally
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(companies) == 0 {
		response.NotFound(c, "No companies found or Tally not connected")
		return
	}

	response.OK(c, "Companies retrieved successfully", gin.H{
		"companies": companies,
		"count":     len(companies),
	})
}

// Health reports service liveness and Tally connectivity. Always 200: a
// disconnected Tally is a status, not a failure of this service.
func (h *CompanyHandler) Health(c *gin.Context) {
	tallyStatus := "disconnected"
	if h.companyService.CheckConnection(c.Request.Context()) {
		tallyStatus = "connected"
	}

	c.JSON(200, gin.H{
		"server": "running",
		"tally":  tallyStatus,
	})
}
